package placement

import "tiaforge/internal/engineering"

// Candidates enumerates slots in search order:
// items x Interfaces x positions FirstPosition..MaxPosition
type Candidates struct {
	items []engineering.Item
	item  int
	iface int
	pos   int
}

// Enumerate starts an enumeration over items
func Enumerate(items []engineering.Item) *Candidates {
	return &Candidates{items: items, pos: FirstPosition}
}

// Len returns the total number of slots the enumeration yields
func (c *Candidates) Len() int {
	return len(c.items) * len(Interfaces) * (MaxPosition - FirstPosition + 1)
}

// Next returns the next slot, or false once the enumeration is exhausted
func (c *Candidates) Next() (Slot, bool) {
	if c.item >= len(c.items) {
		return Slot{}, false
	}

	slot := Slot{
		Container:      c.items[c.item],
		ContainerIndex: c.item,
		Interface:      Interfaces[c.iface],
		Position:       c.pos,
	}

	c.pos++
	if c.pos > MaxPosition {
		c.pos = FirstPosition
		c.iface++
		if c.iface >= len(Interfaces) {
			c.iface = 0
			c.item++
		}
	}

	return slot, true
}

// All drains the enumeration into a slice
func (c *Candidates) All() []Slot {
	out := make([]Slot, 0, c.Len())
	for s, ok := c.Next(); ok; s, ok = c.Next() {
		out = append(out, s)
	}
	return out
}
