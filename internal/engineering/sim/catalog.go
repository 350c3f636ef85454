package sim

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tiaforge/internal/domain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog describes the hardware the simulator knows, keyed by order number
type Catalog struct {
	Devices map[string]*HardwareType `yaml:"devices"`
	Modules map[string]*HardwareType `yaml:"modules"`
}

// HardwareType is a device or module and the sub-items it brings along
type HardwareType struct {
	Name  string          `yaml:"name"`
	Items []*ItemTemplate `yaml:"items,omitempty"`
}

// ItemTemplate is a node of the hardware tree created with a device or module
type ItemTemplate struct {
	Name    string           `yaml:"name"`
	Slots   []SlotRule       `yaml:"slots,omitempty"`
	Network *NetworkTemplate `yaml:"network,omitempty"`
	Items   []*ItemTemplate  `yaml:"items,omitempty"`
}

// SlotRule admits modules at a range of positions on one interface
type SlotRule struct {
	Interface string `yaml:"interface"`
	From      int    `yaml:"from"`
	To        int    `yaml:"to"`
	// Accepts lists order number prefixes; empty admits any catalog module
	Accepts []string `yaml:"accepts,omitempty"`
}

// NetworkTemplate marks an item as network capable
type NetworkTemplate struct {
	IoController bool `yaml:"io_controller"`
	IoConnectors int  `yaml:"io_connectors"`
}

// admits reports whether rule takes orderNumber at (iface, position)
func (r SlotRule) admits(orderNumber, iface string, position int) bool {
	if r.Interface != iface || position < r.From || position > r.To {
		return false
	}
	if len(r.Accepts) == 0 {
		return true
	}
	for _, prefix := range r.Accepts {
		if strings.HasPrefix(orderNumber, prefix) {
			return true
		}
	}
	return false
}

// DefaultCatalog returns the built-in catalog of common S7-1500 and ET 200SP parts
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog from a YAML file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses a catalog from YAML bytes
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if c.Devices == nil {
		c.Devices = make(map[string]*HardwareType)
	}
	if c.Modules == nil {
		c.Modules = make(map[string]*HardwareType)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	check := func(kind, id string, hw *HardwareType) error {
		if hw == nil {
			return fmt.Errorf("%s %s: empty definition", kind, id)
		}
		var walk func(items []*ItemTemplate) error
		walk = func(items []*ItemTemplate) error {
			for _, it := range items {
				for _, s := range it.Slots {
					if s.Interface == "" || s.From < 1 || s.To < s.From {
						return fmt.Errorf("%s %s: item %s has invalid slot rule %+v", kind, id, it.Name, s)
					}
				}
				if err := walk(it.Items); err != nil {
					return err
				}
			}
			return nil
		}
		return walk(hw.Items)
	}

	for id, hw := range c.Devices {
		if err := check("device", id, hw); err != nil {
			return err
		}
	}
	for id, hw := range c.Modules {
		if err := check("module", id, hw); err != nil {
			return err
		}
	}
	return nil
}

// device looks up a device by type identifier
func (c *Catalog) device(typeIdentifier string) (*HardwareType, bool) {
	hw, ok := c.Devices[domain.TrimCatalogPrefix(typeIdentifier)]
	return hw, ok
}

// module looks up a module by type identifier
func (c *Catalog) module(typeIdentifier string) (*HardwareType, bool) {
	hw, ok := c.Modules[domain.TrimCatalogPrefix(typeIdentifier)]
	return hw, ok
}
