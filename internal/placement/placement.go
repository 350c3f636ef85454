// Package placement plugs modules into free device slots.
//
// The search is first-fit over a fixed order: the device's immediate
// sub-items as the engineering tool reports them, then the interface names
// IO1, PM and P1, then positions 1 through 14. The first slot the tool
// accepts wins. There is no backtracking: once a module is plugged it is
// never moved to make room for a later one.
package placement

import (
	"errors"
	"fmt"

	"tiaforge/internal/domain"
	"tiaforge/internal/engineering"
)

// Interfaces is the priority order in which slot interfaces are tried
var Interfaces = []string{"IO1", "PM", "P1"}

const (
	// FirstPosition is the lowest slot position probed
	FirstPosition = 1
	// MaxPosition is the highest slot position probed
	MaxPosition = 14
)

// ErrUnplaced is returned when no slot accepted a module
var ErrUnplaced = errors.New("no slot accepted module")

// Slot is one candidate attachment point
type Slot struct {
	Container      engineering.Item
	ContainerIndex int
	Interface      string
	Position       int
}

func (s Slot) String() string {
	name := ""
	if s.Container != nil {
		name = s.Container.Name()
	}
	return fmt.Sprintf("%s[%d]/%s@%d", name, s.ContainerIndex, s.Interface, s.Position)
}

// Probe records one CanPlugNew question and its answer
type Probe struct {
	Slot    Slot
	Allowed bool
	Err     error
}

// Placement is a successfully plugged module
type Placement struct {
	Module      domain.ModuleSpec
	Slot        Slot
	Item        engineering.Item
	Probes      int
	ProbeErrors int
	// RenameErr is set when the module was plugged but the display name could not be applied
	RenameErr error
}

// PlacementError reports a module for which the whole search came up empty
type PlacementError struct {
	Module      domain.ModuleSpec
	Probes      int
	ProbeErrors int
	// LastErr is the last error raised by the tool during the search, if any
	LastErr error
}

func (e *PlacementError) Error() string {
	msg := fmt.Sprintf("could not plug module %s after %d probes", e.Module.TypeIdentifier(), e.Probes)
	if e.ProbeErrors > 0 {
		msg += fmt.Sprintf(" (%d probe errors, last: %v)", e.ProbeErrors, e.LastErr)
	}
	return msg
}

// Unwrap makes errors.Is(err, ErrUnplaced) hold
func (e *PlacementError) Unwrap() error {
	return ErrUnplaced
}

// Option configures an Engine
type Option func(*Engine)

// WithObserver registers a callback invoked for every probe
func WithObserver(fn func(Probe)) Option {
	return func(e *Engine) {
		e.observer = fn
	}
}

// Engine performs first-fit module placement
type Engine struct {
	observer func(Probe)
}

// New creates a placement engine
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Place plugs module into the first slot of device that accepts it.
//
// A probe that errors is treated as "not here" and the search goes on, as
// does a plug that fails after an affirmative probe. The error counts are
// reported either way so callers can tell tool errors from full racks.
func (e *Engine) Place(device engineering.Device, module domain.ModuleSpec) (*Placement, error) {
	typeID := module.TypeIdentifier()
	var (
		probes, probeErrors int
		lastErr             error
	)

	candidates := Enumerate(device.Items())
	for slot, ok := candidates.Next(); ok; slot, ok = candidates.Next() {
		probes++
		allowed, err := slot.Container.CanPlugNew(typeID, slot.Interface, slot.Position)
		e.observe(Probe{Slot: slot, Allowed: allowed && err == nil, Err: err})
		if err != nil {
			probeErrors++
			lastErr = err
			continue
		}
		if !allowed {
			continue
		}

		item, err := slot.Container.PlugNew(typeID, slot.Interface, slot.Position)
		if err != nil {
			probeErrors++
			lastErr = fmt.Errorf("plug at %s: %w", slot, err)
			continue
		}

		p := &Placement{
			Module:      module,
			Slot:        slot,
			Item:        item,
			Probes:      probes,
			ProbeErrors: probeErrors,
		}
		if module.HasName() {
			if err := item.SetName(module.DisplayName); err != nil {
				p.RenameErr = fmt.Errorf("rename module to %q: %w", module.DisplayName, err)
			}
		}
		return p, nil
	}

	return nil, &PlacementError{
		Module:      module,
		Probes:      probes,
		ProbeErrors: probeErrors,
		LastErr:     lastErr,
	}
}

func (e *Engine) observe(p Probe) {
	if e.observer != nil {
		e.observer(p)
	}
}
