package domain

import "time"

// ModuleStatus is the outcome of placing a single module
type ModuleStatus string

const (
	ModulePlugged  ModuleStatus = "plugged"
	ModuleUnplaced ModuleStatus = "unplaced"
)

// InterfaceStatus is the outcome of configuring a single network interface
type InterfaceStatus string

const (
	InterfaceController InterfaceStatus = "controller" // anchored subnet and IO system
	InterfaceDevice     InterfaceStatus = "io_device"  // joined subnet and IO system
	InterfaceSubnetOnly InterfaceStatus = "subnet"     // joined subnet, no IO connector
	InterfaceSkipped    InterfaceStatus = "skipped"    // no matching row
	InterfaceFailed     InterfaceStatus = "failed"
)

// ModuleReport records where a module ended up
type ModuleReport struct {
	CatalogID   string       `json:"catalog_id" yaml:"catalog_id"`
	DisplayName string       `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Status      ModuleStatus `json:"status" yaml:"status"`
	Container   string       `json:"container,omitempty" yaml:"container,omitempty"`
	Interface   string       `json:"interface,omitempty" yaml:"interface,omitempty"`
	Position    int          `json:"position,omitempty" yaml:"position,omitempty"`
	Probes      int          `json:"probes" yaml:"probes"`
	ProbeErrors int          `json:"probe_errors,omitempty" yaml:"probe_errors,omitempty"`
	Error       string       `json:"error,omitempty" yaml:"error,omitempty"`
}

// DeviceReport records the outcome for one spreadsheet row
type DeviceReport struct {
	Row        int            `json:"row" yaml:"row"`
	DeviceType string         `json:"device_type" yaml:"device_type"`
	DeviceName string         `json:"device_name" yaml:"device_name"`
	CatalogID  string         `json:"catalog_id" yaml:"catalog_id"`
	Modules    []ModuleReport `json:"modules,omitempty" yaml:"modules,omitempty"`
	Interfaces int            `json:"interfaces" yaml:"interfaces"`
}

// Unplaced counts modules that found no slot
func (d DeviceReport) Unplaced() int {
	n := 0
	for _, m := range d.Modules {
		if m.Status == ModuleUnplaced {
			n++
		}
	}
	return n
}

// InterfaceReport records the topology outcome for one discovered interface
type InterfaceReport struct {
	Index   int             `json:"index" yaml:"index"`
	Device  string          `json:"device" yaml:"device"`
	Address string          `json:"address,omitempty" yaml:"address,omitempty"`
	Subnet  string          `json:"subnet,omitempty" yaml:"subnet,omitempty"`
	Status  InterfaceStatus `json:"status" yaml:"status"`
	Error   string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report summarizes one project creation run
type Report struct {
	RunID      string            `json:"run_id" yaml:"run_id"`
	Project    string            `json:"project" yaml:"project"`
	Input      string            `json:"input" yaml:"input"`
	Backend    string            `json:"backend" yaml:"backend"`
	StartedAt  time.Time         `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time         `json:"finished_at" yaml:"finished_at"`
	Devices    []DeviceReport    `json:"devices" yaml:"devices"`
	Interfaces []InterfaceReport `json:"interfaces" yaml:"interfaces"`
	Subnet     string            `json:"subnet,omitempty" yaml:"subnet,omitempty"`
	IoSystem   string            `json:"io_system,omitempty" yaml:"io_system,omitempty"`
	Error      string            `json:"error,omitempty" yaml:"error,omitempty"`
}

// Succeeded reports whether the run finished without a run-fatal error
func (r *Report) Succeeded() bool {
	return r.Error == ""
}

// UnplacedModules counts modules without a slot across all devices
func (r *Report) UnplacedModules() int {
	n := 0
	for _, d := range r.Devices {
		n += d.Unplaced()
	}
	return n
}

// FailedInterfaces counts interfaces whose configuration failed
func (r *Report) FailedInterfaces() int {
	n := 0
	for _, i := range r.Interfaces {
		if i.Status == InterfaceFailed {
			n++
		}
	}
	return n
}

// RunSummary is the journal listing entry for one run
type RunSummary struct {
	RunID      string    `json:"run_id" yaml:"run_id"`
	Project    string    `json:"project" yaml:"project"`
	Input      string    `json:"input" yaml:"input"`
	Backend    string    `json:"backend" yaml:"backend"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
	Devices    int       `json:"devices" yaml:"devices"`
	Unplaced   int       `json:"unplaced" yaml:"unplaced"`
	Failed     int       `json:"failed_interfaces" yaml:"failed_interfaces"`
	Error      string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary condenses a report into its journal listing entry
func (r *Report) Summary() RunSummary {
	return RunSummary{
		RunID:      r.RunID,
		Project:    r.Project,
		Input:      r.Input,
		Backend:    r.Backend,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Devices:    len(r.Devices),
		Unplaced:   r.UnplacedModules(),
		Failed:     r.FailedInterfaces(),
		Error:      r.Error,
	}
}
