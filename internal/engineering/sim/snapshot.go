package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Snapshot is a serializable view of a simulated project
type Snapshot struct {
	Project   string             `yaml:"project" json:"project"`
	Devices   []DeviceSnapshot   `yaml:"devices" json:"devices"`
	Subnets   []SubnetSnapshot   `yaml:"subnets,omitempty" json:"subnets,omitempty"`
	IoSystems []IoSystemSnapshot `yaml:"io_systems,omitempty" json:"io_systems,omitempty"`
}

// DeviceSnapshot describes one device and its hardware tree
type DeviceSnapshot struct {
	Name           string         `yaml:"name" json:"name"`
	TypeIdentifier string         `yaml:"type_identifier" json:"type_identifier"`
	Items          []ItemSnapshot `yaml:"items,omitempty" json:"items,omitempty"`
}

// ItemSnapshot describes one hardware item
type ItemSnapshot struct {
	Name           string         `yaml:"name" json:"name"`
	TypeIdentifier string         `yaml:"type_identifier,omitempty" json:"type_identifier,omitempty"`
	Interface      string         `yaml:"interface,omitempty" json:"interface,omitempty"`
	Position       int            `yaml:"position,omitempty" json:"position,omitempty"`
	Address        string         `yaml:"address,omitempty" json:"address,omitempty"`
	Items          []ItemSnapshot `yaml:"items,omitempty" json:"items,omitempty"`
}

// SubnetSnapshot lists the interfaces connected to a subnet
type SubnetSnapshot struct {
	Name    string   `yaml:"name" json:"name"`
	Members []string `yaml:"members" json:"members"`
}

// IoSystemSnapshot lists an IO system's controller and devices
type IoSystemSnapshot struct {
	Name       string   `yaml:"name" json:"name"`
	Subnet     string   `yaml:"subnet" json:"subnet"`
	Controller string   `yaml:"controller" json:"controller"`
	Devices    []string `yaml:"devices,omitempty" json:"devices,omitempty"`
}

// Snapshot captures the current state of the project
func (p *Project) Snapshot() Snapshot {
	paths := make(map[*NetworkInterface]string)
	snap := Snapshot{Project: p.name}

	for _, d := range p.devices {
		ds := DeviceSnapshot{Name: d.name, TypeIdentifier: d.typeIdentifier}
		for _, it := range d.items {
			ds.Items = append(ds.Items, snapshotItem(it, d.name, paths))
		}
		snap.Devices = append(snap.Devices, ds)
	}

	for _, s := range p.subnets {
		ss := SubnetSnapshot{Name: s.name, Members: make([]string, 0, len(s.members))}
		for _, m := range s.members {
			ss.Members = append(ss.Members, paths[m])
		}
		snap.Subnets = append(snap.Subnets, ss)
	}

	for _, io := range p.ioSystems {
		is := IoSystemSnapshot{Name: io.name, Subnet: io.subnet.name, Controller: paths[io.controller]}
		for _, d := range io.devices {
			is.Devices = append(is.Devices, paths[d])
		}
		snap.IoSystems = append(snap.IoSystems, is)
	}

	return snap
}

func snapshotItem(it *Item, parent string, paths map[*NetworkInterface]string) ItemSnapshot {
	path := parent + "/" + it.name
	s := ItemSnapshot{
		Name:           it.name,
		TypeIdentifier: it.typeIdentifier,
		Interface:      it.iface,
		Position:       it.position,
	}
	if it.network != nil {
		paths[it.network] = path
		s.Address = it.network.address
	}
	for _, child := range it.children {
		s.Items = append(s.Items, snapshotItem(child, path, paths))
	}
	return s
}

// WriteSnapshot writes snap as YAML to path
func WriteSnapshot(path string, snap Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ReadSnapshot loads a snapshot written by WriteSnapshot
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snap, nil
}
