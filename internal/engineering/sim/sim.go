// Package sim is an in-memory engineering tool.
//
// It implements the engineering interfaces against a YAML hardware catalog
// so that placement and topology can be exercised without the vendor tool.
// Slot admission, name uniqueness and subnet/IO-system rules are checked
// the way the real tool reports them: as errors from the offending call.
package sim

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"path/filepath"

	"tiaforge/internal/domain"
	"tiaforge/internal/engineering"
)

var (
	// ErrUnknownType is returned for type identifiers missing from the catalog
	ErrUnknownType = errors.New("unknown type identifier")
	// ErrSlotOccupied is returned when plugging into a taken position
	ErrSlotOccupied = errors.New("slot occupied")
	// ErrNotAdmitted is returned when plugging where no slot rule admits the module
	ErrNotAdmitted = errors.New("module not admitted at this slot")
	// ErrDuplicateName is returned when a device or subnet name is already taken
	ErrDuplicateName = errors.New("name already in use")
	// ErrProjectExists is returned when the project directory already exists
	ErrProjectExists = errors.New("project already exists")
)

// Portal is a simulated tool instance
type Portal struct {
	catalog  *Catalog
	projects []*Project
	closed   bool
}

// NewPortal creates a simulated tool using catalog (nil uses DefaultCatalog)
func NewPortal(catalog *Catalog) *Portal {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Portal{catalog: catalog}
}

// CreateProject creates <dir>/<name>. The directory must not exist yet.
// An empty dir keeps the project purely in memory.
func (p *Portal) CreateProject(dir, name string) (engineering.Project, error) {
	if p.closed {
		return nil, engineering.ErrClosed
	}
	if name == "" {
		return nil, errors.New("project name is empty")
	}

	proj := &Project{portal: p, name: name}
	if dir != "" {
		proj.dir = filepath.Join(dir, name)
		if _, err := os.Stat(proj.dir); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrProjectExists, proj.dir)
		}
		if err := os.MkdirAll(proj.dir, 0755); err != nil {
			return nil, fmt.Errorf("create project dir: %w", err)
		}
	}

	p.projects = append(p.projects, proj)
	return proj, nil
}

// Projects returns the projects created so far
func (p *Portal) Projects() []*Project {
	return p.projects
}

// Close marks the portal closed
func (p *Portal) Close() error {
	p.closed = true
	return nil
}

// Project is a simulated project
type Project struct {
	portal    *Portal
	name      string
	dir       string
	devices   []*Device
	subnets   []*Subnet
	ioSystems []*IoSystem
}

// Name returns the project name
func (p *Project) Name() string {
	return p.name
}

// Dir returns the project directory, empty for in-memory projects
func (p *Project) Dir() string {
	return p.dir
}

// Devices returns the created devices in creation order
func (p *Project) Devices() []*Device {
	return p.devices
}

// CreateDevice instantiates a catalog device and its built-in items
func (p *Project) CreateDevice(typeIdentifier, name string) (engineering.Device, error) {
	hw, ok := p.portal.catalog.device(typeIdentifier)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, typeIdentifier)
	}
	for _, d := range p.devices {
		if d.name == name {
			return nil, fmt.Errorf("device %q: %w", name, ErrDuplicateName)
		}
	}

	d := &Device{name: name, typeIdentifier: typeIdentifier}
	for _, tpl := range hw.Items {
		d.items = append(d.items, p.instantiate(tpl, "", 0))
	}
	p.devices = append(p.devices, d)
	return d, nil
}

// Save writes a YAML snapshot next to the project when it has a directory
func (p *Project) Save() error {
	if p.dir == "" {
		return nil
	}
	return WriteSnapshot(filepath.Join(p.dir, p.name+".yaml"), p.Snapshot())
}

func (p *Project) instantiate(tpl *ItemTemplate, iface string, position int) *Item {
	it := &Item{
		project:   p,
		name:      tpl.Name,
		slots:     tpl.Slots,
		iface:     iface,
		position:  position,
		occupancy: make(map[slotKey]bool),
	}
	if tpl.Network != nil {
		it.network = &NetworkInterface{
			project:      p,
			owner:        it,
			ioController: tpl.Network.IoController,
			ioConnectors: tpl.Network.IoConnectors,
		}
	}
	for _, child := range tpl.Items {
		it.children = append(it.children, p.instantiate(child, "", 0))
	}
	return it
}

// Device is a simulated device
type Device struct {
	name           string
	typeIdentifier string
	items          []*Item
}

// Name returns the device name
func (d *Device) Name() string {
	return d.name
}

// TypeIdentifier returns the catalog type the device was created from
func (d *Device) TypeIdentifier() string {
	return d.typeIdentifier
}

// Items returns the device's immediate sub-items
func (d *Device) Items() []engineering.Item {
	return toItems(d.items)
}

type slotKey struct {
	iface    string
	position int
}

// Item is a node of a simulated hardware tree
type Item struct {
	project        *Project
	name           string
	typeIdentifier string
	iface          string
	position       int
	slots          []SlotRule
	occupancy      map[slotKey]bool
	children       []*Item
	network        *NetworkInterface
}

// Name returns the item name
func (i *Item) Name() string {
	return i.name
}

// SetName renames the item
func (i *Item) SetName(name string) error {
	if name == "" {
		return errors.New("name is empty")
	}
	i.name = name
	return nil
}

// Items returns the item's sub-items
func (i *Item) Items() []engineering.Item {
	return toItems(i.children)
}

// CanPlugNew reports whether a slot rule admits the module at a free position.
// Type identifiers missing from the catalog are an error, not a refusal.
func (i *Item) CanPlugNew(typeIdentifier, iface string, position int) (bool, error) {
	if _, ok := i.project.portal.catalog.module(typeIdentifier); !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownType, typeIdentifier)
	}
	if i.occupancy[slotKey{iface, position}] {
		return false, nil
	}
	orderNumber := domain.TrimCatalogPrefix(typeIdentifier)
	for _, rule := range i.slots {
		if rule.admits(orderNumber, iface, position) {
			return true, nil
		}
	}
	return false, nil
}

// PlugNew plugs a module and returns its item
func (i *Item) PlugNew(typeIdentifier, iface string, position int) (engineering.Item, error) {
	ok, err := i.CanPlugNew(typeIdentifier, iface, position)
	if err != nil {
		return nil, err
	}
	if !ok {
		if i.occupancy[slotKey{iface, position}] {
			return nil, fmt.Errorf("%s@%d: %w", iface, position, ErrSlotOccupied)
		}
		return nil, fmt.Errorf("%s@%d: %w", iface, position, ErrNotAdmitted)
	}

	hw, _ := i.project.portal.catalog.module(typeIdentifier)
	name := hw.Name
	if name == "" {
		name = domain.TrimCatalogPrefix(typeIdentifier)
	}
	mod := i.project.instantiate(&ItemTemplate{Name: name, Items: hw.Items}, iface, position)
	mod.typeIdentifier = typeIdentifier

	i.occupancy[slotKey{iface, position}] = true
	i.children = append(i.children, mod)
	return mod, nil
}

// NetworkInterface returns the item's network service
func (i *Item) NetworkInterface() (engineering.NetworkInterface, error) {
	if i.network == nil {
		return nil, engineering.ErrNoNetworkService
	}
	return i.network, nil
}

func toItems(items []*Item) []engineering.Item {
	out := make([]engineering.Item, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

// NetworkInterface is a simulated network service
type NetworkInterface struct {
	project      *Project
	owner        *Item
	ioController bool
	ioConnectors int
	address      string
	subnet       *Subnet
	ioSystem     *IoSystem
}

// Address returns the configured address
func (n *NetworkInterface) Address() string {
	return n.address
}

// SetAddress sets an IPv4 address
func (n *NetworkInterface) SetAddress(address string) error {
	addr, err := netip.ParseAddr(address)
	if err != nil || !addr.Is4() {
		return fmt.Errorf("invalid IPv4 address %q", address)
	}
	n.address = addr.String()
	return nil
}

// CreateAndConnectSubnet creates a subnet and connects this interface to it
func (n *NetworkInterface) CreateAndConnectSubnet(name string) (engineering.Subnet, error) {
	for _, s := range n.project.subnets {
		if s.name == name {
			return nil, fmt.Errorf("subnet %q: %w", name, ErrDuplicateName)
		}
	}
	s := &Subnet{name: name}
	n.project.subnets = append(n.project.subnets, s)
	if err := n.ConnectToSubnet(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ConnectToSubnet connects this interface to an existing subnet
func (n *NetworkInterface) ConnectToSubnet(subnet engineering.Subnet) error {
	s, ok := subnet.(*Subnet)
	if !ok || s == nil {
		return fmt.Errorf("subnet %v does not belong to this project", subnet)
	}
	if n.subnet != nil {
		return fmt.Errorf("already connected to subnet %q", n.subnet.name)
	}
	n.subnet = s
	s.members = append(s.members, n)
	return nil
}

// CreateIoSystem creates an IO system with this interface as controller
func (n *NetworkInterface) CreateIoSystem(name string) (engineering.IoSystem, error) {
	if !n.ioController {
		return nil, engineering.ErrNoIoController
	}
	if n.subnet == nil {
		return nil, errors.New("interface is not connected to a subnet")
	}
	io := &IoSystem{name: name, controller: n, subnet: n.subnet}
	n.ioSystem = io
	n.project.ioSystems = append(n.project.ioSystems, io)
	return io, nil
}

// IoConnectorCount returns the number of IO connector roles
func (n *NetworkInterface) IoConnectorCount() int {
	return n.ioConnectors
}

// ConnectToIoSystem joins the IO system as IO device
func (n *NetworkInterface) ConnectToIoSystem(ioSystem engineering.IoSystem) error {
	io, ok := ioSystem.(*IoSystem)
	if !ok || io == nil {
		return fmt.Errorf("IO system %v does not belong to this project", ioSystem)
	}
	if n.ioConnectors == 0 {
		return engineering.ErrNoIoConnector
	}
	if n.subnet != io.subnet {
		return fmt.Errorf("interface is not on subnet of IO system %q", io.name)
	}
	if n.ioSystem != nil {
		return fmt.Errorf("already assigned to IO system %q", n.ioSystem.name)
	}
	n.ioSystem = io
	io.devices = append(io.devices, n)
	return nil
}

// Subnet is a simulated subnet
type Subnet struct {
	name    string
	members []*NetworkInterface
}

// Name returns the subnet name
func (s *Subnet) Name() string {
	return s.name
}

// IoSystem is a simulated IO system
type IoSystem struct {
	name       string
	controller *NetworkInterface
	subnet     *Subnet
	devices    []*NetworkInterface
}

// Name returns the IO system name
func (io *IoSystem) Name() string {
	return io.name
}
