//go:generate mockgen -destination=mock_engineering.go -package=engineering tiaforge/internal/engineering Portal,Project,Device,Item,NetworkInterface,Subnet,IoSystem

package engineering

import "errors"

var (
	// ErrNoNetworkService is returned by Item.NetworkInterface when the item
	// is not network capable
	ErrNoNetworkService = errors.New("item provides no network interface")
	// ErrNoIoController is returned when an interface cannot act as IO controller
	ErrNoIoController = errors.New("interface has no IO controller role")
	// ErrNoIoConnector is returned when an interface cannot join an IO system
	ErrNoIoConnector = errors.New("interface has no IO connector role")
	// ErrClosed is returned by calls on a portal that was already closed
	ErrClosed = errors.New("portal closed")
)

// Portal is a running instance of the engineering tool
type Portal interface {
	// CreateProject creates a new project named name inside dir
	CreateProject(dir, name string) (Project, error)
	// Close releases the tool instance
	Close() error
}

// Project is an open engineering project
type Project interface {
	Name() string
	// CreateDevice instantiates a device from a catalog type identifier
	CreateDevice(typeIdentifier, name string) (Device, error)
	// Save persists the project
	Save() error
}

// Device is a station created in the project
type Device interface {
	Name() string
	// Items returns the device's immediate sub-items (racks, heads, slots)
	// in the order the tool reports them
	Items() []Item
}

// Item is a node of a device's hardware tree
type Item interface {
	Name() string
	SetName(name string) error
	// Items returns the item's own sub-items
	Items() []Item
	// CanPlugNew asks whether typeIdentifier may be plugged at (iface, position)
	CanPlugNew(typeIdentifier, iface string, position int) (bool, error)
	// PlugNew plugs typeIdentifier at (iface, position) and returns the new item
	PlugNew(typeIdentifier, iface string, position int) (Item, error)
	// NetworkInterface returns the item's network service or ErrNoNetworkService
	NetworkInterface() (NetworkInterface, error)
}

// NetworkInterface is the network service of a network-capable item
type NetworkInterface interface {
	// SetAddress sets the address attribute of the interface's first node
	SetAddress(address string) error
	// CreateAndConnectSubnet creates a subnet and connects the first node to it
	CreateAndConnectSubnet(name string) (Subnet, error)
	// ConnectToSubnet connects the first node to an existing subnet
	ConnectToSubnet(subnet Subnet) error
	// CreateIoSystem creates an IO system rooted at the first IO controller
	CreateIoSystem(name string) (IoSystem, error)
	// IoConnectorCount returns how many IO connector roles the interface exposes
	IoConnectorCount() int
	// ConnectToIoSystem connects the first IO connector to ioSystem
	ConnectToIoSystem(ioSystem IoSystem) error
}

// Subnet is a named network segment
type Subnet interface {
	Name() string
}

// IoSystem binds one controller interface to its IO devices
type IoSystem interface {
	Name() string
}
