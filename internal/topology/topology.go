// Package topology assigns addresses, the subnet and the IO system to the
// network interfaces discovered across all devices of a run.
//
// Interfaces are paired with spreadsheet rows by position: interface i takes
// the address of row i, whichever device it belongs to. Interfaces beyond
// the last row are left alone. The first interface anchors the topology: it
// creates the subnet named by row 0 and the PNIO IO system as controller.
// Every later interface joins that subnet and, when it has an IO connector,
// that IO system.
package topology

import (
	"errors"
	"fmt"

	"tiaforge/internal/domain"
	"tiaforge/internal/engineering"
	"tiaforge/internal/narration"
)

// IoSystemName is the name given to the IO system created from the first interface
const IoSystemName = "PNIO"

var (
	// ErrNoSubnet is returned for an interface when the anchor subnet was never created
	ErrNoSubnet = errors.New("no subnet was created by the first interface")
	// ErrNoIoSystem is returned for an interface when the anchor IO system was never created
	ErrNoIoSystem = errors.New("no IO system was created by the first interface")
)

// Interface is a discovered network service and the device it came from
type Interface struct {
	Device  string
	Item    string
	Service engineering.NetworkInterface
}

// State holds the subnet and IO system of a run. Both are set at most once,
// from the first interface, and never replaced.
type State struct {
	Subnet   engineering.Subnet
	IoSystem engineering.IoSystem
}

// Builder configures interface topology
type Builder struct {
	narrator *narration.Narrator
}

// New creates a builder narrating to n (nil discards)
func New(n *narration.Narrator) *Builder {
	if n == nil {
		n = narration.New(nil)
	}
	return &Builder{narrator: n}
}

// Assign configures ifaces in order against rows. A failure on one interface
// is narrated and recorded; the remaining interfaces are still processed.
func (b *Builder) Assign(ifaces []Interface, rows []domain.DeviceRow) (*State, []domain.InterfaceReport) {
	state := &State{}
	reports := make([]domain.InterfaceReport, 0, len(ifaces))

	for i, iface := range ifaces {
		rep := domain.InterfaceReport{Index: i, Device: iface.Device}
		if i >= len(rows) {
			rep.Status = domain.InterfaceSkipped
			reports = append(reports, rep)
			continue
		}

		row := rows[i]
		rep.Address = row.IP

		var err error
		if i == 0 {
			rep.Status, err = b.anchor(state, iface.Service, row)
		} else {
			rep.Status, err = b.join(state, iface.Service, row)
		}
		if state.Subnet != nil {
			rep.Subnet = state.Subnet.Name()
		}

		if err != nil {
			rep.Status = domain.InterfaceFailed
			rep.Error = err.Error()
			b.narrator.Warnf("Network config error on %s (interface %d): %v", iface.Device, i, err)
		} else {
			b.narrator.Successf("Configured %s interface %d: address %s, %s", iface.Device, i, row.IP, rep.Status)
		}
		reports = append(reports, rep)
	}

	return state, reports
}

// anchor configures the first interface: address, new subnet, new IO system
func (b *Builder) anchor(state *State, ni engineering.NetworkInterface, row domain.DeviceRow) (domain.InterfaceStatus, error) {
	if err := ni.SetAddress(row.IP); err != nil {
		return domain.InterfaceFailed, fmt.Errorf("set address %s: %w", row.IP, err)
	}

	subnet, err := ni.CreateAndConnectSubnet(row.SubnetName)
	if err != nil {
		return domain.InterfaceFailed, fmt.Errorf("create subnet %s: %w", row.SubnetName, err)
	}
	state.Subnet = subnet

	ioSystem, err := ni.CreateIoSystem(IoSystemName)
	if err != nil {
		return domain.InterfaceFailed, fmt.Errorf("create IO system %s: %w", IoSystemName, err)
	}
	state.IoSystem = ioSystem

	return domain.InterfaceController, nil
}

// join configures a later interface against the existing subnet and IO system
func (b *Builder) join(state *State, ni engineering.NetworkInterface, row domain.DeviceRow) (domain.InterfaceStatus, error) {
	if err := ni.SetAddress(row.IP); err != nil {
		return domain.InterfaceFailed, fmt.Errorf("set address %s: %w", row.IP, err)
	}

	if state.Subnet == nil {
		return domain.InterfaceFailed, ErrNoSubnet
	}
	if err := ni.ConnectToSubnet(state.Subnet); err != nil {
		return domain.InterfaceFailed, fmt.Errorf("connect to subnet %s: %w", state.Subnet.Name(), err)
	}

	if ni.IoConnectorCount() == 0 {
		return domain.InterfaceSubnetOnly, nil
	}
	if state.IoSystem == nil {
		return domain.InterfaceFailed, ErrNoIoSystem
	}
	if err := ni.ConnectToIoSystem(state.IoSystem); err != nil {
		return domain.InterfaceFailed, fmt.Errorf("connect to IO system %s: %w", state.IoSystem.Name(), err)
	}

	return domain.InterfaceDevice, nil
}
