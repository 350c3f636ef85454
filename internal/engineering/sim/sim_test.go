package sim

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiaforge/internal/engineering"
)

const (
	cpu1513 = "OrderNumber:6ES7 513-1AL02-0AB0"
	im155   = "OrderNumber:6ES7 155-6AU01-0BN0"
	di32    = "OrderNumber:6ES7 521-1BL00-0AB0"
	di16    = "OrderNumber:6ES7 131-6BH01-0BA0"
	busPS   = "OrderNumber:6EP7 133-6AB00-0BN0"
)

func newProject(t *testing.T) *Project {
	t.Helper()
	proj, err := NewPortal(nil).CreateProject("", "Plant")
	require.NoError(t, err)
	return proj.(*Project)
}

func networkOf(t *testing.T, d engineering.Device) []engineering.NetworkInterface {
	t.Helper()
	var out []engineering.NetworkInterface
	for _, it := range d.Items() {
		for _, sub := range it.Items() {
			ni, err := sub.NetworkInterface()
			if errors.Is(err, engineering.ErrNoNetworkService) {
				continue
			}
			require.NoError(t, err)
			out = append(out, ni)
		}
	}
	return out
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	assert.NotEmpty(t, c.Devices)
	assert.NotEmpty(t, c.Modules)

	_, ok := c.device(cpu1513)
	assert.True(t, ok)
	_, ok = c.module("6ES7 521-1BL00-0AB0")
	assert.True(t, ok, "lookup also works without prefix")
}

func TestParseCatalogRejectsBadSlotRule(t *testing.T) {
	_, err := ParseCatalog([]byte(`
devices:
  "X":
    items:
      - name: Rack
        slots:
          - interface: IO1
            from: 5
            to: 2
`))
	assert.Error(t, err)

	_, err = ParseCatalog([]byte("devices: [oops"))
	assert.Error(t, err)
}

func TestCreateDevice(t *testing.T) {
	proj := newProject(t)

	d, err := proj.CreateDevice(cpu1513, "PLC_1")
	require.NoError(t, err)
	assert.Equal(t, "PLC_1", d.Name())
	require.Len(t, d.Items(), 2)
	assert.Equal(t, "Rail_0", d.Items()[0].Name())

	_, err = proj.CreateDevice(cpu1513, "PLC_1")
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = proj.CreateDevice("OrderNumber:0000", "X")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestCanPlugNewAndPlugNew(t *testing.T) {
	proj := newProject(t)
	d, err := proj.CreateDevice(cpu1513, "PLC_1")
	require.NoError(t, err)
	rail := d.Items()[0]
	head := d.Items()[1]

	ok, err := rail.CanPlugNew(di32, "IO1", 1)
	require.NoError(t, err)
	assert.False(t, ok, "position 1 holds the CPU")

	ok, err = rail.CanPlugNew(di32, "IO1", 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = rail.CanPlugNew(di16, "IO1", 2)
	require.NoError(t, err)
	assert.False(t, ok, "ET 200SP module does not fit an S7-1500 rail")

	ok, err = head.CanPlugNew(di32, "IO1", 2)
	require.NoError(t, err)
	assert.False(t, ok, "items without slot rules take nothing")

	_, err = rail.CanPlugNew("OrderNumber:bogus", "IO1", 2)
	assert.ErrorIs(t, err, ErrUnknownType)

	mod, err := rail.PlugNew(di32, "IO1", 2)
	require.NoError(t, err)
	assert.Equal(t, "DI 32x24VDC HF", mod.Name())
	require.NoError(t, mod.SetName("Inputs"))
	assert.Equal(t, "Inputs", mod.Name())
	assert.Error(t, mod.SetName(""))

	ok, err = rail.CanPlugNew(di32, "IO1", 2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = rail.PlugNew(di32, "IO1", 2)
	assert.ErrorIs(t, err, ErrSlotOccupied)
	_, err = rail.PlugNew(di32, "PM", 1)
	assert.ErrorIs(t, err, ErrNotAdmitted)

	assert.Len(t, rail.Items(), 1)
}

func TestNetworkTopology(t *testing.T) {
	proj := newProject(t)
	plc, err := proj.CreateDevice(cpu1513, "PLC_1")
	require.NoError(t, err)
	io, err := proj.CreateDevice(im155, "ET200_1")
	require.NoError(t, err)

	plcIfaces := networkOf(t, plc)
	ioIfaces := networkOf(t, io)
	require.Len(t, plcIfaces, 1)
	require.Len(t, ioIfaces, 1)
	controller, device := plcIfaces[0], ioIfaces[0]

	assert.Error(t, controller.SetAddress("not-an-ip"))
	require.NoError(t, controller.SetAddress("192.168.0.1"))

	_, err = controller.CreateIoSystem("PNIO")
	assert.Error(t, err, "controller must be on a subnet first")

	subnet, err := controller.CreateAndConnectSubnet("PN/IE_1")
	require.NoError(t, err)
	assert.Equal(t, "PN/IE_1", subnet.Name())

	_, err = device.CreateAndConnectSubnet("PN/IE_1")
	assert.ErrorIs(t, err, ErrDuplicateName)

	ioSystem, err := controller.CreateIoSystem("PNIO")
	require.NoError(t, err)

	_, err = device.CreateIoSystem("PNIO")
	assert.ErrorIs(t, err, engineering.ErrNoIoController)

	require.NoError(t, device.SetAddress("192.168.0.2"))
	assert.Error(t, device.ConnectToIoSystem(ioSystem), "device must share the subnet")
	require.NoError(t, device.ConnectToSubnet(subnet))
	assert.Error(t, device.ConnectToSubnet(subnet))
	assert.Equal(t, 1, device.IoConnectorCount())
	require.NoError(t, device.ConnectToIoSystem(ioSystem))
	assert.Error(t, device.ConnectToIoSystem(ioSystem))

	assert.ErrorIs(t, controller.ConnectToIoSystem(ioSystem), engineering.ErrNoIoConnector)

	snap := proj.Snapshot()
	require.Len(t, snap.Subnets, 1)
	assert.Equal(t, []string{"PLC_1/PLC/PROFINET interface_1", "ET200_1/IM 155-6 PN ST/PROFINET interface"}, snap.Subnets[0].Members)
	require.Len(t, snap.IoSystems, 1)
	assert.Equal(t, "PLC_1/PLC/PROFINET interface_1", snap.IoSystems[0].Controller)
	assert.Equal(t, []string{"ET200_1/IM 155-6 PN ST/PROFINET interface"}, snap.IoSystems[0].Devices)
}

func TestItemWithoutNetwork(t *testing.T) {
	proj := newProject(t)
	d, err := proj.CreateDevice(im155, "ET200_1")
	require.NoError(t, err)

	_, err = d.Items()[0].NetworkInterface()
	assert.ErrorIs(t, err, engineering.ErrNoNetworkService)
}

func TestProjectOnDisk(t *testing.T) {
	dir := t.TempDir()
	portal := NewPortal(nil)

	proj, err := portal.CreateProject(dir, "Plant")
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(dir, "Plant"))

	_, err = portal.CreateProject(dir, "Plant")
	assert.ErrorIs(t, err, ErrProjectExists)

	d, err := proj.CreateDevice(im155, "ET200_1")
	require.NoError(t, err)
	_, err = d.Items()[0].PlugNew(busPS, "PM", 1)
	require.NoError(t, err)
	require.NoError(t, proj.Save())

	snap, err := ReadSnapshot(filepath.Join(dir, "Plant", "Plant.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Plant", snap.Project)
	require.Len(t, snap.Devices, 1)
	rack := snap.Devices[0].Items[0]
	require.Len(t, rack.Items, 1)
	assert.Equal(t, "PM", rack.Items[0].Interface)
	assert.Equal(t, 1, rack.Items[0].Position)
	assert.Equal(t, busPS, rack.Items[0].TypeIdentifier)

	require.NoError(t, portal.Close())
	_, err = portal.CreateProject(dir, "Other")
	assert.ErrorIs(t, err, engineering.ErrClosed)
	_, statErr := os.Stat(filepath.Join(dir, "Other"))
	assert.True(t, os.IsNotExist(statErr))
}
