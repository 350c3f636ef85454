package placement

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tiaforge/internal/domain"
	"tiaforge/internal/engineering"
)

type probeCall struct {
	item     engineering.Item
	iface    string
	position int
}

// recordProbes answers every CanPlugNew on item with answer and logs the call
func recordProbes(item *engineering.MockItem, calls *[]probeCall, answer func(iface string, pos int) (bool, error)) {
	item.EXPECT().CanPlugNew(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(typeID, iface string, pos int) (bool, error) {
			*calls = append(*calls, probeCall{item: item, iface: iface, position: pos})
			return answer(iface, pos)
		}).AnyTimes()
	item.EXPECT().Name().Return("item").AnyTimes()
}

func never(string, int) (bool, error) { return false, nil }

func TestPlaceFirstFit(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := engineering.NewMockDevice(ctrl)
	rack := engineering.NewMockItem(ctrl)
	head := engineering.NewMockItem(ctrl)
	plugged := engineering.NewMockItem(ctrl)

	device.EXPECT().Items().Return([]engineering.Item{rack, head})

	var calls []probeCall
	recordProbes(rack, &calls, never)
	recordProbes(head, &calls, func(iface string, pos int) (bool, error) {
		// PM@3 and everything after it would fit; the first one must win
		return iface == "PM" && pos >= 3 || iface == "P1", nil
	})
	head.EXPECT().PlugNew("OrderNumber:A1", "PM", 3).Return(plugged, nil)

	p, err := New().Place(device, domain.ModuleSpec{CatalogID: "A1"})
	require.NoError(t, err)

	assert.Same(t, plugged, p.Item)
	assert.Same(t, head, p.Slot.Container)
	assert.Equal(t, 1, p.Slot.ContainerIndex)
	assert.Equal(t, "PM", p.Slot.Interface)
	assert.Equal(t, 3, p.Slot.Position)
	assert.Equal(t, 42+14+3, p.Probes)
	assert.Len(t, calls, 42+14+3)

	// Search order: all of rack first, then head IO1 1..14, then PM 1..3
	assert.Same(t, rack, calls[0].item)
	assert.Equal(t, probeCall{item: rack, iface: "P1", position: 14}, calls[41])
	assert.Equal(t, probeCall{item: head, iface: "IO1", position: 1}, calls[42])
	assert.Equal(t, probeCall{item: head, iface: "PM", position: 3}, calls[len(calls)-1])
}

func TestPlaceAppliesDisplayName(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := engineering.NewMockDevice(ctrl)
	rack := engineering.NewMockItem(ctrl)
	plugged := engineering.NewMockItem(ctrl)

	device.EXPECT().Items().Return([]engineering.Item{rack})
	gomock.InOrder(
		rack.EXPECT().CanPlugNew("OrderNumber:A1", "IO1", 1).Return(true, nil),
		rack.EXPECT().PlugNew("OrderNumber:A1", "IO1", 1).Return(plugged, nil),
		plugged.EXPECT().SetName("DI 32"),
	)

	p, err := New().Place(device, domain.ModuleSpec{CatalogID: "A1", DisplayName: "DI 32"})
	require.NoError(t, err)
	assert.NoError(t, p.RenameErr)
	assert.Equal(t, 1, p.Probes)
}

func TestPlaceRenameFailureKeepsPlacement(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := engineering.NewMockDevice(ctrl)
	rack := engineering.NewMockItem(ctrl)
	plugged := engineering.NewMockItem(ctrl)

	device.EXPECT().Items().Return([]engineering.Item{rack})
	rack.EXPECT().CanPlugNew(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	rack.EXPECT().PlugNew(gomock.Any(), gomock.Any(), gomock.Any()).Return(plugged, nil)
	plugged.EXPECT().SetName("DI 32").Return(errors.New("name taken"))

	p, err := New().Place(device, domain.ModuleSpec{CatalogID: "A1", DisplayName: "DI 32"})
	require.NoError(t, err)
	require.Error(t, p.RenameErr)
	assert.Contains(t, p.RenameErr.Error(), "name taken")
}

func TestPlaceNoNameSkipsRename(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := engineering.NewMockDevice(ctrl)
	rack := engineering.NewMockItem(ctrl)
	plugged := engineering.NewMockItem(ctrl)

	device.EXPECT().Items().Return([]engineering.Item{rack})
	rack.EXPECT().CanPlugNew(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	rack.EXPECT().PlugNew(gomock.Any(), gomock.Any(), gomock.Any()).Return(plugged, nil)
	// no SetName expectation: calling it would fail the test

	_, err := New().Place(device, domain.ModuleSpec{CatalogID: "A1"})
	require.NoError(t, err)
}

func TestPlaceExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := engineering.NewMockDevice(ctrl)
	rack := engineering.NewMockItem(ctrl)

	device.EXPECT().Items().Return([]engineering.Item{rack})
	rack.EXPECT().CanPlugNew("OrderNumber:A1", gomock.Any(), gomock.Any()).Return(false, nil).Times(42)

	p, err := New().Place(device, domain.ModuleSpec{CatalogID: "A1"})
	assert.Nil(t, p)
	require.ErrorIs(t, err, ErrUnplaced)

	var perr *PlacementError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 42, perr.Probes)
	assert.Zero(t, perr.ProbeErrors)
	assert.Contains(t, err.Error(), "OrderNumber:A1")
}

func TestPlaceProbeErrorsAreNegativeAnswers(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := engineering.NewMockDevice(ctrl)
	rack := engineering.NewMockItem(ctrl)
	plugged := engineering.NewMockItem(ctrl)
	invalid := errors.New("invalid combination")

	device.EXPECT().Items().Return([]engineering.Item{rack})
	rack.EXPECT().Name().Return("Rail_0").AnyTimes()
	gomock.InOrder(
		rack.EXPECT().CanPlugNew(gomock.Any(), "IO1", 1).Return(false, invalid),
		rack.EXPECT().CanPlugNew(gomock.Any(), "IO1", 2).Return(true, nil),
		rack.EXPECT().PlugNew(gomock.Any(), "IO1", 2).Return(nil, errors.New("slot locked")),
		rack.EXPECT().CanPlugNew(gomock.Any(), "IO1", 3).Return(true, nil),
		rack.EXPECT().PlugNew(gomock.Any(), "IO1", 3).Return(plugged, nil),
	)

	var observed []Probe
	p, err := New(WithObserver(func(pr Probe) { observed = append(observed, pr) })).
		Place(device, domain.ModuleSpec{CatalogID: "A1"})
	require.NoError(t, err)

	assert.Equal(t, 3, p.Slot.Position)
	assert.Equal(t, 3, p.Probes)
	assert.Equal(t, 2, p.ProbeErrors)

	require.Len(t, observed, 3)
	assert.ErrorIs(t, observed[0].Err, invalid)
	assert.False(t, observed[0].Allowed)
	assert.True(t, observed[2].Allowed)
}

func TestPlaceAllProbesErrorReportsLastError(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := engineering.NewMockDevice(ctrl)
	rack := engineering.NewMockItem(ctrl)

	device.EXPECT().Items().Return([]engineering.Item{rack})
	rack.EXPECT().CanPlugNew(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, errors.New("malformed type identifier")).Times(42)

	_, err := New().Place(device, domain.ModuleSpec{CatalogID: "bad"})

	var perr *PlacementError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 42, perr.ProbeErrors)
	assert.EqualError(t, perr.LastErr, "malformed type identifier")
}

func TestPlaceDeviceWithoutItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := engineering.NewMockDevice(ctrl)
	device.EXPECT().Items().Return(nil)

	_, err := New().Place(device, domain.ModuleSpec{CatalogID: "A1"})

	var perr *PlacementError
	require.ErrorAs(t, err, &perr)
	assert.Zero(t, perr.Probes)
}

func TestPlaceDeterministic(t *testing.T) {
	run := func() []probeCall {
		ctrl := gomock.NewController(t)
		device := engineering.NewMockDevice(ctrl)
		rack := engineering.NewMockItem(ctrl)
		plugged := engineering.NewMockItem(ctrl)

		device.EXPECT().Items().Return([]engineering.Item{rack})
		var calls []probeCall
		recordProbes(rack, &calls, func(iface string, pos int) (bool, error) {
			return iface == "P1" && pos == 7, nil
		})
		rack.EXPECT().PlugNew(gomock.Any(), "P1", 7).Return(plugged, nil)

		_, err := New().Place(device, domain.ModuleSpec{CatalogID: "A1"})
		require.NoError(t, err)
		for i := range calls {
			calls[i].item = nil
		}
		return calls
	}

	first, second := run(), run()
	assert.Equal(t, first, second)
	assert.Len(t, first, 14+14+7)
}
