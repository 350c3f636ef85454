package codec

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"tiaforge/internal/domain"
)

func testReport() *domain.Report {
	started := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return &domain.Report{
		RunID:      "0b6f6a3e",
		Project:    "Plant",
		Input:      "devices.csv",
		Backend:    "sim",
		StartedAt:  started,
		FinishedAt: started.Add(2 * time.Second),
		Subnet:     "PN/IE_1",
		IoSystem:   "PNIO",
		Devices: []domain.DeviceReport{
			{Row: 0, DeviceType: "PLC", DeviceName: "PLC_1", CatalogID: "6ES7 513-1AL02-0AB0", Interfaces: 1,
				Modules: []domain.ModuleReport{{CatalogID: "6ES7 521-1BL00-0AB0", Status: domain.ModulePlugged, Container: "Rail_0", Interface: "IO1", Position: 2, Probes: 2}}},
			{Row: 1, DeviceType: "IO", DeviceName: "ET200_1", CatalogID: "6ES7 155-6AU01-0BN0", Interfaces: 1},
			{Row: 2, DeviceType: "HMI", DeviceName: "HMI_1", CatalogID: "6AV2 123-2GB03-0AX0", Interfaces: 1},
		},
		Interfaces: []domain.InterfaceReport{
			{Index: 0, Device: "PLC_1", Address: "192.168.0.1", Subnet: "PN/IE_1", Status: domain.InterfaceController},
			{Index: 1, Device: "ET200_1", Address: "192.168.0.2", Subnet: "PN/IE_1", Status: domain.InterfaceDevice},
			{Index: 2, Device: "HMI_1", Address: "192.168.0.3", Status: domain.InterfaceFailed, Error: "no subnet"},
		},
	}
}

func TestExporterFor(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"json", "json"},
		{"YAML", "yaml"},
		{"yml", "yaml"},
		{"ansible", "ansible-inventory"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exp, err := ExporterFor(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, exp.Format())
		})
	}

	_, err := ExporterFor("xml")
	assert.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	c := NewJSONCodec()
	var buf bytes.Buffer
	require.NoError(t, c.Export(testReport(), &buf))
	assert.Contains(t, buf.String(), `"run_id": "0b6f6a3e"`)

	got, err := c.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, testReport(), got)
}

func TestJSONParseRejectsUnknownFields(t *testing.T) {
	_, err := NewJSONCodec().Parse(strings.NewReader(`{"run_id":"x","nodes":[]}`))
	assert.ErrorContains(t, err, "failed to parse JSON")
}

func TestYAMLRoundTrip(t *testing.T) {
	c := NewYAMLCodec()
	var buf bytes.Buffer
	require.NoError(t, c.Export(testReport(), &buf))
	assert.Contains(t, buf.String(), "io_system: PNIO")

	got, err := c.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, testReport().Devices, got.Devices)
	assert.True(t, testReport().StartedAt.Equal(got.StartedAt))
}

func TestYAMLParseErrors(t *testing.T) {
	_, err := NewYAMLCodec().Parse(strings.NewReader("run_id: [unterminated"))
	assert.Error(t, err)

	_, err = NewYAMLCodec().Parse(strings.NewReader("run_id: x\nposture: stealth\n"))
	assert.Error(t, err)
}

func TestAnsibleExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewAnsibleCodec().Export(testReport(), &buf))

	var inv ansibleInventory
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &inv))

	assert.Equal(t, "Plant", inv.All.Vars["tia_project"])
	require.Len(t, inv.All.Children, 1)

	group, ok := inv.All.Children["pn_ie_1"]
	require.True(t, ok, "subnet group missing: %s", buf.String())
	assert.Equal(t, "PN/IE_1", group.Vars["subnet"])
	assert.Equal(t, "PNIO", group.Vars["io_system"])

	require.Len(t, group.Hosts, 2)
	plc := group.Hosts["PLC_1"]
	assert.Equal(t, "192.168.0.1", plc.AnsibleHost)
	assert.Equal(t, "controller", plc.Vars["io_role"])
	assert.Equal(t, "6ES7 513-1AL02-0AB0", plc.Vars["order_number"])
	assert.Equal(t, "io_device", group.Hosts["ET200_1"].Vars["io_role"])
	assert.NotContains(t, buf.String(), "HMI_1")
}

func TestGroupName(t *testing.T) {
	tests := map[string]string{
		"PN/IE_1":  "pn_ie_1",
		"":         "ungrouped",
		"10.0.0.x": "subnet_10_0_0_x",
		"--":       "ungrouped",
	}
	for in, want := range tests {
		assert.Equal(t, want, groupName(in), in)
	}
}
