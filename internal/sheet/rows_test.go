package sheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiaforge/internal/domain"
)

func TestDiscoverModuleColumns(t *testing.T) {
	tests := []struct {
		name     string
		columns  []string
		expected []ModuleColumn
	}{
		{
			name:     "no module columns",
			columns:  []string{"DeviceType", "DeviceName", "MLFB", "IP", "SubnetName"},
			expected: nil,
		},
		{
			name:    "paired columns keep discovery order",
			columns: []string{"DeviceType", "Module2OrderNumber", "Module1OrderNumber", "Module1Name", "Module2Name"},
			expected: []ModuleColumn{
				{OrderColumn: "Module2OrderNumber", NameColumn: "Module2Name"},
				{OrderColumn: "Module1OrderNumber", NameColumn: "Module1Name"},
			},
		},
		{
			name:    "missing name column",
			columns: []string{"Module1OrderNumber"},
			expected: []ModuleColumn{
				{OrderColumn: "Module1OrderNumber"},
			},
		},
		{
			name:    "prefix match is case-insensitive",
			columns: []string{"MODULEORDERNUMBER1", "moduleOrderNumber2", "moduleName2"},
			expected: []ModuleColumn{
				{OrderColumn: "MODULEORDERNUMBER1"},
				{OrderColumn: "moduleOrderNumber2", NameColumn: "moduleName2"},
			},
		},
		{
			name:    "number after the order number prefix",
			columns: []string{"ModuleOrderNumber1", "ModuleName1", "ModuleOrderNumber2"},
			expected: []ModuleColumn{
				{OrderColumn: "ModuleOrderNumber1", NameColumn: "ModuleName1"},
				{OrderColumn: "ModuleOrderNumber2"},
			},
		},
		{
			name:     "order number elsewhere in the name does not match",
			columns:  []string{"OrderNumberModule1", "MLFB"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DiscoverModuleColumns(tt.columns))
		})
	}
}

func baseRow() Row {
	return Row{
		"DeviceType": " PLC ",
		"DeviceName": "PLC_1",
		"MLFB":       "6ES7 516-3AN02-0AB0",
		"IP":         "192.168.0.1 ",
		"SubnetName": "PN/IE_1",
	}
}

func TestParseRow(t *testing.T) {
	modules := []ModuleColumn{
		{OrderColumn: "Module1OrderNumber", NameColumn: "Module1Name"},
		{OrderColumn: "Module2OrderNumber", NameColumn: "Module2Name"},
		{OrderColumn: "Module3OrderNumber"},
	}

	t.Run("fixed fields are trimmed", func(t *testing.T) {
		dr, err := ParseRow(4, baseRow(), modules)
		require.NoError(t, err)
		assert.Equal(t, 4, dr.Index)
		assert.Equal(t, "PLC", dr.DeviceType)
		assert.Equal(t, "PLC_1", dr.DeviceName)
		assert.Equal(t, "6ES7 516-3AN02-0AB0", dr.CatalogID)
		assert.Equal(t, "192.168.0.1", dr.IP)
		assert.Equal(t, "PN/IE_1", dr.SubnetName)
		assert.Empty(t, dr.Modules)
	})

	t.Run("blank and NaN order cells are skipped", func(t *testing.T) {
		row := baseRow()
		row["Module1OrderNumber"] = "  "
		row["Module2OrderNumber"] = "NaN"
		row["Module3OrderNumber"] = "6ES7 521-1BL00-0AB0"

		dr, err := ParseRow(0, row, modules)
		require.NoError(t, err)
		assert.Equal(t, []domain.ModuleSpec{{CatalogID: "6ES7 521-1BL00-0AB0"}}, dr.Modules)
	})

	t.Run("modules keep column order and names", func(t *testing.T) {
		row := baseRow()
		row["Module1OrderNumber"] = "A1"
		row["Module1Name"] = " DI 32 "
		row["Module2OrderNumber"] = "A2"
		row["Module2Name"] = "nan"

		dr, err := ParseRow(0, row, modules)
		require.NoError(t, err)
		assert.Equal(t, []domain.ModuleSpec{
			{CatalogID: "A1", DisplayName: "DI 32"},
			{CatalogID: "A2"},
		}, dr.Modules)
	})

	t.Run("missing fixed column fails", func(t *testing.T) {
		row := baseRow()
		delete(row, "IP")
		_, err := ParseRow(2, row, nil)
		require.ErrorIs(t, err, ErrMissingColumn)
		assert.Contains(t, err.Error(), "IP")
	})
}

func TestRowValue(t *testing.T) {
	row := Row{"a": "1234.0", "b": "#N/A", "c": " x ", "d": "192.168.0.10"}

	v, ok := row.Value("a")
	assert.True(t, ok)
	assert.Equal(t, "1234", v)

	_, ok = row.Value("b")
	assert.False(t, ok)

	v, ok = row.Value("c")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	v, _ = row.Value("d")
	assert.Equal(t, "192.168.0.10", v)

	_, ok = row.Value("missing")
	assert.False(t, ok)
}

func TestParseTable(t *testing.T) {
	input := strings.Join([]string{
		"DeviceType,DeviceName,MLFB,IP,SubnetName,Module1OrderNumber,Module1Name,Module2OrderNumber,Module2Name",
		"PLC,PLC_1,6ES7 516-3AN02-0AB0,192.168.0.1,PN/IE_1,A1,Inputs,,",
		",,,,,,,,",
		"IM,ET200_1,6ES7 155-6AU01-0BN0,192.168.0.2,PN/IE_1,,,B2,Outputs",
	}, "\n")

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	rows, err := ParseTable(table)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "PLC_1", rows[0].DeviceName)
	assert.Equal(t, []domain.ModuleSpec{{CatalogID: "A1", DisplayName: "Inputs"}}, rows[0].Modules)
	assert.Equal(t, 1, rows[1].Index)
	assert.Equal(t, []domain.ModuleSpec{{CatalogID: "B2", DisplayName: "Outputs"}}, rows[1].Modules)
}

func TestParseTableMissingColumn(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("DeviceType,DeviceName,MLFB,IP\nPLC,PLC_1,X,1.2.3.4\n"))
	require.NoError(t, err)

	_, err = ParseTable(table)
	require.ErrorIs(t, err, ErrMissingColumn)
}

func TestParseTableNoRows(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("DeviceType,DeviceName,MLFB,IP,SubnetName\n"))
	require.NoError(t, err)

	rows, err := ParseTable(table)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
