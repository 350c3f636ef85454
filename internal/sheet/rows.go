package sheet

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"tiaforge/internal/domain"
)

// Fixed column names of a device sheet
const (
	ColumnDeviceType = "DeviceType"
	ColumnDeviceName = "DeviceName"
	ColumnMLFB       = "MLFB"
	ColumnIP         = "IP"
	ColumnSubnetName = "SubnetName"
)

// RequiredColumns lists the fixed columns every row is read from
var RequiredColumns = []string{ColumnDeviceType, ColumnDeviceName, ColumnMLFB, ColumnIP, ColumnSubnetName}

// moduleOrderColumn matches both ModuleOrderNumber1 and Module1OrderNumber
var moduleOrderColumn = regexp.MustCompile(`(?i)^module\d*ordernumber`)

// ErrMissingColumn is returned when a fixed column is not in the sheet
var ErrMissingColumn = errors.New("missing column")

// ModuleColumn pairs a module order-number column with its optional name column
type ModuleColumn struct {
	OrderColumn string
	NameColumn  string // empty when the sheet has no matching name column
}

// DiscoverModuleColumns scans a header once and pairs module columns.
// Order columns are matched case-insensitively on a moduleordernumber
// prefix, optionally with the module number after "module". The name column is the same header with OrderNumber replaced by
// Name, and is kept only if the sheet has it.
func DiscoverModuleColumns(columns []string) []ModuleColumn {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	var pairs []ModuleColumn
	for _, col := range columns {
		if !moduleOrderColumn.MatchString(col) {
			continue
		}
		pair := ModuleColumn{OrderColumn: col}
		nameCol := strings.ReplaceAll(col, "OrderNumber", "Name")
		if nameCol != col && present[nameCol] {
			pair.NameColumn = nameCol
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

// ParseRow normalizes one row into a DeviceRow. Module slots whose order
// number cell is blank are skipped.
func ParseRow(index int, row Row, modules []ModuleColumn) (domain.DeviceRow, error) {
	for _, col := range RequiredColumns {
		if _, ok := row[col]; !ok {
			return domain.DeviceRow{}, fmt.Errorf("row %d: %w %s", index, ErrMissingColumn, col)
		}
	}

	dr := domain.DeviceRow{
		Index:      index,
		DeviceType: row.String(ColumnDeviceType),
		DeviceName: row.String(ColumnDeviceName),
		CatalogID:  row.String(ColumnMLFB),
		IP:         row.String(ColumnIP),
		SubnetName: row.String(ColumnSubnetName),
	}

	for _, mc := range modules {
		order, ok := row.Value(mc.OrderColumn)
		if !ok {
			continue
		}
		spec := domain.ModuleSpec{CatalogID: order}
		if mc.NameColumn != "" {
			spec.DisplayName = row.String(mc.NameColumn)
		}
		dr.Modules = append(dr.Modules, spec)
	}

	return dr, nil
}

// ParseTable discovers module columns once and parses every row in order
func ParseTable(t *Table) ([]domain.DeviceRow, error) {
	for _, col := range RequiredColumns {
		if !t.HasColumn(col) {
			return nil, fmt.Errorf("%w %s", ErrMissingColumn, col)
		}
	}

	modules := DiscoverModuleColumns(t.Columns)
	rows := make([]domain.DeviceRow, 0, len(t.Rows))
	for i, r := range t.Rows {
		dr, err := ParseRow(i, r, modules)
		if err != nil {
			return nil, err
		}
		rows = append(rows, dr)
	}
	return rows, nil
}

// Load reads path and parses it into device rows
func Load(path string) ([]domain.DeviceRow, []ModuleColumn, error) {
	t, err := ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	rows, err := ParseTable(t)
	if err != nil {
		return nil, nil, err
	}
	return rows, DiscoverModuleColumns(t.Columns), nil
}
