package sheet

import (
	"regexp"
	"strings"
)

// Row maps a column name to the raw cell text of one spreadsheet row
type Row map[string]string

// Table is a parsed sheet: header columns in file order and data rows
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether name is one of the table's columns
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

var (
	integralFloat = regexp.MustCompile(`^-?\d+\.0+$`)
	nanSpellings  = map[string]bool{"nan": true, "#n/a": true, "n/a": true, "null": true}
)

// IsMissing reports whether a cell value counts as empty
func IsMissing(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || nanSpellings[strings.ToLower(v)]
}

// Value returns the trimmed cell for column and whether it holds data.
// Absent columns, blank cells and NaN spellings all report false.
func (r Row) Value(column string) (string, bool) {
	raw, ok := r[column]
	if !ok || IsMissing(raw) {
		return "", false
	}
	return normalize(raw), true
}

// String returns the trimmed cell for column, empty when missing
func (r Row) String(column string) string {
	v, _ := r.Value(column)
	return v
}

// normalize trims a cell and drops a zero fraction left behind by numeric
// spreadsheet cells (1234.0 -> 1234)
func normalize(raw string) string {
	v := strings.TrimSpace(raw)
	if integralFloat.MatchString(v) {
		v = v[:strings.IndexByte(v, '.')]
	}
	return v
}

// empty reports whether every cell of a record is blank
func empty(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// build converts a header and raw records into a Table
func build(header []string, records [][]string) *Table {
	t := &Table{Columns: make([]string, len(header))}
	for i, h := range header {
		t.Columns[i] = strings.TrimSpace(h)
	}

	for _, rec := range records {
		if empty(rec) {
			continue
		}
		row := make(Row, len(t.Columns))
		for i, col := range t.Columns {
			if col == "" {
				continue
			}
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}
