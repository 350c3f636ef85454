// Package codec reads and writes run reports in exchange formats.
package codec

import (
	"fmt"
	"io"
	"strings"

	"tiaforge/internal/domain"
)

// Importer reads a run report written by an Exporter
type Importer interface {
	Parse(r io.Reader) (*domain.Report, error)
	Format() string
}

// Exporter writes a run report
type Exporter interface {
	Export(report *domain.Report, w io.Writer) error
	Format() string
}

// ExporterFor returns the exporter for a format name
func ExporterFor(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	case "ansible", "ansible-inventory":
		return NewAnsibleCodec(), nil
	}
	return nil, fmt.Errorf("unsupported report format %q", format)
}
