package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Backend selects the engineering tool implementation
type Backend string

const (
	BackendBridge Backend = "bridge" // Openness bridge host over websocket
	BackendSim    Backend = "sim"    // in-memory simulator
)

// ParseBackend converts a string to Backend
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case BackendBridge:
		return BackendBridge, nil
	case BackendSim, "simulator":
		return BackendSim, nil
	}
	return "", fmt.Errorf("unknown backend %q (want bridge or sim)", s)
}

// ReportFormat is the encoding of an exported report
type ReportFormat string

const (
	FormatJSON    ReportFormat = "json"
	FormatYAML    ReportFormat = "yaml"
	FormatAnsible ReportFormat = "ansible" // inventory of addressed devices
)

// ParseReportFormat converts a string to ReportFormat, accepting yml and
// ansible-inventory as aliases
func ParseReportFormat(s string) (ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "ansible", "ansible-inventory":
		return FormatAnsible, nil
	}
	return "", fmt.Errorf("unknown report format %q (want json, yaml or ansible)", s)
}

// FormatForPath guesses the report format from a file extension
func FormatForPath(path string) ReportFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}
