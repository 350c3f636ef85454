package config

import (
	"tiaforge/internal/logger"
)

// Config is the root configuration structure
type Config struct {
	Version int           `yaml:"version"`
	Project ProjectConfig `yaml:"project"`
	Input   string        `yaml:"input,omitempty"` // spreadsheet path
	Portal  PortalConfig  `yaml:"portal"`
	Journal JournalConfig `yaml:"journal"`
	Logging logger.Config `yaml:"logging"`
	Report  ReportConfig  `yaml:"report"`
}

// ProjectConfig names the project to create
type ProjectConfig struct {
	Path string `yaml:"path"`
	Name string `yaml:"name"`
}

// PortalConfig selects and locates the engineering tool
type PortalConfig struct {
	Version     string  `yaml:"version"`
	Backend     Backend `yaml:"backend"`
	BridgeURL   string  `yaml:"bridge_url,omitempty"`
	InstallRoot string  `yaml:"install_root,omitempty"`
	Catalog     string  `yaml:"catalog,omitempty"` // simulator hardware catalog, empty = built in
	WithUI      bool    `yaml:"with_user_interface,omitempty"`
}

// JournalConfig locates the run journal. An empty path disables it.
type JournalConfig struct {
	Path string `yaml:"path"`
}

// ReportConfig controls report export after a run
type ReportConfig struct {
	Path   string       `yaml:"path,omitempty"`
	Format ReportFormat `yaml:"format,omitempty"`
}
