// Package config provides configuration management for tiaforge.
//
// A config file holds the defaults for a run: where the project goes, which
// engineering tool version and backend to drive, where the run journal
// lives. Command-line flags override file values.
//
// Config file locations (priority order):
//  1. $TIAFORGE_CONFIG
//  2. ./tiaforge.yaml
//  3. $XDG_CONFIG_HOME/tiaforge/config.yaml
//  4. ~/.config/tiaforge/config.yaml
//  5. /etc/tiaforge/config.yaml
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tiaforge/internal/logger"
)

// DefaultVersion is the engineering tool version used when none is set
const DefaultVersion = "18"

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// Resolve loads the config at path, or searches the default locations
// when path is empty
func Resolve(path string) (*Config, string, error) {
	if path != "" {
		return LoadFromPath(path)
	}
	return Load()
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns defaults for a new installation
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Portal: PortalConfig{
			Version:     DefaultVersion,
			Backend:     BackendBridge,
			BridgeURL:   "ws://127.0.0.1:8765/bridge",
			InstallRoot: DefaultInstallRoot,
		},
		Journal: JournalConfig{Path: "./tiaforge.db"},
		Logging: logger.DefaultConfig(),
		Report:  ReportConfig{Format: FormatJSON},
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.Portal.Version == "" {
		c.Portal.Version = def.Portal.Version
	}
	if c.Portal.Backend == "" {
		c.Portal.Backend = def.Portal.Backend
	}
	if c.Portal.BridgeURL == "" {
		c.Portal.BridgeURL = def.Portal.BridgeURL
	}
	if c.Portal.InstallRoot == "" {
		c.Portal.InstallRoot = def.Portal.InstallRoot
	}
	if c.Logging.Output == "" {
		c.Logging.Output = def.Logging.Output
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Report.Format == "" {
		if c.Report.Path != "" {
			c.Report.Format = FormatForPath(c.Report.Path)
		} else {
			c.Report.Format = def.Report.Format
		}
	}
}

// Validate checks that a run can start with this config
func (c *Config) Validate() error {
	var errs []error

	if c.Project.Path == "" {
		errs = append(errs, errors.New("project.path is required"))
	}
	if c.Project.Name == "" {
		errs = append(errs, errors.New("project.name is required"))
	}
	if c.Input == "" {
		errs = append(errs, errors.New("input is required"))
	}
	if c.Portal.Version == "" {
		errs = append(errs, errors.New("portal.version is required"))
	}
	if _, err := ParseBackend(string(c.Portal.Backend)); err != nil {
		errs = append(errs, fmt.Errorf("portal.backend: %w", err))
	}
	if c.Portal.Backend == BackendBridge && c.Portal.BridgeURL == "" {
		errs = append(errs, errors.New("portal.bridge_url is required for the bridge backend"))
	}
	if c.Report.Format != "" {
		if _, err := ParseReportFormat(string(c.Report.Format)); err != nil {
			errs = append(errs, fmt.Errorf("report.format: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	summary := fmt.Sprintf("Project: %s (in %s)\n", c.Project.Name, c.Project.Path)
	summary += fmt.Sprintf("Portal: V%s via %s\n", c.Portal.Version, c.Portal.Backend)
	if c.Portal.Backend == BackendBridge {
		summary += fmt.Sprintf("Bridge: %s, assembly %s\n", c.Portal.BridgeURL, c.Portal.AssemblyPath())
	}
	if c.Journal.Path != "" {
		summary += fmt.Sprintf("Journal: %s", c.Journal.Path)
	} else {
		summary += "Journal: disabled"
	}
	return summary
}
