package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath names an explicit config file
	EnvConfigPath = "TIAFORGE_CONFIG"
	// ConfigFileName is looked up in the working directory
	ConfigFileName = "tiaforge.yaml"
	// ConfigDirName is the directory under the XDG and system config roots
	ConfigDirName = "tiaforge"

	configBase = "config.yaml"
)

// SearchPaths lists the config locations in lookup order:
// $TIAFORGE_CONFIG, ./tiaforge.yaml, $XDG_CONFIG_HOME/tiaforge,
// ~/.config/tiaforge and /etc/tiaforge. Unset variables are left out.
func SearchPaths() []string {
	var paths []string
	if env := os.Getenv(EnvConfigPath); env != "" {
		paths = append(paths, env)
	}
	paths = append(paths, ConfigFileName)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, ConfigDirName, configBase))
	}
	if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", ConfigDirName, configBase))
	}
	return append(paths, filepath.Join("/etc", ConfigDirName, configBase))
}

// FindConfigPath returns the first existing entry of SearchPaths, made
// absolute when it is relative, or "" when there is none.
func FindConfigPath() string {
	for _, p := range SearchPaths() {
		if !fileExists(p) {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			return abs
		}
		return p
	}
	return ""
}

// DefaultConfigPath is where init writes a new config: the per-user config
// directory, or the working directory when HOME is unknown
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, ConfigDirName, configBase)
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", ConfigDirName, configBase)
	}
	return ConfigFileName
}

// EnsureConfigDir creates the directory holding configPath
func EnsureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
