package config

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultInstallRoot is where the engineering tool installs on Windows
const DefaultInstallRoot = `C:\Program Files\Siemens\Automation`

// AssemblyPath returns the location of the public API assembly for the
// configured version under the install root.
func (p PortalConfig) AssemblyPath() string {
	return AssemblyPath(p.InstallRoot, p.Version)
}

// AssemblyPath builds <root>/Portal V<ver>/PublicAPI/V<ver>/Siemens.Engineering.dll
func AssemblyPath(root, version string) string {
	if root == "" {
		root = DefaultInstallRoot
	}
	v := "V" + version
	return joinPath(root, "Portal "+v, "PublicAPI", v, "Siemens.Engineering.dll")
}

// joinPath keeps Windows separators when the root uses them, so paths
// sent to a bridge host on Windows look native.
func joinPath(root string, elem ...string) string {
	if strings.Contains(root, `\`) {
		return strings.TrimRight(root, `\`) + `\` + strings.Join(elem, `\`)
	}
	return filepath.Join(append([]string{root}, elem...)...)
}

// InstalledVersions lists portal versions under root that ship the public
// API assembly, newest first.
func InstalledVersions(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var versions []string
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), "Portal V") {
			continue
		}
		ver := strings.TrimPrefix(e.Name(), "Portal V")
		if fileExists(AssemblyPath(root, ver)) {
			versions = append(versions, ver)
		}
	}

	sort.Slice(versions, func(i, j int) bool {
		a, errA := strconv.ParseFloat(versions[i], 64)
		b, errB := strconv.ParseFloat(versions[j], 64)
		if errA != nil || errB != nil {
			return versions[i] > versions[j]
		}
		return a > b
	})
	return versions
}
