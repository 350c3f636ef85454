package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiaforge/internal/config"
	"tiaforge/internal/domain"
)

const testInput = `DeviceType,DeviceName,MLFB,IP,SubnetName,Module1OrderNumber,Module1Name
PLC,PLC_1,6ES7 513-1AL02-0AB0,192.168.0.1,PN/IE_1,6ES7 521-1BL00-0AB0,Inputs
IO,ET200_1,6ES7 155-6AU01-0BN0,192.168.0.2,PN/IE_1,,
`

// captureStdout redirects command output for the duration of the test
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.Execute()
}

func TestCreateOptionsApply(t *testing.T) {
	cmd := createCmd()
	require.NoError(t, cmd.Flags().Set("project-name", "Line3"))
	require.NoError(t, cmd.Flags().Set("backend", "simulator"))
	require.NoError(t, cmd.Flags().Set("report", "out/run.yml"))
	require.NoError(t, cmd.Flags().Set("no-journal", "true"))

	opts := createOptions{projectName: "Line3", backend: "simulator", reportPath: "out/run.yml", noJournal: true}
	c := config.DefaultConfig()
	c.Project.Path = "/projects"

	require.NoError(t, opts.apply(cmd, c))
	assert.Equal(t, "Line3", c.Project.Name)
	assert.Equal(t, "/projects", c.Project.Path)
	assert.Equal(t, config.BackendSim, c.Portal.Backend)
	assert.Equal(t, config.FormatYAML, c.Report.Format)
	assert.Empty(t, c.Journal.Path)
	assert.Equal(t, config.DefaultVersion, c.Portal.Version)
}

func TestCreateOptionsApplyRejectsBadValues(t *testing.T) {
	cmd := createCmd()
	require.NoError(t, cmd.Flags().Set("backend", "excel"))
	err := createOptions{backend: "excel"}.apply(cmd, config.DefaultConfig())
	assert.Error(t, err)

	cmd = createCmd()
	require.NoError(t, cmd.Flags().Set("report-format", "csv"))
	err = createOptions{reportFormat: "csv"}.apply(cmd, config.DefaultConfig())
	assert.Error(t, err)
}

func TestExportReport(t *testing.T) {
	log = zerolog.Nop()
	report := &domain.Report{
		RunID:   "run-1",
		Project: "Line3",
		Devices: []domain.DeviceReport{{Row: 0, DeviceName: "PLC_1"}},
	}

	path := filepath.Join(t.TempDir(), "reports", "run.yaml")
	require.NoError(t, exportReport(report, config.ReportConfig{Path: path, Format: config.FormatYAML}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run_id: run-1")

	assert.NoError(t, exportReport(report, config.ReportConfig{}), "no path means no export")
	assert.Error(t, exportReport(report, config.ReportConfig{Path: path, Format: "csv"}))
}

func TestCreateRunsShow(t *testing.T) {
	out := captureStdout(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "devices.csv", testInput)
	reportPath := filepath.Join(dir, "report.json")
	cfgPath := writeFile(t, dir, "tiaforge.yaml", fmt.Sprintf(`
project:
  path: %s
  name: Line3
portal:
  backend: sim
journal:
  path: %s
logging:
  level: error
`, filepath.Join(dir, "projects"), filepath.Join(dir, "journal.db")))

	require.NoError(t, execute(t, "--config", cfgPath, "create", "--quiet", "--report", reportPath, input))
	assert.Contains(t, out.String(), "Line3")
	assert.FileExists(t, reportPath)
	assert.DirExists(t, filepath.Join(dir, "projects", "Line3"))

	out.Reset()
	require.NoError(t, execute(t, "--config", cfgPath, "runs"))
	listing := out.String()
	assert.Contains(t, listing, "Line3")
	assert.Contains(t, listing, "sim")

	fields := strings.Fields(strings.Split(listing, "\n")[1])
	require.NotEmpty(t, fields)
	prefix := fields[0]

	out.Reset()
	require.NoError(t, execute(t, "--config", cfgPath, "show", prefix))
	assert.Contains(t, out.String(), "PLC_1")
	assert.Contains(t, out.String(), "6ES7 521-1BL00-0AB0")

	out.Reset()
	require.NoError(t, execute(t, "--config", cfgPath, "show", "-o", "ansible", prefix))
	assert.Contains(t, out.String(), "192.168.0.2")

	err := execute(t, "--config", cfgPath, "show", "ffffffff")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestRunsWithoutJournal(t *testing.T) {
	captureStdout(t)
	cfgPath := writeFile(t, t.TempDir(), "tiaforge.yaml", "logging:\n  level: error\n")
	assert.ErrorIs(t, execute(t, "--config", cfgPath, "runs"), errNoJournal)
}

func TestPlanSimulate(t *testing.T) {
	out := captureStdout(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "devices.csv", testInput)
	cfgPath := writeFile(t, dir, "tiaforge.yaml", "logging:\n  level: error\n")

	require.NoError(t, execute(t, "--config", cfgPath, "plan", input))
	assert.Contains(t, out.String(), "2 devices, 1 modules")
	assert.Contains(t, out.String(), "Module1OrderNumber -> Module1Name")

	out.Reset()
	require.NoError(t, execute(t, "--config", cfgPath, "plan", "--simulate", input))
	assert.Contains(t, out.String(), "Plugged OrderNumber:6ES7 521-1BL00-0AB0")
}

func TestVersions(t *testing.T) {
	out := captureStdout(t)
	root := t.TempDir()
	for _, v := range []string{"17", "18"} {
		dll := config.AssemblyPath(root, v)
		require.NoError(t, os.MkdirAll(filepath.Dir(dll), 0755))
		require.NoError(t, os.WriteFile(dll, nil, 0644))
	}
	cfgPath := writeFile(t, t.TempDir(), "tiaforge.yaml", "logging:\n  level: error\n")

	require.NoError(t, execute(t, "--config", cfgPath, "versions", "--install-root", root))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "* V18"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  V17"), lines[1])
}

func TestPrintRunsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printRuns(&buf, nil)
	assert.Equal(t, "No runs journaled.\n", buf.String())
}

func TestInitWritesLoadableConfig(t *testing.T) {
	out := captureStdout(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "conf", "tiaforge.yaml")
	bootstrap := writeFile(t, dir, "boot.yaml", "logging:\n  level: error\n")

	require.NoError(t, execute(t, "--config", bootstrap, "init", "--path", path))
	assert.Equal(t, path+"\n", out.String())

	loaded, _, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "Project1", loaded.Project.Name)
	assert.NoError(t, loaded.Validate())

	assert.Error(t, execute(t, "--config", bootstrap, "init", "--path", path), "existing file needs --force")
	assert.NoError(t, execute(t, "--config", bootstrap, "init", "--path", path, "--force"))
}
