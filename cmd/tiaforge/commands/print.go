package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tiaforge/internal/domain"
	"tiaforge/internal/service"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BD93F9"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F1FA8C"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true)
	summaryBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6272A4")).
			Padding(0, 1)
)

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

func countStyle(n int, bad lipgloss.Style) string {
	if n == 0 {
		return okStyle.Render("0")
	}
	return bad.Render(fmt.Sprint(n))
}

func printReportSummary(r *domain.Report) {
	modules := 0
	for _, d := range r.Devices {
		modules += len(d.Modules)
	}

	status := okStyle.Render("succeeded")
	if !r.Succeeded() {
		status = failStyle.Render("failed")
	}

	lines := []string{
		headingStyle.Render("Run " + r.RunID),
		fmt.Sprintf("Project    %s (%s)", r.Project, status),
		fmt.Sprintf("Devices    %d", len(r.Devices)),
		fmt.Sprintf("Modules    %d, unplaced %s", modules, countStyle(r.UnplacedModules(), warnStyle)),
		fmt.Sprintf("Interfaces %d, failed %s", len(r.Interfaces), countStyle(r.FailedInterfaces(), failStyle)),
	}
	if r.Subnet != "" {
		lines = append(lines, fmt.Sprintf("Subnet     %s / %s", r.Subnet, r.IoSystem))
	}
	fmt.Fprintln(stdout, summaryBox.Render(strings.Join(lines, "\n")))
}

func printPlan(w io.Writer, p *service.Plan) {
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("%s: %d devices, %d modules", p.Input, len(p.Rows), p.Modules())))
	for _, col := range p.ModuleColumns {
		name := col.NameColumn
		if name == "" {
			name = "(no name column)"
		}
		fmt.Fprintf(w, "  module column %s -> %s\n", col.OrderColumn, name)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROW\tTYPE\tNAME\tORDER NUMBER\tIP\tSUBNET\tMODULES")
	for _, r := range p.Rows {
		mods := make([]string, 0, len(r.Modules))
		for _, m := range r.Modules {
			if m.HasName() {
				mods = append(mods, fmt.Sprintf("%s (%s)", m.CatalogID, m.DisplayName))
			} else {
				mods = append(mods, m.CatalogID)
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Index, r.DeviceType, r.DeviceName, r.CatalogID, r.IP, r.SubnetName, strings.Join(mods, ", "))
	}
	_ = tw.Flush()
}

func printRuns(w io.Writer, runs []domain.RunSummary) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs journaled.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tSTARTED\tPROJECT\tBACKEND\tDEVICES\tUNPLACED\tFAILED IFACES\tRESULT")
	for _, r := range runs {
		result := "ok"
		if r.Error != "" {
			result = r.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			shortID(r.RunID), formatTimestamp(r.StartedAt), r.Project, r.Backend,
			r.Devices, r.Unplaced, r.Failed, result)
	}
	_ = tw.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func printReport(w io.Writer, r *domain.Report) {
	fmt.Fprintf(w, "Run ID     : %s\n", r.RunID)
	fmt.Fprintf(w, "Project    : %s\n", r.Project)
	fmt.Fprintf(w, "Input      : %s\n", r.Input)
	fmt.Fprintf(w, "Backend    : %s\n", r.Backend)
	fmt.Fprintf(w, "Started    : %s\n", formatTimestamp(r.StartedAt))
	fmt.Fprintf(w, "Finished   : %s\n", formatTimestamp(r.FinishedAt))
	if r.Error != "" {
		fmt.Fprintf(w, "Error      : %s\n", r.Error)
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROW\tDEVICE\tMODULE\tSTATUS\tSLOT\tPROBES")
	for _, d := range r.Devices {
		if len(d.Modules) == 0 {
			fmt.Fprintf(tw, "%d\t%s\t-\t-\t-\t-\n", d.Row, d.DeviceName)
		}
		for _, m := range d.Modules {
			slot := "-"
			if m.Status == domain.ModulePlugged {
				slot = fmt.Sprintf("%s/%s@%d", m.Container, m.Interface, m.Position)
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\n", d.Row, d.DeviceName, m.CatalogID, m.Status, slot, m.Probes)
		}
	}
	_ = tw.Flush()

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "IFACE\tDEVICE\tADDRESS\tSUBNET\tSTATUS\tERROR")
	for _, i := range r.Interfaces {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", i.Index, i.Device, i.Address, i.Subnet, i.Status, i.Error)
	}
	_ = tw.Flush()
}

var stdout io.Writer = os.Stdout
