package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/go-termfmt"

	"hwdoctor/internal/common"
)

// terminalFormatter renders the report as styled text for terminal display.
type terminalFormatter struct {
	opts  *termfmt.TerminalOptions
	color bool

	titleStyle lipgloss.Style
	countStyle lipgloss.Style
	dimStyle   lipgloss.Style
	errStyle   lipgloss.Style
}

// NewTerminal creates a terminal formatter with optional color support.
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true

	f := &terminalFormatter{opts: opts, color: color}
	if color {
		f.titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
		f.countStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
		f.dimStyle = lipgloss.NewStyle().Faint(true)
		f.errStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	} else {
		plain := lipgloss.NewStyle()
		f.titleStyle, f.countStyle, f.dimStyle, f.errStyle = plain, plain, plain, plain
	}
	return f
}

func (f *terminalFormatter) Format(report *common.Report) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)
	if report.Logs != nil {
		f.writeLogSection(&b, report.Logs)
	}
	if report.Drivers != nil {
		f.writeDriverSection(&b, report.Drivers)
	}
	if report.Scan != nil {
		f.writeScanSection(&b, report.Scan)
	}

	return []byte(b.String()), nil
}

func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	header := "Hardware Diagnostic Report"
	b.WriteString("╔" + strings.Repeat("═", len(header)+2) + "╗\n")
	b.WriteString("║ " + f.titleStyle.Render(header) + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", len(header)+2) + "╝\n\n")
}

func (f *terminalFormatter) writeLogSection(b *strings.Builder, logs *common.LogReport) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Log Statistics\n")

	errors := fmt.Sprintf("%d", logs.ErrorCount)
	if logs.ErrorCount > 0 {
		errors = f.errStyle.Render(errors)
	}
	items := []termfmt.TreeItem{
		{Label: "Source", Value: logs.Source},
		{Label: "Total Lines", Value: fmt.Sprintf("%d", logs.TotalLines)},
		{Label: "Errors", Value: errors},
		{Label: "Warnings", Value: fmt.Sprintf("%d", logs.WarnCount)},
		{Label: "Distinct Issues", Value: fmt.Sprintf("%d", len(logs.Clusters)), Last: true},
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")

	b.WriteString("◆ Clustered Issues\n")
	if len(logs.Clusters) == 0 {
		b.WriteString(f.dimStyle.Render("  no issues found") + "\n\n")
		return
	}
	for i, c := range logs.Clusters {
		branch := "├─"
		if i == len(logs.Clusters)-1 {
			branch = "└─"
		}
		line := c.Template
		if c.Count > 1 {
			line += " " + f.countStyle.Render(fmt.Sprintf("(x%d)", c.Count))
		}
		fmt.Fprintf(b, "%s %s\n", branch, line)
	}
	b.WriteString("\n")
}

func (f *terminalFormatter) writeDriverSection(b *strings.Builder, drivers *common.DriverReport) {
	b.WriteString("◆ Driver Resolution\n")
	fmt.Fprintf(b, "Loaded kernel modules: %d\n\n", drivers.ModuleCount)

	width := 0
	for _, e := range drivers.Entries {
		if len(e.Category) > width {
			width = len(e.Category)
		}
	}
	for _, e := range drivers.Entries {
		driver := e.Driver
		if driver == "unavailable" {
			driver = f.dimStyle.Render(driver)
		}
		line := fmt.Sprintf("%-*s  %s", width, e.Category, driver)
		if e.Source != "" {
			line += "  " + f.dimStyle.Render("["+e.Source+"]")
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

func (f *terminalFormatter) writeScanSection(b *strings.Builder, scan *common.ScanReport) {
	if scan.Host != nil {
		b.WriteString("◆ Host\n")
		items := []termfmt.TreeItem{
			{Label: "Hostname", Value: scan.Host.Hostname},
			{Label: "OS", Value: scan.Host.OS + " / " + scan.Host.Platform},
			{Label: "Kernel", Value: scan.Host.KernelVersion},
			{Label: "CPUs", Value: fmt.Sprintf("%d", scan.Host.CPUCount)},
			{Label: "Memory", Value: fmt.Sprintf("%d MB", scan.Host.MemoryTotalMB), Last: true},
		}
		b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
	}

	if len(scan.Interfaces) > 0 {
		b.WriteString("◆ Network Interfaces\n")
		for i, ni := range scan.Interfaces {
			branch := "├─"
			if i == len(scan.Interfaces)-1 {
				branch = "└─"
			}
			state := "down"
			if ni.Up {
				state = "up"
			}
			detail := ni.MAC
			if len(ni.Addrs) > 0 {
				detail += " " + strings.Join(ni.Addrs, " ")
			}
			fmt.Fprintf(b, "%s %s (%s) %s\n", branch, ni.Name, state, f.dimStyle.Render(detail))
		}
		b.WriteString("\n")
	}

	if scan.Category != "" {
		fmt.Fprintf(b, "Devices (category: %s)\n", scan.Category)
	} else if len(scan.Devices) > 0 {
		b.WriteString("Devices\n")
	}
	if len(scan.Devices) == 0 {
		b.WriteString(f.dimStyle.Render("  no devices found") + "\n")
		return
	}
	lastClass := ""
	for _, d := range scan.Devices {
		if d.Class != lastClass {
			b.WriteString(f.titleStyle.Render(d.Class) + "\n")
			lastClass = d.Class
		}
		line := "  " + d.Name
		if d.Driver != "" {
			line += "  " + f.dimStyle.Render("["+d.Driver+"]")
		}
		b.WriteString(line + "\n")
	}
}
