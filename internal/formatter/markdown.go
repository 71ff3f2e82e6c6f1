package formatter

import (
	"fmt"
	"strings"

	"hwdoctor/internal/common"
)

// markdownFormatter renders the report as a markdown document.
type markdownFormatter struct{}

// NewMarkdown creates a new markdown formatter.
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(report *common.Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Hardware Diagnostic Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))

	if report.Logs != nil {
		f.writeLogs(&b, report.Logs)
	}
	if report.Drivers != nil {
		f.writeDrivers(&b, report.Drivers)
	}
	if report.Scan != nil {
		f.writeScan(&b, report.Scan)
	}

	return []byte(b.String()), nil
}

func (f *markdownFormatter) writeLogs(b *strings.Builder, logs *common.LogReport) {
	b.WriteString("## Log Summary\n\n")
	fmt.Fprintf(b, "- **Source**: %s\n", logs.Source)
	fmt.Fprintf(b, "- **Total lines**: %d\n", logs.TotalLines)
	fmt.Fprintf(b, "- **Errors**: %d\n", logs.ErrorCount)
	fmt.Fprintf(b, "- **Warnings**: %d\n\n", logs.WarnCount)

	b.WriteString("## Clustered Issues\n\n")
	if len(logs.Clusters) == 0 {
		b.WriteString("No issues found.\n\n")
		return
	}
	b.WriteString("| Count | Template |\n")
	b.WriteString("|-------|----------|\n")
	for _, c := range logs.Clusters {
		fmt.Fprintf(b, "| %d | %s |\n", c.Count, escapeMarkdown(c.Template))
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeDrivers(b *strings.Builder, drivers *common.DriverReport) {
	b.WriteString("## Driver Resolution\n\n")
	fmt.Fprintf(b, "Loaded kernel modules: %d\n\n", drivers.ModuleCount)
	b.WriteString("| Category | Driver | Source |\n")
	b.WriteString("|----------|--------|--------|\n")
	for _, e := range drivers.Entries {
		fmt.Fprintf(b, "| %s | %s | %s |\n",
			e.Category, escapeMarkdown(e.Driver), e.Source)
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeScan(b *strings.Builder, scan *common.ScanReport) {
	if scan.Host != nil {
		b.WriteString("## Host\n\n")
		fmt.Fprintf(b, "- **Hostname**: %s\n", scan.Host.Hostname)
		fmt.Fprintf(b, "- **OS**: %s / %s\n", scan.Host.OS, scan.Host.Platform)
		fmt.Fprintf(b, "- **Kernel**: %s\n", scan.Host.KernelVersion)
		fmt.Fprintf(b, "- **CPUs**: %d\n", scan.Host.CPUCount)
		fmt.Fprintf(b, "- **Memory**: %d MB\n\n", scan.Host.MemoryTotalMB)
	}

	if len(scan.Devices) > 0 {
		b.WriteString("## Devices\n\n")
		b.WriteString("| Class | Device | Driver |\n")
		b.WriteString("|-------|--------|--------|\n")
		for _, d := range scan.Devices {
			fmt.Fprintf(b, "| %s | %s | %s |\n", d.Class, d.Name, d.Driver)
		}
		b.WriteString("\n")
	}
}

// escapeMarkdown keeps pipes in values from breaking table cells.
func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
