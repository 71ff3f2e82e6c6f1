package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/yildizm/go-logparser"

	"hwdoctor/internal/cluster"
	"hwdoctor/internal/common"
	"hwdoctor/internal/logger"
	"hwdoctor/internal/sysexec"
	"hwdoctor/internal/ui"
)

var (
	logsSource     string
	logsMaxLines   int
	logsTUI        bool
	logsOutputFile string
)

func newLogsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs [file]",
		Short: "Cluster kernel log output into counted issue templates",
		Long: `Read kernel log output and collapse it into recurring issue templates.

Volatile tokens (addresses, PIDs, IRQ and CPU numbers, device names, MAC
addresses, ports) are replaced with placeholders so lines that differ only
in those details count as one issue. Input comes from a file argument,
piped stdin, or the first available of dmesg, journalctl, and
/var/log/kern.log.

Examples:
  hwdoctor logs
  dmesg | hwdoctor logs
  hwdoctor logs /var/log/kern.log --tui`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLogs,
	}

	cmd.Flags().StringVar(&logsSource, "source", "", "log source (auto, dmesg, journal, file)")
	cmd.Flags().IntVar(&logsMaxLines, "max-lines", 0, "maximum lines to read (0 uses config)")
	cmd.Flags().BoolVar(&logsTUI, "tui", false, "browse clusters interactively")
	cmd.Flags().StringVar(&logsOutputFile, "output-file", "", "write report to file")

	return cmd
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg := getConfig()
	log := logger.New("logs")

	source := cfg.Logs.Source
	if logsSource != "" {
		source = logsSource
	}
	maxLines := cfg.Logs.MaxLines
	if logsMaxLines > 0 {
		maxLines = logsMaxLines
	}

	var file string
	if len(args) == 1 {
		file = args[0]
	}

	lines, origin, err := collectLogLines(cmd.Context(), source, file, maxLines, cfg.Logs.MaxLineLength)
	if err != nil {
		return err
	}
	log.Info("read %d lines from %s", len(lines), origin)

	report := &common.Report{
		GeneratedAt: time.Now(),
		Logs:        buildLogReport(origin, lines),
	}

	if logsTUI {
		return ui.Browse("Clustered Issues", report.Logs.Clusters)
	}
	return writeReport(report, logsOutputFile)
}

// buildLogReport counts severities and clusters the lines.
func buildLogReport(origin string, lines []string) *common.LogReport {
	report := &common.LogReport{
		Source:     origin,
		TotalLines: len(lines),
		Clusters:   cluster.Lines(lines),
	}

	if len(lines) == 0 {
		return report
	}

	entries, err := logparser.New().ParseString(strings.Join(lines, "\n"))
	if err != nil {
		logger.New("logs").Debug("level parse failed: %v", err)
		return report
	}
	for i := range entries {
		switch common.ParseLogLevel(entries[i].Level) {
		case common.LevelWarn:
			report.WarnCount++
		case common.LevelError, common.LevelFatal:
			report.ErrorCount++
		}
	}
	return report
}

// collectLogLines resolves the log source and reads its lines. The origin
// names what was actually read, for the report header.
func collectLogLines(ctx context.Context, source, file string, maxLines, maxLineLength int) ([]string, string, error) {
	if file != "" {
		lines, err := readLinesFromFile(file, maxLines, maxLineLength)
		return lines, file, err
	}

	if stdinIsPiped() {
		lines, err := readLines(os.Stdin, maxLines, maxLineLength)
		return lines, "stdin", err
	}

	runner := sysexec.New(getConfig().Resolver.CommandTimeout)
	var candidates []sysexec.Command
	switch source {
	case "dmesg":
		candidates = []sysexec.Command{{Name: "dmesg"}}
	case "journal":
		candidates = []sysexec.Command{{Name: "journalctl", Args: []string{"-k", "--no-pager"}}}
	case "file":
		lines, err := readLinesFromFile("/var/log/kern.log", maxLines, maxLineLength)
		return lines, "/var/log/kern.log", err
	default: // auto
		candidates = []sysexec.Command{
			{Name: "dmesg"},
			{Name: "journalctl", Args: []string{"-k", "--no-pager"}},
		}
	}

	out, used, ok := runner.FirstOutput(ctx, candidates...)
	if ok {
		lines, err := readLines(strings.NewReader(out), maxLines, maxLineLength)
		return lines, used.Name, err
	}

	if source == "auto" {
		if lines, err := readLinesFromFile("/var/log/kern.log", maxLines, maxLineLength); err == nil {
			return lines, "/var/log/kern.log", nil
		}
	}
	return nil, "", fmt.Errorf("no log source available (tried %s; pipe input or pass a file)", source)
}

func readLinesFromFile(path string, maxLines, maxLineLength int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return readLines(f, maxLines, maxLineLength)
}

func readLines(r io.Reader, maxLines, maxLineLength int) ([]string, error) {
	scanner := bufio.NewScanner(r)
	if maxLineLength > bufio.MaxScanTokenSize {
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	}

	var lines []string
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), "\r\n"); line != "" {
			lines = append(lines, line)
		}
		if maxLines > 0 && len(lines) >= maxLines {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log input: %w", err)
	}
	return lines, nil
}

func stdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}
