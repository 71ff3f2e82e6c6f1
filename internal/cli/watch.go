package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/yildizm/go-logparser"

	"hwdoctor/internal/cluster"
	"hwdoctor/internal/common"
	"hwdoctor/internal/logger"
)

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Follow a log file and cluster new entries live",
		Long: `Follow a log file with filesystem notifications. New lines at warning
severity or above are printed as they arrive; on Ctrl+C the accumulated
lines are clustered and summarized.

Examples:
  hwdoctor watch /var/log/kern.log`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]

	watcher, file, cleanup, err := setupWatch(filename)
	if err != nil {
		return err
	}
	defer cleanup()

	return watchLoop(watcher, file, filename)
}

// setupWatch opens the file seeked to its end and registers it with an
// fsnotify watcher.
func setupWatch(filename string) (*fsnotify.Watcher, *os.File, func(), error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, nil, nil, fmt.Errorf("cannot watch %s: %w", filename, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filename); err != nil {
		watcher.Close()
		return nil, nil, nil, fmt.Errorf("failed to watch %s: %w", filename, err)
	}

	file, err := os.Open(filepath.Clean(filename))
	if err != nil {
		watcher.Close()
		return nil, nil, nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		watcher.Close()
		file.Close()
		return nil, nil, nil, fmt.Errorf("failed to seek %s: %w", filename, err)
	}

	cleanup := func() {
		watcher.Close()
		file.Close()
	}
	return watcher, file, cleanup, nil
}

func watchLoop(watcher *fsnotify.Watcher, file *os.File, filename string) error {
	log := logger.New("watch")
	log.Info("watching %s, Ctrl+C to stop", filename)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	parser := logparser.New()
	var seen []string

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-signals:
			fmt.Fprintln(os.Stderr)
			printWatchSummary(filename, seen)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Write == 0 {
				continue
			}
			lines, err := drainNewLines(file)
			if err != nil {
				log.Warn("read failed: %v", err)
				continue
			}
			seen = append(seen, lines...)
			printImportantLines(parser, lines)

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			log.Warn("watch error: %v", err)
		}
	}
}

// drainNewLines reads everything appended since the last read.
func drainNewLines(file *os.File) ([]string, error) {
	scanner := bufio.NewScanner(file)
	var lines []string
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// printImportantLines echoes lines at warning severity or above.
func printImportantLines(parser logparser.Parser, lines []string) {
	if len(lines) == 0 {
		return
	}
	entries, err := parser.ParseString(strings.Join(lines, "\n"))
	if err != nil {
		logger.New("watch").Debug("parse failed: %v", err)
		return
	}
	for i := range entries {
		level := common.ParseLogLevel(entries[i].Level)
		if level >= common.LevelWarn {
			fmt.Printf("[%s] %s: %s\n",
				entries[i].Timestamp.Format("15:04:05"), level, entries[i].Message)
		}
	}
}

// printWatchSummary clusters everything seen during the session.
func printWatchSummary(filename string, lines []string) {
	if len(lines) == 0 {
		fmt.Printf("No new lines in %s during this session.\n", filename)
		return
	}
	fmt.Printf("Session summary for %s (%d lines):\n", filename, len(lines))
	for _, entry := range cluster.Summarize(lines) {
		fmt.Printf("  %s\n", entry)
	}
}
