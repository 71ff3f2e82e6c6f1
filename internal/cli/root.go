// Package cli wires the hwdoctor commands together.
package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"hwdoctor/internal/common"
	"hwdoctor/internal/config"
	"hwdoctor/internal/formatter"
	"hwdoctor/internal/logger"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	outputFmt string

	globalCfg *config.Config
)

// NewRootCommand creates the root command.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hwdoctor",
		Short: "Read-only hardware and kernel log diagnostics",
		Long: `hwdoctor inspects a Linux host without changing it: it clusters noisy
kernel log output into counted issue templates, resolves which driver
backs each hardware category from several system sources, and scans the
visible device tree.

Category names given to --category are matched fuzzily, so typos like
"soud" still find the audio category.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader().LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			globalCfg = cfg

			if cmd.Flag("verbose").Changed {
				cfg.Output.Verbose = verbose
			}
			logger.SetVerbose(cfg.Output.Verbose)

			if !cmd.Flag("output").Changed {
				outputFmt = cfg.Output.DefaultFormat
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format (text, json, markdown, csv)")

	rootCmd.AddCommand(newLogsCommand())
	rootCmd.AddCommand(newDriversCommand())
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			if version == "dev" || version == "" {
				version = "development"
			}
			if commit == "none" || commit == "" {
				commit = "local-build"
			}
			if date == "unknown" || date == "" {
				date = "local-build"
			}
			fmt.Printf("hwdoctor %s (%s) built on %s\n", version, commit, date)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// getConfig returns the loaded config, falling back to defaults when a
// command runs outside the root (tests, mostly).
func getConfig() *config.Config {
	if globalCfg == nil {
		return config.DefaultConfig()
	}
	return globalCfg
}

// useColor decides terminal coloring from config and flags.
func useColor() bool {
	switch getConfig().Output.ColorMode {
	case "always":
		return true
	case "never":
		return false
	}
	return !noColor
}

// writeReport formats the report and writes it to stdout or a file.
func writeReport(report *common.Report, outputFile string) error {
	f, err := formatter.New(outputFmt, useColor() && outputFile == "")
	if err != nil {
		return err
	}
	out, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, out, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputFile, err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", outputFile)
		return nil
	}
	_, err = os.Stdout.Write(out)
	return err
}
