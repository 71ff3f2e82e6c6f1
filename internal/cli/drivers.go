package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hwdoctor/internal/common"
	"hwdoctor/internal/hwinfo"
	"hwdoctor/internal/sysexec"
)

var (
	driversSerialize  bool
	driversOutputFile string
)

func newDriversCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drivers",
		Short: "Resolve the kernel driver backing each hardware category",
		Long: `Resolve which kernel driver backs each hardware category by consulting
system sources in priority order: sysfs class driver links first, then
lspci -k, then sysfs bus driver listings, then loaded-module heuristics
from /proc/modules. Categories no source can answer are reported as
"unavailable".

Examples:
  hwdoctor drivers
  hwdoctor drivers --serialize
  hwdoctor drivers -o json`,
		Args: cobra.NoArgs,
		RunE: runDrivers,
	}

	cmd.Flags().BoolVar(&driversSerialize, "serialize", false, "include the pipe-separated record")
	cmd.Flags().StringVar(&driversOutputFile, "output-file", "", "write report to file")

	return cmd
}

func runDrivers(cmd *cobra.Command, args []string) error {
	rec := newDriverResolver(cmd.Context()).Resolve()

	report := &common.Report{
		GeneratedAt: time.Now(),
		Drivers:     rec.Report(),
	}
	if driversSerialize {
		report.Drivers.Serialized = rec.Serialize()
		if outputFmt == "text" || outputFmt == "" {
			fmt.Println(rec.Serialize())
			return nil
		}
	}
	return writeReport(report, driversOutputFile)
}

// newDriverResolver wires the four sources in priority order over a fresh
// session cache.
func newDriverResolver(ctx context.Context) *hwinfo.Resolver {
	cfg := getConfig()
	cache := hwinfo.NewSessionCache()
	runner := sysexec.New(cfg.Resolver.CommandTimeout)

	fetchLspci := func() string {
		out, err := runner.Output(ctx, "lspci", "-k")
		if err != nil {
			return ""
		}
		return out
	}

	return hwinfo.NewResolver(cache,
		hwinfo.NewClassSource(cfg.Resolver.SysfsRoot),
		hwinfo.NewPCISource(cache, fetchLspci),
		hwinfo.NewBusSource(cfg.Resolver.BusRoot),
		hwinfo.NewModuleSource(cache, cfg.Resolver.ModulesPath),
	)
}
