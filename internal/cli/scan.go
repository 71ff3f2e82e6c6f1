package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
	"github.com/spf13/cobra"

	"hwdoctor/internal/common"
	"hwdoctor/internal/fuzzy"
	"hwdoctor/internal/hwinfo"
	"hwdoctor/internal/logger"
)

var (
	scanCategory   string
	scanFull       bool
	scanOutputFile string
)

func newScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the host and its visible devices",
		Long: `Summarize the host (kernel, uptime, CPU and memory capacity), list its
network interfaces, and walk the sysfs device tree.

A --category filter narrows the device list to one hardware category.
The name is matched fuzzily against the category catalog, so "soud" still
finds audio and "wifi" finds network.

Examples:
  hwdoctor scan
  hwdoctor scan --category audio
  hwdoctor scan --full -o json`,
		Args: cobra.NoArgs,
		RunE: runScan,
	}

	cmd.Flags().StringVar(&scanCategory, "category", "", "filter devices to one hardware category")
	cmd.Flags().BoolVar(&scanFull, "full", false, "walk every sysfs class, not just the user-relevant ones")
	cmd.Flags().StringVar(&scanOutputFile, "output-file", "", "write report to file")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg := getConfig()
	log := logger.New("scan")

	scan := &common.ScanReport{
		Host:       collectHostSummary(log),
		Interfaces: collectInterfaces(log),
	}

	full := scanFull || cfg.Scan.FullDevices
	devices := hwinfo.ScanDevices(cfg.Resolver.SysfsRoot, full)

	if scanCategory != "" {
		category, err := resolveCategory(scanCategory)
		if err != nil {
			return err
		}
		scan.Category = category.String()
		devices = filterDevices(devices, category)
		if category != hwinfo.CategoryNetwork {
			scan.Interfaces = nil
		}
	}
	scan.Devices = devices

	report := &common.Report{
		GeneratedAt: time.Now(),
		Scan:        scan,
	}
	return writeReport(report, scanOutputFile)
}

// resolveCategory fuzzily matches a user-supplied name against the
// category catalog. A failed match suggests close alternatives.
func resolveCategory(query string) (hwinfo.Category, error) {
	matcher := fuzzy.NewMatcher()
	if index, ok := matcher.Resolve(query); ok {
		return hwinfo.Categories[index], nil
	}

	suggestions := matcher.Suggest(query)
	if len(suggestions) == 0 {
		return 0, fmt.Errorf("unknown category %q", query)
	}
	names := make([]string, len(suggestions))
	for i, s := range suggestions {
		names[i] = s.Entry.Name
	}
	return 0, fmt.Errorf("unknown category %q (did you mean %s?)", query, strings.Join(names, ", "))
}

// filterDevices keeps devices belonging to the category's sysfs classes.
func filterDevices(devices []common.Device, c hwinfo.Category) []common.Device {
	classes := hwinfo.ClassesFor(c)
	if len(classes) == 0 {
		return nil
	}
	keep := make(map[string]bool, len(classes))
	for _, class := range classes {
		keep[class] = true
	}

	var filtered []common.Device
	for _, d := range devices {
		if keep[d.Class] {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func collectHostSummary(log *logger.Logger) *common.HostSummary {
	info, err := host.Info()
	if err != nil {
		log.Warn("host info unavailable: %v", err)
		return nil
	}

	summary := &common.HostSummary{
		Hostname:      info.Hostname,
		OS:            info.OS,
		Platform:      info.Platform,
		KernelVersion: info.KernelVersion,
		UptimeSec:     info.Uptime,
	}
	if n, err := cpu.Counts(true); err == nil {
		summary.CPUCount = n
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		summary.MemoryTotalMB = vm.Total / (1024 * 1024)
	}
	return summary
}

func collectInterfaces(log *logger.Logger) []common.NetInterface {
	ifaces, err := net.Interfaces()
	if err != nil {
		log.Warn("interface listing unavailable: %v", err)
		return nil
	}

	result := make([]common.NetInterface, 0, len(ifaces))
	for _, iface := range ifaces {
		ni := common.NetInterface{
			Name: iface.Name,
			MAC:  iface.HardwareAddr,
		}
		for _, flag := range iface.Flags {
			if flag == "up" {
				ni.Up = true
			}
		}
		for _, addr := range iface.Addrs {
			ni.Addrs = append(ni.Addrs, addr.Addr)
		}
		result = append(result, ni)
	}
	return result
}
