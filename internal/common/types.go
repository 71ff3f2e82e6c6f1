// Package common holds the report types shared between the diagnostic
// engines and the presentation layers.
package common

import (
	"fmt"
	"time"
)

// Report is the aggregate diagnostic result rendered by formatters. Each
// section is optional; commands populate only what they produced.
type Report struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Logs        *LogReport    `json:"logs,omitempty"`
	Drivers     *DriverReport `json:"drivers,omitempty"`
	Scan        *ScanReport   `json:"scan,omitempty"`
}

// LogReport summarizes a clustered log scan.
type LogReport struct {
	Source     string         `json:"source"`
	TotalLines int            `json:"total_lines"`
	ErrorCount int            `json:"error_count"`
	WarnCount  int            `json:"warn_count"`
	Clusters   []ClusterEntry `json:"clusters"`
}

// ClusterEntry is one counted log template.
type ClusterEntry struct {
	Template string `json:"template"`
	Count    int    `json:"count"`
}

// Display renders the entry for presentation: the bare template, with a
// "(xN)" suffix when it occurred more than once.
func (e ClusterEntry) Display() string {
	if e.Count > 1 {
		return fmt.Sprintf("%s (x%d)", e.Template, e.Count)
	}
	return e.Template
}

// DriverReport is the presentation shape of a resolved driver record.
type DriverReport struct {
	ModuleCount int           `json:"module_count"`
	Entries     []DriverEntry `json:"entries"`
	Serialized  string        `json:"serialized,omitempty"`
}

// DriverEntry maps one hardware category to its resolved driver and the
// source that supplied it.
type DriverEntry struct {
	Category string `json:"category"`
	Driver   string `json:"driver"`
	Source   string `json:"source,omitempty"`
}

// ScanReport describes the host and its visible devices.
type ScanReport struct {
	Host       *HostSummary   `json:"host,omitempty"`
	Interfaces []NetInterface `json:"interfaces,omitempty"`
	Devices    []Device       `json:"devices,omitempty"`
	Category   string         `json:"category,omitempty"`
}

// HostSummary holds basic host identity and capacity figures.
type HostSummary struct {
	Hostname      string `json:"hostname"`
	OS            string `json:"os"`
	Platform      string `json:"platform"`
	KernelVersion string `json:"kernel_version"`
	UptimeSec     uint64 `json:"uptime_sec"`
	CPUCount      int    `json:"cpu_count"`
	MemoryTotalMB uint64 `json:"memory_total_mb"`
}

// NetInterface is one network interface with its addresses.
type NetInterface struct {
	Name  string   `json:"name"`
	MAC   string   `json:"mac,omitempty"`
	Addrs []string `json:"addrs,omitempty"`
	Up    bool     `json:"up"`
}

// Device is one entry from the sysfs class walk.
type Device struct {
	Class  string `json:"class"`
	Name   string `json:"name"`
	Driver string `json:"driver,omitempty"`
}
