package cli

import (
	"strings"
	"testing"

	"hwdoctor/internal/common"
	"hwdoctor/internal/hwinfo"
)

func TestBuildLogReport(t *testing.T) {
	lines := []string{
		"kernel: I/O error on sda1 sector 100",
		"kernel: I/O error on sdb2 sector 200",
		"kernel: watchdog did not stop",
	}

	report := buildLogReport("test", lines)
	if report.TotalLines != 3 {
		t.Errorf("TotalLines = %d, want 3", report.TotalLines)
	}
	if len(report.Clusters) != 2 {
		t.Fatalf("clusters = %d, want 2", len(report.Clusters))
	}
	if report.Clusters[0].Count != 2 {
		t.Errorf("top cluster count = %d, want 2", report.Clusters[0].Count)
	}
	if !strings.Contains(report.Clusters[0].Template, "sdDEVICE") {
		t.Errorf("device name not normalized: %q", report.Clusters[0].Template)
	}
}

func TestBuildLogReportEmpty(t *testing.T) {
	report := buildLogReport("test", nil)
	if report.TotalLines != 0 || len(report.Clusters) != 0 {
		t.Errorf("empty input produced non-empty report: %+v", report)
	}
}

func TestReadLinesRespectsMaxLines(t *testing.T) {
	input := strings.Repeat("a line\n", 100)
	lines, err := readLines(strings.NewReader(input), 10, 1024)
	if err != nil {
		t.Fatalf("readLines: %v", err)
	}
	if len(lines) != 10 {
		t.Errorf("read %d lines, want 10", len(lines))
	}
}

func TestReadLinesSkipsBlank(t *testing.T) {
	lines, err := readLines(strings.NewReader("one\n\n\ntwo\n"), 0, 1024)
	if err != nil {
		t.Fatalf("readLines: %v", err)
	}
	if len(lines) != 2 {
		t.Errorf("read %d lines, want 2: %v", len(lines), lines)
	}
}

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		query string
		want  hwinfo.Category
	}{
		{"audio", hwinfo.CategoryAudio},
		{"soud", hwinfo.CategoryAudio},
		{"wifi", hwinfo.CategoryNetwork},
		{"keyboard", hwinfo.CategoryInput},
		{"rata", hwinfo.CategorySATA},
	}
	for _, tt := range tests {
		got, err := resolveCategory(tt.query)
		if err != nil {
			t.Errorf("resolveCategory(%q): %v", tt.query, err)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveCategory(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestResolveCategoryGarbage(t *testing.T) {
	_, err := resolveCategory("zzqqy")
	if err == nil {
		t.Fatal("expected error for garbage query")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("garbage query should not produce suggestions: %v", err)
	}
}

func TestFilterDevices(t *testing.T) {
	devices := []common.Device{
		{Class: "sound", Name: "card0", Driver: "snd_hda_intel"},
		{Class: "net", Name: "eth0", Driver: "e1000e"},
		{Class: "block", Name: "sda"},
	}

	filtered := filterDevices(devices, hwinfo.CategoryAudio)
	if len(filtered) != 1 || filtered[0].Name != "card0" {
		t.Errorf("audio filter = %+v, want card0 only", filtered)
	}

	// Categories without class data yield nothing rather than everything.
	if got := filterDevices(devices, hwinfo.CategorySMBus); got != nil {
		t.Errorf("smbus filter = %+v, want nil", got)
	}
}
