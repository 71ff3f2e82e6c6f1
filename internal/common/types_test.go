package common

import "testing"

func TestClusterEntryDisplay(t *testing.T) {
	tests := []struct {
		entry ClusterEntry
		want  string
	}{
		{ClusterEntry{Template: "disk error", Count: 3}, "disk error (x3)"},
		{ClusterEntry{Template: "disk error", Count: 1}, "disk error"},
	}
	for _, tt := range tests {
		if got := tt.entry.Display(); got != tt.want {
			t.Errorf("Display() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"ERROR", LevelError},
		{"err", LevelError},
		{"warning", LevelWarn},
		{"CRIT", LevelFatal},
		{"debug", LevelDebug},
		{"", LevelInfo},
		{"nonsense", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
