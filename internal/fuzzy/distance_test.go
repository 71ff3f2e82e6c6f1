package fuzzy

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"sound", "sound", 0},
		{"soud", "sound", 1},
		{"sund", "sound", 1},
		{"xyz", "sound", 5},
		{"kitten", "sitting", 3},
		{"graphics", "graphic", 1},
		{"nvme", "name", 2},
	}

	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"watchdog", "watchdg"},
		{"network", "netwrk"},
		{"a", "abcdef"},
	}
	for _, p := range pairs {
		if d1, d2 := Distance(p[0], p[1]), Distance(p[1], p[0]); d1 != d2 {
			t.Errorf("Distance(%q, %q)=%d but reversed=%d", p[0], p[1], d1, d2)
		}
	}
}
