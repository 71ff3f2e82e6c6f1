// Package cluster groups normalized log lines into counted templates so
// repeated faults show up as one entry instead of hundreds.
package cluster

import (
	"sort"

	"hwdoctor/internal/common"
	"hwdoctor/internal/normalize"
)

// Lines normalizes each input line and groups identical templates. Lines
// whose template is empty are discarded. Entries are ordered by descending
// count, ties broken by ascending template text. Empty input yields an
// empty (non-nil error-free) result.
func Lines(lines []string) []common.ClusterEntry {
	counts := make(map[string]int, len(lines))
	for _, line := range lines {
		tmpl := normalize.Line(line)
		if tmpl == "" {
			continue
		}
		counts[tmpl]++
	}

	entries := make([]common.ClusterEntry, 0, len(counts))
	for tmpl, n := range counts {
		entries = append(entries, common.ClusterEntry{Template: tmpl, Count: n})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Template < entries[j].Template
	})

	return entries
}

// Summarize is the display form of Lines: one string per cluster entry.
func Summarize(lines []string) []string {
	entries := Lines(lines)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Display()
	}
	return out
}
