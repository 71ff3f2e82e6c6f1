package cluster

import (
	"reflect"
	"testing"
)

func TestLinesCollapsesHexAddresses(t *testing.T) {
	lines := []string{
		"BUG: unable to handle kernel paging at 0xdeadbeef",
		"BUG: unable to handle kernel paging at 0xcafebabe",
		"BUG: unable to handle kernel paging at 0x1234abcd",
	}

	got := Summarize(lines)
	want := []string{"BUG: unable to handle kernel paging at 0xADDR (x3)"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summarize() = %v, want %v", got, want)
	}
}

func TestLinesCollapsesPIDs(t *testing.T) {
	lines := []string{
		"oom-killer invoked by chrome[1001]",
		"oom-killer invoked by chrome[2002]",
		"oom-killer invoked by chrome[3003]",
	}

	got := Summarize(lines)
	want := []string{"oom-killer invoked by chrome[PID] (x3)"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summarize() = %v, want %v", got, want)
	}
}

func TestLinesCollapsesBlockDevices(t *testing.T) {
	lines := []string{
		"I/O error on sda sector 5",
		"I/O error on sdb sector 5",
		"I/O error on sdc sector 5",
	}

	got := Summarize(lines)
	want := []string{"I/O error on sdDEVICE sector 5 (x3)"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summarize() = %v, want %v", got, want)
	}
}

func TestLinesKeepsDistinctTemplates(t *testing.T) {
	lines := []string{
		"thermal throttling on package 0",
		"usb 1-1: device not accepting address",
		"ata1: link is slow to respond",
	}

	entries := Lines(lines)
	if len(entries) != 3 {
		t.Fatalf("expected 3 distinct entries, got %d: %v", len(entries), entries)
	}
	for _, e := range entries {
		if e.Count != 1 {
			t.Errorf("entry %q has count %d, want 1", e.Template, e.Count)
		}
	}
}

func TestLinesOrdering(t *testing.T) {
	lines := []string{
		"bbb fault", "bbb fault",
		"aaa fault", "aaa fault",
		"ccc fault", "ccc fault", "ccc fault",
		"zzz fault",
	}

	got := Summarize(lines)
	// Descending count first, ascending template on ties.
	want := []string{
		"ccc fault (x3)",
		"aaa fault (x2)",
		"bbb fault (x2)",
		"zzz fault",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summarize() = %v, want %v", got, want)
	}
}

func TestLinesCountSum(t *testing.T) {
	lines := []string{
		"err at 0x1", "err at 0x2", "other", "", "   ",
	}

	entries := Lines(lines)
	sum := 0
	for _, e := range entries {
		sum += e.Count
	}
	// Empty and whitespace-only lines are discarded.
	if sum != 3 {
		t.Errorf("count sum = %d, want 3", sum)
	}
}

func TestLinesEmptyInput(t *testing.T) {
	if got := Lines(nil); len(got) != 0 {
		t.Errorf("Lines(nil) = %v, want empty", got)
	}
	if got := Summarize([]string{}); len(got) != 0 {
		t.Errorf("Summarize(empty) = %v, want empty", got)
	}
}

func TestLinesIdempotent(t *testing.T) {
	lines := []string{
		"I/O error on sda sector 9",
		"I/O error on sdb sector 9",
		"watchdog did not stop",
	}

	first := Summarize(lines)
	second := Summarize(lines)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("clustering is not idempotent: %v vs %v", first, second)
	}
}
