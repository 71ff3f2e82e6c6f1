package hwinfo

import (
	"strings"
	"testing"
)

// stubSource is a scriptable source that records which categories were
// consulted.
type stubSource struct {
	name    string
	values  map[Category]string
	modules int
	calls   []Category
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Lookup(c Category) (string, bool) {
	s.calls = append(s.calls, c)
	v, ok := s.values[c]
	return v, ok && v != ""
}

func (s *stubSource) ModuleCount() int { return s.modules }

func (s *stubSource) calledFor(c Category) bool {
	for _, got := range s.calls {
		if got == c {
			return true
		}
	}
	return false
}

func TestResolveSingleValueShortCircuits(t *testing.T) {
	first := &stubSource{
		name:   "first",
		values: map[Category]string{CategoryGPU: "i915"},
	}
	// Would return a conflicting value, but must never be asked.
	second := &stubSource{
		name:   "second",
		values: map[Category]string{CategoryGPU: "nouveau"},
	}

	rec := NewResolver(NewSessionCache(), first, second).Resolve()

	if got := rec.Driver(CategoryGPU); got != "i915" {
		t.Errorf("GPU driver = %q, want %q", got, "i915")
	}
	if second.calledFor(CategoryGPU) {
		t.Error("second source was consulted for GPU after first source answered")
	}
	if got := rec.Origin(CategoryGPU); got != "first" {
		t.Errorf("GPU origin = %q, want %q", got, "first")
	}
}

func TestResolveAccumulatingConsultsAllSources(t *testing.T) {
	first := &stubSource{
		name:   "first",
		values: map[Category]string{CategoryNetwork: "e1000e"},
	}
	second := &stubSource{
		name:   "second",
		values: map[Category]string{CategoryNetwork: "iwlwifi"},
	}
	// Duplicate of an earlier value; must not appear twice.
	third := &stubSource{
		name:   "third",
		values: map[Category]string{CategoryNetwork: "e1000e"},
	}

	rec := NewResolver(NewSessionCache(), first, second, third).Resolve()

	if got := rec.Driver(CategoryNetwork); got != "e1000e, iwlwifi" {
		t.Errorf("Network driver = %q, want %q", got, "e1000e, iwlwifi")
	}
	for _, s := range []*stubSource{first, second, third} {
		if !s.calledFor(CategoryNetwork) {
			t.Errorf("source %s was never consulted for accumulating category", s.name)
		}
	}
}

func TestResolveUnavailableSentinel(t *testing.T) {
	empty := &stubSource{name: "empty"}

	rec := NewResolver(NewSessionCache(), empty).Resolve()

	for _, c := range Categories {
		if got := rec.Driver(c); got != Unavailable {
			t.Errorf("%s driver = %q, want %q", c, got, Unavailable)
		}
	}
}

func TestResolveCachesRecord(t *testing.T) {
	src := &stubSource{
		name:   "only",
		values: map[Category]string{CategoryAudio: "snd_hda_intel"},
	}
	cache := NewSessionCache()
	r := NewResolver(cache, src)

	first := r.Resolve()
	callsAfterFirst := len(src.calls)

	second := r.Resolve()
	if second != first {
		t.Error("second Resolve returned a different record")
	}
	if len(src.calls) != callsAfterFirst {
		t.Errorf("second Resolve touched sources: %d calls, want %d",
			len(src.calls), callsAfterFirst)
	}

	// A fresh resolver sharing the cache also sees the record.
	third := NewResolver(cache, src).Resolve()
	if third != first {
		t.Error("resolver sharing the cache recomputed the record")
	}
}

func TestResolveModuleCount(t *testing.T) {
	src := &stubSource{name: "kmod", modules: 137}

	rec := NewResolver(NewSessionCache(), src).Resolve()
	if rec.ModuleCount != 137 {
		t.Errorf("ModuleCount = %d, want 137", rec.ModuleCount)
	}
}

func TestSerializeFieldCount(t *testing.T) {
	src := &stubSource{
		name: "tricky",
		values: map[Category]string{
			// Embedded separators must be sanitized away.
			CategoryGPU:     "i915|evil",
			CategoryNetwork: "e1000e|x|y",
		},
		modules: 12,
	}

	rec := NewResolver(NewSessionCache(), src).Resolve()
	serialized := rec.Serialize()

	fields := strings.Split(serialized, FieldSep)
	if len(fields) != len(Categories)+1 {
		t.Fatalf("serialized record has %d fields, want %d: %q",
			len(fields), len(Categories)+1, serialized)
	}
	if fields[0] != "12" {
		t.Errorf("module count field = %q, want %q", fields[0], "12")
	}
	if fields[1] != "i915/evil" {
		t.Errorf("GPU field = %q, want %q", fields[1], "i915/evil")
	}
	for i, f := range fields {
		if strings.Contains(f, FieldSep) {
			t.Errorf("field %d still contains separator: %q", i, f)
		}
	}
}

func TestRecordReportShape(t *testing.T) {
	src := &stubSource{
		name:   "only",
		values: map[Category]string{CategoryNVMe: "nvme"},
	}

	rep := NewResolver(NewSessionCache(), src).Resolve().Report()

	if len(rep.Entries) != len(Categories) {
		t.Fatalf("report has %d entries, want %d", len(rep.Entries), len(Categories))
	}
	for i, c := range Categories {
		if rep.Entries[i].Category != c.String() {
			t.Errorf("entry %d category = %q, want %q", i, rep.Entries[i].Category, c)
		}
	}
}
