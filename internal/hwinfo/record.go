package hwinfo

import (
	"strconv"
	"strings"

	"hwdoctor/internal/common"
)

// Unavailable marks a category no source could answer for.
const Unavailable = "unavailable"

// FieldSep separates fields in the flat serialized record. Field values
// are sanitized before serialization so splitting on it always yields
// exactly 1+len(Categories) fields.
const FieldSep = "|"

// sepSubstitute replaces embedded separators inside field values.
const sepSubstitute = "/"

// DriverRecord holds one resolved driver value per category plus the
// loaded-module count. It is computed once per invocation and cached.
type DriverRecord struct {
	ModuleCount int
	drivers     map[Category]string
	origins     map[Category]string
}

// Driver returns the resolved value for c, or Unavailable when no source
// answered. It never returns an empty string.
func (r *DriverRecord) Driver(c Category) string {
	if v, ok := r.drivers[c]; ok && v != "" {
		return v
	}
	return Unavailable
}

// Origin names the source(s) that supplied the value for c.
func (r *DriverRecord) Origin(c Category) string {
	return r.origins[c]
}

// Serialize renders the record as module count plus one field per category
// in fixed order, joined by FieldSep. Embedded separators in values are
// replaced by sepSubstitute first, preserving the field count on split.
func (r *DriverRecord) Serialize() string {
	fields := make([]string, 0, len(Categories)+1)
	fields = append(fields, strconv.Itoa(r.ModuleCount))
	for _, c := range Categories {
		fields = append(fields, sanitizeField(r.Driver(c)))
	}
	return strings.Join(fields, FieldSep)
}

// Report converts the record into its presentation shape.
func (r *DriverRecord) Report() *common.DriverReport {
	rep := &common.DriverReport{
		ModuleCount: r.ModuleCount,
		Entries:     make([]common.DriverEntry, 0, len(Categories)),
	}
	for _, c := range Categories {
		rep.Entries = append(rep.Entries, common.DriverEntry{
			Category: c.String(),
			Driver:   r.Driver(c),
			Source:   r.Origin(c),
		})
	}
	return rep
}

func sanitizeField(s string) string {
	return strings.ReplaceAll(s, FieldSep, sepSubstitute)
}
