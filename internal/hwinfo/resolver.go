package hwinfo

import (
	"strings"

	"hwdoctor/internal/logger"
)

// accumSep joins accumulated values for presentation.
const accumSep = ", "

// Resolver merges readings from prioritized sources into one DriverRecord.
// Source order is priority order: for single-value categories the first
// non-empty hit wins and later sources are never consulted; accumulating
// categories collect every source's value into an ordered deduplicated set.
type Resolver struct {
	sources []Source
	cache   *SessionCache
	log     *logger.Logger
}

// NewResolver builds a resolver over the given sources in priority order.
// The cache must outlive the resolver; a second Resolve call returns the
// cached record without touching any source.
func NewResolver(cache *SessionCache, sources ...Source) *Resolver {
	return &Resolver{
		sources: sources,
		cache:   cache,
		log:     logger.New("hwinfo"),
	}
}

// Resolve computes the driver record, or returns the session-cached one.
func (r *Resolver) Resolve() *DriverRecord {
	if rec := r.cache.Record(); rec != nil {
		return rec
	}

	rec := &DriverRecord{
		drivers: make(map[Category]string, len(Categories)),
		origins: make(map[Category]string, len(Categories)),
	}

	for _, c := range Categories {
		if c.Accumulating() {
			r.resolveAccumulating(rec, c)
		} else {
			r.resolveSingle(rec, c)
		}
	}

	for _, s := range r.sources {
		if mc, ok := s.(ModuleCounter); ok {
			if n := mc.ModuleCount(); n > 0 {
				rec.ModuleCount = n
				break
			}
		}
	}

	return r.cache.SetRecord(rec)
}

func (r *Resolver) resolveSingle(rec *DriverRecord, c Category) {
	for _, s := range r.sources {
		v, ok := s.Lookup(c)
		if !ok || v == "" {
			continue
		}
		rec.drivers[c] = v
		rec.origins[c] = s.Name()
		r.log.Debug("%s: %q from %s", c, v, s.Name())
		return
	}
	r.log.Debug("%s: no source answered", c)
}

func (r *Resolver) resolveAccumulating(rec *DriverRecord, c Category) {
	var values, origins []string
	seen := make(map[string]bool)

	for _, s := range r.sources {
		v, ok := s.Lookup(c)
		if !ok || v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
		origins = append(origins, s.Name())
	}

	if len(values) == 0 {
		r.log.Debug("%s: no source answered", c)
		return
	}
	rec.drivers[c] = strings.Join(values, accumSep)
	rec.origins[c] = strings.Join(origins, accumSep)
}
