// Package fuzzy resolves free-text category queries against the catalog
// with a three-tier strategy: alias lookup, substring match, then bounded
// edit-distance matching with ranked suggestions.
package fuzzy

import (
	"strings"

	"hwdoctor/internal/catalog"
)

// maxQueryLen bounds the worst-case edit-distance cost and rejects
// malformed input outright.
const maxQueryLen = 50

// maxSuggestions caps the "did you mean" list.
const maxSuggestions = 3

// Suggestion is one near-miss catalog entry with its edit distance.
type Suggestion struct {
	Index    int
	Entry    catalog.Entry
	Distance int
}

// Matcher resolves queries against a fixed catalog.
type Matcher struct {
	entries []catalog.Entry
	aliases map[string]string

	// distance is swappable so tests can count invocations.
	distance func(a, b string) int
}

// NewMatcher builds a matcher over the compiled-in catalog.
func NewMatcher() *Matcher {
	return &Matcher{
		entries:  catalog.Entries,
		aliases:  catalog.Aliases,
		distance: Distance,
	}
}

// Resolve maps a free-text query to a catalog entry index. ok is false
// when nothing qualifies; the caller may then consult Suggest. Empty and
// oversized queries are rejected before any distance is computed.
func (m *Matcher) Resolve(query string) (index int, ok bool) {
	q := normalizeQuery(query)
	if q == "" || len(q) > maxQueryLen {
		return -1, false
	}

	// Tier 1: alias shorthand to canonical keyword.
	if canonical, hit := m.aliases[q]; hit {
		if i := m.substringMatch(canonical); i >= 0 {
			return i, true
		}
	}

	// Tier 2: query as substring of an entry's keyword text.
	if i := m.substringMatch(q); i >= 0 {
		return i, true
	}

	// Tier 3: bounded edit distance against primary keywords. Strict
	// less-than keeps the first entry in catalog order on ties.
	best, bestDist := -1, 0
	for i, e := range m.entries {
		d := m.distance(q, e.Keyword)
		if d > threshold(len(e.Keyword)) {
			continue
		}
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best == -1 {
		return -1, false
	}
	return best, true
}

// Suggest returns up to maxSuggestions entries within their own distance
// threshold, ascending by distance, catalog order on ties. Meant to be
// called after Resolve reported no match.
func (m *Matcher) Suggest(query string) []Suggestion {
	q := normalizeQuery(query)
	if q == "" || len(q) > maxQueryLen {
		return nil
	}

	var candidates []Suggestion
	for i, e := range m.entries {
		d := m.distance(q, e.Keyword)
		if d <= threshold(len(e.Keyword)) {
			candidates = append(candidates, Suggestion{Index: i, Entry: e, Distance: d})
		}
	}

	// Insertion sort keeps catalog order stable across equal distances.
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].Distance < candidates[j-1].Distance; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	return candidates
}

// Entry returns the catalog entry at index.
func (m *Matcher) Entry(index int) catalog.Entry {
	return m.entries[index]
}

// substringMatch returns the first entry whose keyword text contains
// needle, or -1.
func (m *Matcher) substringMatch(needle string) int {
	for i, e := range m.entries {
		if strings.Contains(e.KeywordText(), needle) {
			return i
		}
	}
	return -1
}

// threshold scales the accepted edit distance with keyword length so short
// keywords do not accept relatively wild neighbors.
func threshold(keywordLen int) int {
	switch {
	case keywordLen <= 4:
		return 1
	case keywordLen <= 8:
		return 2
	default:
		return 3
	}
}

// normalizeQuery lowercases, trims, and drops everything outside
// alphanumerics, underscore, space, and hyphen.
func normalizeQuery(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z',
			r >= '0' && r <= '9',
			r == '_', r == ' ', r == '-':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
