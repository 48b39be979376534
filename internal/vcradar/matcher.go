// Package vcradar highlights investor listings that mention one of a
// configured set of famous venture firms. The set is injected static
// configuration; matching is a normalized substring check, nothing more.
package vcradar

import "strings"

type Matcher struct {
	names []string
}

// New builds a matcher over the canonical famous-VC names. Empty and
// whitespace-only entries are dropped.
func New(names []string) *Matcher {
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		if n := normalize(name); n != "" {
			normalized = append(normalized, n)
		}
	}
	return &Matcher{names: normalized}
}

// Match reports whether the investor listing mentions any famous VC.
func (m *Matcher) Match(investors string) bool {
	return len(m.Matches(investors)) > 0
}

// Matches returns the normalized famous-VC names found in the listing.
func (m *Matcher) Matches(investors string) []string {
	haystack := normalize(investors)
	if haystack == "" {
		return nil
	}

	var found []string
	for _, name := range m.names {
		if strings.Contains(haystack, name) {
			found = append(found, name)
		}
	}
	return found
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
