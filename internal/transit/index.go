package transit

import (
	"sort"
	"strings"
	"unicode"
)

// Stop is a canonical stop record from the loaded dataset. The id is the
// sole cross-reference key into stop times and fare zones; names are display
// values and are never used as join keys.
type Stop struct {
	ID   string
	Name string
	Zone string
}

// StopIndex maps normalized stop names to canonical stops. It is built once
// per dataset load and is read-only afterwards, so any number of lookups may
// run against it concurrently.
type StopIndex struct {
	cfg    MatcherConfig
	byName map[string]Stop
	names  []string // sorted normalized names, the stable iteration order
}

// BuildStopIndex indexes the given stops by normalized name. When two stops
// normalize to the same name, the one with the shorter id is kept (equal
// lengths fall back to lexicographic order): the primary station record wins
// over a satellite bay regardless of input order.
func BuildStopIndex(stops []Stop, cfg MatcherConfig) *StopIndex {
	idx := &StopIndex{
		cfg:    cfg,
		byName: make(map[string]Stop, len(stops)),
	}

	for _, stop := range stops {
		name := idx.normalize(stop.Name)
		if name == "" {
			continue
		}

		current, exists := idx.byName[name]
		if !exists || preferStop(stop, current) {
			idx.byName[name] = stop
		}
	}

	idx.names = make([]string, 0, len(idx.byName))
	for name := range idx.byName {
		idx.names = append(idx.names, name)
	}
	sort.Strings(idx.names)

	return idx
}

// preferStop reports whether candidate should replace current for the same
// normalized name.
func preferStop(candidate, current Stop) bool {
	if len(candidate.ID) != len(current.ID) {
		return len(candidate.ID) < len(current.ID)
	}
	return candidate.ID < current.ID
}

// Len returns the number of distinct normalized names in the index.
func (idx *StopIndex) Len() int {
	return len(idx.names)
}

func (idx *StopIndex) lookup(normalized string) (Stop, bool) {
	stop, ok := idx.byName[normalized]
	return stop, ok
}

// normalize trims, case-folds, collapses whitespace and strips a trailing
// brand token from a stop name or user input.
func (idx *StopIndex) normalize(name string) string {
	words := strings.Fields(strings.ToLower(name))

	if idx.cfg.BrandToken != "" && len(words) > 1 && words[len(words)-1] == idx.cfg.BrandToken {
		words = words[:len(words)-1]
	}

	return strings.Join(words, " ")
}

// tokenize splits a name into a case-folded, punctuation-insensitive word set.
func tokenize(name string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	words := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		words[f] = struct{}{}
	}
	return words
}
