package transit

import "strings"

// Resolve maps a free-form location string to at most one canonical stop,
// favoring precision over recall. The stages run in strict priority order
// and short-circuit at the first success: exact match, alias table, variant
// generation, fuzzy word-overlap scoring. A miss returns ErrLocationNotFound.
func (idx *StopIndex) Resolve(input string) (Stop, error) {
	normalized := idx.normalize(input)
	if normalized == "" {
		return Stop{}, ErrLocationNotFound
	}

	if stop, ok := idx.lookup(normalized); ok {
		return stop, nil
	}

	if alias, ok := idx.cfg.Aliases[normalized]; ok {
		if stop, ok := idx.lookup(idx.normalize(alias)); ok {
			return stop, nil
		}
	}

	for _, variant := range idx.variants(normalized) {
		if stop, ok := idx.lookup(variant); ok {
			return stop, nil
		}
	}

	if stop, ok := idx.fuzzyMatch(normalized); ok {
		return stop, nil
	}

	return Stop{}, ErrLocationNotFound
}

// variants derives a bounded set of lookup candidates from the normalized
// input by stripping or appending the configured suffix tokens and applying
// spelling equivalences.
func (idx *StopIndex) variants(normalized string) []string {
	var out []string
	seen := map[string]struct{}{normalized: {}}

	add := func(v string) {
		if _, dup := seen[v]; v != "" && !dup {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	words := strings.Split(normalized, " ")

	// Strip a recognized trailing qualifier.
	if len(words) > 1 {
		last := words[len(words)-1]
		for _, suffix := range idx.cfg.VariantSuffixes {
			if last == suffix {
				add(strings.Join(words[:len(words)-1], " "))
				break
			}
		}
	}

	// Append each qualifier the input does not already end with.
	for _, suffix := range idx.cfg.VariantSuffixes {
		if words[len(words)-1] != suffix {
			add(normalized + " " + suffix)
		}
	}

	// Token-wise spelling swaps, applied to the input and to each variant
	// generated so far.
	base := append([]string{normalized}, out...)
	for _, candidate := range base {
		tokens := strings.Split(candidate, " ")
		for i, token := range tokens {
			if alt, ok := idx.cfg.Spellings[token]; ok {
				swapped := make([]string, len(tokens))
				copy(swapped, tokens)
				swapped[i] = alt
				add(strings.Join(swapped, " "))
			}
		}
	}

	return out
}

// fuzzyMatch scores every indexed name against the input by word overlap and
// returns the strictly best candidate that passes the coverage gate. The
// index is iterated in sorted-name order, so equal scores deterministically
// keep the earliest-seen candidate.
func (idx *StopIndex) fuzzyMatch(normalized string) (Stop, bool) {
	inputWords := tokenize(normalized)
	if len(inputWords) == 0 {
		return Stop{}, false
	}

	highSignal := make(map[string]struct{}, len(idx.cfg.HighSignalWords))
	for _, w := range idx.cfg.HighSignalWords {
		highSignal[w] = struct{}{}
	}

	var best Stop
	var bestScore float64
	found := false

	for _, name := range idx.names {
		candidateWords := tokenize(name)
		if len(candidateWords) == 0 {
			continue
		}

		var common int
		var bonus float64
		for w := range inputWords {
			if _, ok := candidateWords[w]; !ok {
				continue
			}
			common++
			if _, ok := highSignal[w]; ok {
				bonus = idx.cfg.HighSignalBonus
			}
		}
		if common == 0 {
			continue
		}

		// The coverage gate guards against false positives: a candidate
		// sharing too few of the input's words is rejected no matter how
		// well it scores.
		coverage := float64(common) / float64(len(inputWords))
		if coverage < idx.cfg.CoverageThreshold {
			continue
		}

		score := idx.cfg.InputWeight*coverage +
			idx.cfg.CandidateWeight*(float64(common)/float64(len(candidateWords))) +
			idx.cfg.CommonWordWeight*float64(common) +
			bonus

		if !found || score > bestScore {
			best = idx.byName[name]
			bestScore = score
			found = true
		}
	}

	return best, found
}
