package main

// normalizePrefs compacts a ballot's ranked choices into a gap-free sequence.
// Empty slots are dropped, and when valid is non-nil any choice not in it is
// dropped too. Relative order of the kept choices is preserved and the result
// is padded with noPref back to the original slot count.
func normalizePrefs(prefs []string, valid []string) []string {
	out := make([]string, 0, len(prefs))
	for _, p := range prefs {
		if p == noPref {
			continue
		}
		if valid != nil && !strrg_contains(valid, p) {
			continue
		}
		out = append(out, p)
	}
	for len(out) < len(prefs) {
		out = append(out, noPref)
	}
	return out
}

// scanCandidates collects every distinct choice appearing on the given
// ballots, slot by slot, in first-appearance order. This order is the
// canonical candidate order for the whole run.
func scanCandidates(prefs [][]string, slots int) []string {
	candidates := make([]string, 0)
	for slot := 0; slot < slots; slot++ {
		for _, p := range prefs {
			if slot >= len(p) || p[slot] == noPref {
				continue
			}
			if !strrg_contains(candidates, p[slot]) {
				candidates = append(candidates, p[slot])
			}
		}
	}
	return candidates
}
