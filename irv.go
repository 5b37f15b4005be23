package main

import "k8s.io/klog"

// Instant Runoff Voting tabulation.
// Based on https://courses.lumenlearning.com/waymakermath4libarts/chapter/instant-runoff-voting/
//
// Each round counts the current first preference of every ballot. A candidate
// with a strict majority of all ballots wins outright. Otherwise the lowest
// vote getter is eliminated and its ballots roll up to their next surviving
// preference. Ties for elimination go through a four-stage cascade; a tie
// that survives the whole cascade ends the run with no winner.

// tabulate runs the full instant-runoff loop for one question. The question's
// ballots are never modified; each run works on its own normalized copy, so
// separate questions can be tabulated independently.
func tabulate(q *question) *tabulation {
	t := &tabulation{}
	total := q.numBallots()

	// Working copy with raw gaps compacted away.
	prefs := make([][]string, total)
	for i, b := range q.Ballots {
		prefs[i] = normalizePrefs(b.Prefs, nil)
	}

	active := scanCandidates(prefs, q.Slots)
	t.Candidates = active
	history := make(map[string]int)

	for len(active) > 0 {
		// Tally current first preferences. Every active candidate gets an
		// entry, zero counts included, so they participate in elimination.
		counts := make(map[string]int, len(active))
		for _, c := range active {
			counts[c] = 0
		}
		for _, p := range prefs {
			if len(p) == 0 {
				continue
			}
			if _, ok := counts[p[0]]; ok {
				counts[p[0]]++
			}
		}
		t.Rounds = append(t.Rounds, counts)
		for c, n := range counts {
			history[c] += n
		}

		// Majority is measured against all ballots cast, not just the ones
		// still expressing a preference, and takes precedence over everything.
		for _, c := range active {
			if 2*counts[c] > total {
				t.Winner = c
				t.Message = locWinnerByMajority
				return t
			}
		}
		if len(active) == 1 {
			t.Winner = active[0]
			t.Message = locWinnerByPlurality
			return t
		}

		// Everyone tied at the round minimum is up for elimination.
		low := counts[active[0]]
		for _, c := range active[1:] {
			if counts[c] < low {
				low = counts[c]
			}
		}
		tied := make([]string, 0, len(active))
		for _, c := range active {
			if counts[c] == low {
				tied = append(tied, c)
			}
		}

		loser := tied[0]
		if len(tied) > 1 {
			var resolved bool
			loser, resolved = breakTie(prefs, tied, history, &t.TieBreak)
			if !resolved {
				t.Message = locSenateTie
				return t
			}
			klog.Infof("tie for elimination between %v resolved against %s", tied, loser)
		}

		active = removeCandidate(active, loser)
		for i, p := range prefs {
			prefs[i] = normalizePrefs(p, active)
		}
	}

	// No candidates at all. Callers are supposed to reject empty questions,
	// but an unresolved terminal state beats looping forever.
	t.Message = locSenateTie
	return t
}

// breakTie narrows a tied elimination set through up to four stages, keeping
// the strongest candidates at each stage so the remaining one is the loser.
// Returns the candidate to eliminate, or resolved=false when all four stages
// leave more than one candidate standing.
func breakTie(prefs [][]string, tied []string, history map[string]int, log *[]tieBreakStep) (string, bool) {
	tied = keepMaxAtSlot(prefs, tied, 1, stageSecondPref, log)
	if len(tied) == 1 {
		return tied[0], true
	}

	tied = keepMaxAtSlot(prefs, tied, 2, stageThirdPref, log)
	if len(tied) == 1 {
		return tied[0], true
	}

	vals := make(map[string]int, len(tied))
	for _, c := range tied {
		vals[c] = history[c]
	}
	*log = append(*log, tieBreakStep{Stage: stageHistorical, Values: vals})
	tied = keepMax(tied, vals)
	if len(tied) == 1 {
		return tied[0], true
	}

	// Still tied on historical totals. Record who remains and punt.
	final := make(map[string]int, len(tied))
	for _, c := range tied {
		final[c] = history[c]
	}
	*log = append(*log, tieBreakStep{Stage: stageSenate, Values: final})
	return noPref, false
}

// keepMaxAtSlot counts how many ballots rank each tied candidate at the given
// slot, across the whole table including exhausted ballots, and keeps the
// candidates with the highest count. Slots beyond the ballot length count as
// zero for everyone, so questions with fewer ranked slots fall through to the
// next stage.
func keepMaxAtSlot(prefs [][]string, tied []string, slot int, stage string, log *[]tieBreakStep) []string {
	vals := make(map[string]int, len(tied))
	for _, c := range tied {
		vals[c] = 0
	}
	for _, p := range prefs {
		if slot >= len(p) || p[slot] == noPref {
			continue
		}
		if _, ok := vals[p[slot]]; ok {
			vals[p[slot]]++
		}
	}
	*log = append(*log, tieBreakStep{Stage: stage, Values: vals})
	return keepMax(tied, vals)
}

// keepMax keeps the tied candidates whose value is the maximum, preserving
// their order.
func keepMax(tied []string, vals map[string]int) []string {
	max := vals[tied[0]]
	for _, c := range tied[1:] {
		if vals[c] > max {
			max = vals[c]
		}
	}
	kept := make([]string, 0, len(tied))
	for _, c := range tied {
		if vals[c] == max {
			kept = append(kept, c)
		}
	}
	return kept
}

func removeCandidate(active []string, loser string) []string {
	kept := make([]string, 0, len(active))
	for _, c := range active {
		if c != loser {
			kept = append(kept, c)
		}
	}
	return kept
}
