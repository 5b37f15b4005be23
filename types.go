package main

// ballot is one voter's ranked choices for a single question. Prefs always
// has one entry per ranked slot; noPref marks an unused slot.
type ballot struct {
	ID    string
	Prefs []string
}

// question is one tabulatable contest: a label, the number of ranked slots,
// and every ballot cast for it.
type question struct {
	ID      int
	Label   string
	Slots   int
	Ballots []*ballot
}

func (q *question) numBallots() int {
	return len(q.Ballots)
}

// tieBreakStep records one stage of the tie-break cascade: the stage label
// and the value computed for each candidate that was still tied going in.
type tieBreakStep struct {
	Stage  string
	Values map[string]int
}

// tabulation is the terminal result of one instant-runoff run. Rounds holds
// one tally snapshot per round, each mapping every candidate active in that
// round to its first-preference count. Candidates preserves first-appearance
// order so that display and tie resolution are reproducible.
type tabulation struct {
	Winner     string
	Candidates []string
	Rounds     []map[string]int
	TieBreak   []tieBreakStep
	Message    string
}

func (t *tabulation) hasWinner() bool {
	return t.Winner != noPref
}

func (t *tabulation) isMajority() bool {
	return t.Message == locWinnerByMajority
}

func (t *tabulation) isPlurality() bool {
	return t.Message == locWinnerByPlurality
}

// eliminatedAfter reports the candidate removed at the end of the given
// round: the one present in that round's tally but missing from the next.
// Empty for the final round.
func (t *tabulation) eliminatedAfter(round int) string {
	if round+1 >= len(t.Rounds) {
		return noPref
	}
	next := t.Rounds[round+1]
	for _, c := range t.Candidates {
		if _, ok := t.Rounds[round][c]; !ok {
			continue
		}
		if _, ok := next[c]; !ok {
			return c
		}
	}
	return noPref
}
