package main

import (
	"fmt"

	"github.com/kyokomi/emoji"
	cmn "github.com/semog/go-common"
)

// renderTabulation formats one question's result as a console report: the
// question header, a per-round tally table with percentages and elimination
// marks, the winner (or Senate) line, and the tie-break log when one exists.
func renderTabulation(q *question, t *tabulation) string {
	listing := fmt.Sprintf(locQuestionHeader, q.Label, q.numBallots(), q.Slots)
	listing += lineSep + "\n"

	width := nameColumnWidth(t.Candidates)
	for round, counts := range t.Rounds {
		listing += fmt.Sprintf(locRoundHeader, round+1)
		roundTotal := 0
		for _, n := range counts {
			roundTotal += n
		}
		out := t.eliminatedAfter(round)
		for _, c := range t.Candidates {
			n, ok := counts[c]
			if !ok {
				continue
			}
			line := fmt.Sprintf("  %-*s %4d  %5.1f%%", width, clipName(c), n, pct(n, roundTotal))
			if c == out {
				line += "  " + emoji.Sprint(locEliminatedMark)
			}
			listing += line + "\n"
		}
	}

	listing += lineSep + "\n"
	if t.hasWinner() {
		listing += emoji.Sprintf(locWinnerLine, t.Winner, t.Message)
	} else {
		listing += emoji.Sprintf(locNoWinnerLine, t.Message)
	}

	if len(t.TieBreak) > 0 {
		listing += locTieBreakHeader
		for _, step := range t.TieBreak {
			listing += fmt.Sprintf("  %s:", step.Stage)
			for _, c := range t.Candidates {
				if v, ok := step.Values[c]; ok {
					listing += fmt.Sprintf(" %s=%d", clipName(c), v)
				}
			}
			listing += "\n"
		}
	}
	return listing + "\n"
}

func nameColumnWidth(candidates []string) int {
	width := 0
	for _, c := range candidates {
		if len(c) > width {
			width = len(c)
		}
	}
	return cmn.Mini(width, maxCandidateWidth)
}

func clipName(name string) string {
	if len(name) > maxCandidateWidth {
		return name[:maxCandidateWidth-1] + "…"
	}
	return name
}
