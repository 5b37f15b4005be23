package main

import (
	"strings"
	"testing"
)

func TestRenderMajorityReport(t *testing.T) {
	q := testQuestion("President", 2,
		[]string{"X", "Y"},
		[]string{"X", ""},
		[]string{"X", ""},
		[]string{"Y", "X"},
		[]string{"Y", ""})
	tab := tabulate(q)
	report := renderTabulation(q, tab)

	for _, want := range []string{
		"President  (5 ballots, 2 ranked slots)",
		"Round 1:",
		"X", "60.0%",
		locWinnerByMajority,
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if strings.Contains(report, locTieBreakHeader) {
		t.Errorf("report has a tie-break log without any tie:\n%s", report)
	}
}

func TestRenderMarksEliminatedCandidate(t *testing.T) {
	q := testQuestion("President", 2,
		[]string{"A", ""},
		[]string{"A", ""},
		[]string{"B", "A"},
		[]string{"B", ""},
		[]string{"B", ""},
		[]string{"C", "A"})
	tab := tabulate(q)
	report := renderTabulation(q, tab)
	if !strings.Contains(report, "eliminated") {
		t.Errorf("report does not mark the eliminated candidate:\n%s", report)
	}
}

func TestRenderTieBreakLog(t *testing.T) {
	q := testQuestion("President", 2,
		[]string{"A", "B"},
		[]string{"B", "A"})
	tab := tabulate(q)
	report := renderTabulation(q, tab)

	for _, want := range []string{
		locTieBreakHeader,
		stageSecondPref,
		stageThirdPref,
		stageHistorical,
		stageSenate,
		locSenateTie,
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestRenderPercentagesUseRoundTotals(t *testing.T) {
	// Round 2 has five ballots still expressing a preference, so A shows
	// 60.0% there even though it holds three of six ballots overall. By the
	// final round A is the only voice left and shows 100.0%.
	q := testQuestion("President", 2,
		[]string{"A", ""},
		[]string{"A", ""},
		[]string{"A", ""},
		[]string{"B", ""},
		[]string{"B", ""},
		[]string{"C", ""})
	tab := tabulate(q)
	report := renderTabulation(q, tab)
	if !strings.Contains(report, "Round 2:") {
		t.Fatalf("expected a second round:\n%s", report)
	}
	for _, want := range []string{"60.0%", "100.0%"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing per-round percentage %q:\n%s", want, report)
		}
	}
}

func TestClipName(t *testing.T) {
	long := strings.Repeat("x", maxCandidateWidth+5)
	clipped := clipName(long)
	if len([]rune(clipped)) != maxCandidateWidth {
		t.Errorf("clipped name %q has %d runes, expected %d", clipped, len([]rune(clipped)), maxCandidateWidth)
	}
	if clipName("short") != "short" {
		t.Errorf("short names must pass through unchanged")
	}
}
