package main

import (
	"reflect"
	"testing"
)

func checkNormalize(t *testing.T, prefs, valid, expected []string) {
	t.Helper()
	actual := normalizePrefs(prefs, valid)
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("normalizePrefs(%v, %v) = %v, expected %v", prefs, valid, actual, expected)
	}
}

func TestNormalizeClosesGaps(t *testing.T) {
	checkNormalize(t, []string{"X", "", "Y"}, nil, []string{"X", "Y", ""})
	checkNormalize(t, []string{"", "", "Y"}, nil, []string{"Y", "", ""})
	checkNormalize(t, []string{"", "", ""}, nil, []string{"", "", ""})
}

func TestNormalizeKeepsFullBallot(t *testing.T) {
	checkNormalize(t, []string{"X", "Y", "Z"}, nil, []string{"X", "Y", "Z"})
}

func TestNormalizeDropsEliminatedCandidates(t *testing.T) {
	active := []string{"X", "Z"}
	checkNormalize(t, []string{"Y", "X", "Z"}, active, []string{"X", "Z", ""})
	checkNormalize(t, []string{"Y", "", "X"}, active, []string{"X", "", ""})
	checkNormalize(t, []string{"Y", "", ""}, active, []string{"", "", ""})
}

func TestNormalizeEmptyActiveSetExhaustsBallot(t *testing.T) {
	checkNormalize(t, []string{"X", "Y"}, []string{}, []string{"", ""})
}

func TestNormalizePreservesOrder(t *testing.T) {
	checkNormalize(t, []string{"C", "", "A", "B"}, nil, []string{"C", "A", "B", ""})
}

func TestScanCandidatesFirstAppearanceOrder(t *testing.T) {
	prefs := [][]string{
		{"B", "C", ""},
		{"A", "", "D"},
		{"B", "A", ""},
	}
	expected := []string{"B", "A", "C", "D"}
	actual := scanCandidates(prefs, 3)
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("scanCandidates = %v, expected %v", actual, expected)
	}
}

func TestScanCandidatesEmptyTable(t *testing.T) {
	actual := scanCandidates([][]string{{"", ""}, {"", ""}}, 2)
	if len(actual) != 0 {
		t.Errorf("scanCandidates = %v, expected no candidates", actual)
	}
}
