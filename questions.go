package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// splitQuestions partitions a multi-question ballot table into one question
// per group of choice columns sharing a label prefix. The first column is the
// ballot identifier; every other column must be named "<label><sep><rank>"
// with sep one of space, '-' or '_' and rank a positive integer. Questions
// come out in the order their first column appears.
func splitQuestions(tbl *ballotTable) ([]*question, error) {
	if len(tbl.Header) < 2 {
		return nil, fmt.Errorf("could not split questions: need a ballot ID column and at least one choice column")
	}

	type choiceCol struct {
		col  int
		rank int
	}
	labels := make([]string, 0)
	cols := make(map[string][]choiceCol)
	for i := 1; i < len(tbl.Header); i++ {
		label, rank, err := parseChoiceColumn(tbl.Header[i])
		if err != nil {
			return nil, err
		}
		if _, ok := cols[label]; !ok {
			labels = append(labels, label)
		}
		cols[label] = append(cols[label], choiceCol{col: i, rank: rank})
	}

	questions := make([]*question, 0, len(labels))
	for _, label := range labels {
		group := cols[label]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].rank < group[j].rank
		})
		q := &question{Label: label, Slots: len(group)}
		for _, row := range tbl.Rows {
			b := &ballot{ID: row[0], Prefs: make([]string, len(group))}
			for slot, c := range group {
				b.Prefs[slot] = row[c.col]
			}
			q.Ballots = append(q.Ballots, b)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// parseChoiceColumn splits a column name like "President 2" into its question
// label and rank number.
func parseChoiceColumn(name string) (string, int, error) {
	end := len(name)
	for end > 0 && name[end-1] >= '0' && name[end-1] <= '9' {
		end--
	}
	if end == len(name) || end == 0 {
		return "", 0, fmt.Errorf("could not parse choice column %q: missing rank suffix", name)
	}
	rank, err := strconv.Atoi(name[end:])
	if err != nil || rank < 1 {
		return "", 0, fmt.Errorf("could not parse choice column %q: invalid rank suffix", name)
	}
	sep := name[end-1]
	if sep != ' ' && sep != '-' && sep != '_' {
		return "", 0, fmt.Errorf("could not parse choice column %q: rank must be separated by space, '-' or '_'", name)
	}
	label := strings.TrimSpace(name[:end-1])
	if label == "" {
		return "", 0, fmt.Errorf("could not parse choice column %q: empty question label", name)
	}
	return label, rank, nil
}
