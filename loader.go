package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// ballotTable is a parsed ballot file: one header row naming the ballot ID
// column and the choice columns, then one row per submitted ballot. Rows are
// padded to the header width so short rows read as missing preferences.
type ballotTable struct {
	Header []string
	Rows   [][]string
}

func loadBallotFile(filename string, delimiter rune) (*ballotTable, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open ballot file %s: %v", filename, err)
	}
	defer close(f)

	r := csv.NewReader(f)
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not parse ballot file %s: %v", filename, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("could not load ballot file %s: file is empty", filename)
	}

	tbl := &ballotTable{Header: make([]string, len(records[0]))}
	for i, h := range records[0] {
		tbl.Header[i] = strings.TrimSpace(h)
	}
	for _, rec := range records[1:] {
		row := make([]string, len(tbl.Header))
		for i := range row {
			if i < len(rec) {
				row[i] = strings.TrimSpace(rec[i])
			}
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl, nil
}
