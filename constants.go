package main

// noPref marks an empty ranked slot on a ballot.
const noPref = ""

// Tie-break cascade stage labels. Do not reorder or rename these constants.
// Their values appear in saved reports, and changing them could confuse
// anyone comparing runs.
const (
	stageSecondPref = "Second-preference votes"
	stageThirdPref  = "Third-preference votes"
	stageHistorical = "Historical total votes"
	stageSenate     = "Senate vote required"
)

const (
	maxCandidateWidth = 24
	lineSep           = "╼━━━━━━━━━━━━━━━━╾"
)
