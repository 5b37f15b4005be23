package main

const (
	locWinnerByMajority  = "Winner by majority."
	locWinnerByPlurality = "Winner by plurality."
	locSenateTie         = "Final tie requires Senate vote between remaining candidates."
	locQuestionHeader    = "%s  (%d ballots, %d ranked slots)\n"
	locRoundHeader       = "Round %d:\n"
	locTieBreakHeader    = "Tie-break log:\n"
	locEliminatedMark    = ":x: eliminated"
	locWinnerLine        = ":1st_place_medal: %s  %s\n"
	locNoWinnerLine      = ":warning: %s\n"
)
