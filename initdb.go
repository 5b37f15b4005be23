package main

import (
	"github.com/semog/go-sqldb"
)

func (st *sqlStore) Init(databaseFile string) error {
	var err error
	st.db, err = sqldb.OpenAndPatchDb(databaseFile, dbPatchFuncs)
	return err
}

// The array of patch functions that will automatically upgrade the database.
var dbPatchFuncs = []sqldb.PatchFuncType{
	// Add new patch functions to this array to automatically upgrade the database.
	{PatchID: 1, PatchFunc: func(sdb *sqldb.SQLDb) error {
		if err := sdb.CreateTable(`question(
			ID INTEGER PRIMARY KEY ASC,
			Label TEXT,
			Slots INTEGER,
			LastSaved INTEGER,
			CreatedAt INTEGER)`); err != nil {
			return err
		}
		if err := sdb.CreateIndex("question_index ON question(ID)"); err != nil {
			return err
		}
		if err := sdb.CreateTable(`ballot(
			ID INTEGER PRIMARY KEY ASC,
			QuestionID INTEGER,
			Ident TEXT)`); err != nil {
			return err
		}
		if err := sdb.CreateIndex("ballot_index ON ballot(QuestionID)"); err != nil {
			return err
		}
		if err := sdb.CreateTable(`choice(
			ID INTEGER PRIMARY KEY ASC,
			BallotID INTEGER,
			Rank INTEGER,
			Candidate TEXT)`); err != nil {
			return err
		}
		return sdb.CreateIndex("choice_index ON choice(BallotID)")
	}},
}
