package main

import (
	"database/sql"
	"fmt"

	"github.com/semog/go-sqldb"
	"k8s.io/klog"
)

type sqlStore struct {
	db *sqldb.SQLDb
}

func (st *sqlStore) Close() {
	err := st.db.Close()
	if err != nil {
		klog.Infof("could not close database properly: %v\n", err)
	}
}

type closable interface {
	Close() error
}

func close(c closable) {
	err := c.Close()
	if err != nil {
		klog.Infof("could not close stmt or rows properly: %v\n", err)
	}
}

func newSQLStore(databaseFile string) *sqlStore {
	st := &sqlStore{}
	err := st.Init(databaseFile)
	if err != nil {
		klog.Fatalf("could not open database %s: %v", databaseFile, err)
	}
	return st
}

// SaveQuestion archives one question with all of its ballots and ranked
// choices. Re-importing a question with the same label replaces the previous
// archive entry.
func (st *sqlStore) SaveQuestion(q *question) (id int, err error) {
	if q.Label == "" {
		return id, fmt.Errorf("could not save question: empty label")
	}

	if prev, err := st.GetQuestionByLabel(q.Label); err == nil {
		if err := st.DeleteQuestion(prev.ID); err != nil {
			return id, fmt.Errorf("could not replace question %q: %v", q.Label, err)
		}
	}

	tx, err := st.db.Begin()
	if err != nil {
		return id, fmt.Errorf("could not begin database transaction: %v", err)
	}
	defer func() {
		if err != nil {
			if err := tx.Rollback(); err != nil {
				klog.Infof("could not rollback database change: %v", err)
			}
			return
		}
		err = tx.Commit()
	}()

	id64, err := st.db.GetGkey()
	if err != nil {
		return id, fmt.Errorf("could not get question gkey id: %v", err)
	}
	id = int(id64)

	now := getTimeStamp()
	stmt, err := tx.Prepare("INSERT INTO question(ID, Label, Slots, LastSaved, CreatedAt) values(?, ?, ?, ?, ?)")
	if err != nil {
		return id, fmt.Errorf("could not prepare sql insert statement: %v", err)
	}
	defer close(stmt)
	_, err = stmt.Exec(id, q.Label, q.Slots, now, now)
	if err != nil {
		return id, fmt.Errorf("could not insert question: %v", err)
	}

	for _, b := range q.Ballots {
		if err = saveBallot(st.db, tx, id, b); err != nil {
			return id, err
		}
	}
	q.ID = id
	return id, nil
}

func saveBallot(db *sqldb.SQLDb, tx *sql.Tx, questionID int, b *ballot) error {
	bid64, err := db.GetGkey()
	if err != nil {
		return fmt.Errorf("could not get ballot gkey id: %v", err)
	}
	bid := int(bid64)

	stmt, err := tx.Prepare("INSERT INTO ballot(ID, QuestionID, Ident) values(?, ?, ?)")
	if err != nil {
		return fmt.Errorf("could not prepare sql insert statement: %v", err)
	}
	defer close(stmt)
	if _, err = stmt.Exec(bid, questionID, b.ID); err != nil {
		return fmt.Errorf("could not insert ballot: %v", err)
	}

	cstmt, err := tx.Prepare("INSERT INTO choice(BallotID, Rank, Candidate) values(?, ?, ?)")
	if err != nil {
		return fmt.Errorf("could not prepare sql insert statement: %v", err)
	}
	defer close(cstmt)
	for slot, c := range b.Prefs {
		if c == noPref {
			continue
		}
		if _, err = cstmt.Exec(bid, slot+1, c); err != nil {
			return fmt.Errorf("could not insert choice: %v", err)
		}
	}
	return nil
}

func (st *sqlStore) GetQuestion(questionID int) (*question, error) {
	q := &question{ID: questionID}
	row := st.db.QueryRow("SELECT Label, Slots FROM question WHERE ID = ?", questionID)
	if err := row.Scan(&q.Label, &q.Slots); err != nil {
		return q, fmt.Errorf("could not scan question #%d: %v", q.ID, err)
	}

	var err error
	q.Ballots, err = st.getBallots(q)
	if err != nil {
		return q, fmt.Errorf("could not query ballots: %v", err)
	}
	return q, nil
}

func (st *sqlStore) GetQuestionByLabel(label string) (*question, error) {
	q := &question{Label: label}
	row := st.db.QueryRow("SELECT ID, Slots FROM question WHERE Label = ?", label)
	if err := row.Scan(&q.ID, &q.Slots); err != nil {
		return q, fmt.Errorf("could not scan question %q: %v", label, err)
	}

	var err error
	q.Ballots, err = st.getBallots(q)
	if err != nil {
		return q, fmt.Errorf("could not query ballots: %v", err)
	}
	return q, nil
}

func (st *sqlStore) GetQuestions() ([]*question, error) {
	ids := make([]int, 0)
	rows, err := st.db.Query("SELECT ID FROM question ORDER BY ID ASC")
	if err != nil {
		return nil, fmt.Errorf("could not query questions: %v", err)
	}
	defer close(rows)
	var id int
	for rows.Next() {
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("could not scan question ID: %v", err)
		}
		ids = append(ids, id)
	}

	questions := make([]*question, 0, len(ids))
	for _, id := range ids {
		q, err := st.GetQuestion(id)
		if err != nil {
			return questions, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (st *sqlStore) getBallots(q *question) ([]*ballot, error) {
	ballots := make([]*ballot, 0)
	byid := make(map[int]*ballot)

	rows, err := st.db.Query("SELECT ID, Ident FROM ballot WHERE QuestionID = ? ORDER BY ID ASC", q.ID)
	if err != nil {
		return ballots, fmt.Errorf("could not query ballots: %v", err)
	}
	defer close(rows)
	var bid int
	var ident string
	for rows.Next() {
		if err = rows.Scan(&bid, &ident); err != nil {
			return ballots, fmt.Errorf("could not scan ballot: %v", err)
		}
		b := &ballot{ID: ident, Prefs: make([]string, q.Slots)}
		ballots = append(ballots, b)
		byid[bid] = b
	}

	crows, err := st.db.Query(`SELECT choice.BallotID, choice.Rank, choice.Candidate
		FROM choice INNER JOIN ballot ON choice.BallotID = ballot.ID
		WHERE ballot.QuestionID = ? ORDER BY choice.ID ASC`, q.ID)
	if err != nil {
		return ballots, fmt.Errorf("could not query choices: %v", err)
	}
	defer close(crows)
	var rank int
	var candidate string
	for crows.Next() {
		if err = crows.Scan(&bid, &rank, &candidate); err != nil {
			return ballots, fmt.Errorf("could not scan choice: %v", err)
		}
		b, ok := byid[bid]
		if !ok || rank < 1 || rank > q.Slots {
			klog.Infof("skipping stray choice row for ballot #%d rank %d", bid, rank)
			continue
		}
		b.Prefs[rank-1] = candidate
	}
	return ballots, nil
}

func (st *sqlStore) DeleteQuestion(questionID int) error {
	tx, err := st.db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin database transaction: %v", err)
	}
	defer func() {
		if err != nil {
			if err := tx.Rollback(); err != nil {
				klog.Infof("could not rollback database change: %v", err)
			}
			return
		}
		err = tx.Commit()
	}()

	stmt, err := tx.Prepare("DELETE FROM choice WHERE BallotID IN (SELECT ID FROM ballot WHERE QuestionID = ?)")
	if err != nil {
		return fmt.Errorf("could not prepare sql statement: %v", err)
	}
	defer close(stmt)
	if _, err = stmt.Exec(questionID); err != nil {
		return fmt.Errorf("could not delete choices: %v", err)
	}

	bstmt, err := tx.Prepare("DELETE FROM ballot WHERE QuestionID = ?")
	if err != nil {
		return fmt.Errorf("could not prepare sql statement: %v", err)
	}
	defer close(bstmt)
	if _, err = bstmt.Exec(questionID); err != nil {
		return fmt.Errorf("could not delete ballots: %v", err)
	}

	qstmt, err := tx.Prepare("DELETE FROM question WHERE ID = ?")
	if err != nil {
		return fmt.Errorf("could not prepare sql statement: %v", err)
	}
	defer close(qstmt)
	if _, err = qstmt.Exec(questionID); err != nil {
		return fmt.Errorf("could not delete question: %v", err)
	}
	return nil
}
