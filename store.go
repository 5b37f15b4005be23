package main

// Store is an interface for the persistent ballot archive
// should allow easier swapping of databases
type Store interface {
	Init(databaseFile string) error
	Close()
	SaveQuestion(q *question) (int, error)
	GetQuestion(questionID int) (*question, error)
	GetQuestionByLabel(label string) (*question, error)
	GetQuestions() ([]*question, error)
	DeleteQuestion(questionID int) error
}
