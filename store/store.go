package store

import (
	"database/sql"
	"strings"

	"github.com/pkg/errors"

	"altman-tracker/model"
)

// ErrParamCount reports a mismatch between the positional placeholders in a
// statement and the values bound to it. The statement is never executed.
var ErrParamCount = errors.New("bind value count does not match placeholder count")

const insertSubmission = `
	INSERT INTO altman_refined_table (
		altman_date,
		altman_time,
		altman_question,
		altman_question_2,
		altman_question_3,
		altman_question_4,
		altman_question_5,
		altmans_summary
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

// Store appends submission rows. It owns no connection: the handle is passed
// in by whoever manages the window/session lifetime.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db}
}

// InsertSubmission appends one row. Answer values are stored verbatim: range
// checks belong to the input widgets, not here.
func (s *Store) InsertSubmission(sub model.Submission) error {
	return s.exec(insertSubmission,
		sub.Date,
		sub.Time,
		sub.Answer1,
		sub.Answer2,
		sub.Answer3,
		sub.Answer4,
		sub.Answer5,
		sub.Summary,
	)
}

// exec runs a statement, but only after checking that the bind values match
// the placeholders one to one.
func (s *Store) exec(query string, args ...any) error {
	if n := strings.Count(query, "?"); n != len(args) {
		return errors.Wrapf(ErrParamCount, "expected %d bind values, got %d", n, len(args))
	}

	_, err := s.db.Exec(query, args...)
	return errors.Wrap(err, "exec statement")
}
