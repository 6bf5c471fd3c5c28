package database

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the database file and makes sure the schema is in place.
// The handle is scoped to the application window: open once at startup,
// close once at teardown.
func Open(path string) (db *sql.DB, err error) {
	db, err = sql.Open("sqlite3", path)
	if err != nil {
		return
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		db.Close()
		return
	}

	// one writer and one reader, and they are the same execution context
	db.SetMaxOpenConns(1)

	err = ensureSchema(db)
	if err != nil {
		db.Close()
		return
	}

	return
}
