package database

import (
	"database/sql"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Bootstrap makes sure a usable database file exists at targetPath. An
// existing file is left untouched. A missing file is seeded byte-for-byte
// from templatePath when that exists, otherwise created empty by opening a
// connection against it.
//
// Call once per process, before Open. A returned error leaves the storage
// layer non-functional: the subsequent Open fails on its own terms.
func Bootstrap(targetPath, templatePath string) error {
	_, err := os.Stat(targetPath)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.Wrap(err, "stat target db")
	}

	if _, err := os.Stat(templatePath); err == nil {
		return copyFile(templatePath, targetPath)
	}

	db, err := sql.Open("sqlite3", targetPath)
	if err != nil {
		return errors.Wrap(err, "create empty db")
	}
	// sql.Open alone touches nothing; the ping forces the driver to
	// create the file
	if err := db.Ping(); err != nil {
		db.Close()
		return errors.Wrap(err, "create empty db")
	}
	return errors.Wrap(db.Close(), "create empty db")
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "open template db")
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "create target db")
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrap(err, "copy template db")
	}
	return errors.Wrap(out.Close(), "copy template db")
}
