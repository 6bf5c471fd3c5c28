package config

import (
	"flag"
	"os"
	"path/filepath"
)

// DBName is the database file name, both for the per-user copy and for the
// optional seed template shipped next to the binary.
const DBName = "altman_tracker.sqlite"

type Config struct {
	DBPath       string
	TemplatePath string
	LogPath      string
	Debug        bool
}

func ParseFlags() (cfg Config, err error) {
	flag.StringVar(&cfg.DBPath, "db-file", "", "path to the SQLite3 DB file (default "+DBName+" in the user home directory)")
	flag.StringVar(&cfg.TemplatePath, "template", DBName, "path to a template DB file used to seed a fresh install")
	flag.StringVar(&cfg.LogPath, "log-file", "altman_tracker.log", "path to the application log file")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	if cfg.DBPath == "" {
		var home string
		home, err = os.UserHomeDir()
		if err != nil {
			return
		}
		cfg.DBPath = filepath.Join(home, DBName)
	}

	return
}
