package main

import (
	"os"

	"altman-tracker/config"
	"altman-tracker/database"
	"altman-tracker/form"
	"altman-tracker/log"
	"altman-tracker/readmodel"
	"altman-tracker/store"
)

const submissionTable = "altman_refined_table"

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	log.TeeToFile(cfg.LogPath)

	// A failed bootstrap is not fatal on its own: opening the database
	// below fails distinctly if the file really is unusable.
	if err := database.Bootstrap(cfg.DBPath, cfg.TemplatePath); err != nil {
		log.Error("main.bootstrap:", err)
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	tableModel, err := readmodel.Bind(db, submissionTable)
	if err != nil {
		log.Fatal("main.db.bind:", err)
	}

	ctrl := form.NewController(store.New(db), tableModel)

	log.Info("Altman exam ready, database", cfg.DBPath)
	if err := ctrl.Run(os.Stdin, os.Stdout); err != nil {
		log.Fatal("main.session:", err)
	}
}
