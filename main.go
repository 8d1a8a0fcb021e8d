package main

import (
	"fmt"
	"os"

	"soul-tracker/pkg/config"
	"soul-tracker/pkg/log"
	"soul-tracker/pkg/ui"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Recovered(r)
			fmt.Fprintln(os.Stderr, "Elven Souls crashed, see the log for details.")
			os.Exit(1)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		config.Exitf("config: %v", err)
	}
	log.SetLevel(level)
	if cfg.LogFile != "" {
		if err := log.SetFileOutput(cfg.LogFile); err != nil {
			config.Exitf("logging: %v", err)
		}
	}

	log.Info("starting", "version", version, "commit", commit, "locale", cfg.Locale)
	if err := ui.Run(cfg); err != nil {
		log.Error("ui exited", "error", err)
		log.Close()
		config.Exitf("ui: %v", err)
	}
	log.Close()
}
