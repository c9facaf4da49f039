package main

import (
	"log"
	"os"

	"purpleairdb/internal/config"
	"purpleairdb/internal/dataset"
	"purpleairdb/internal/logging"
	"purpleairdb/internal/menu"
	"purpleairdb/internal/source"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	logger.Debug("session starting", "data_file", cfg.DataFile)

	ds := dataset.New()
	src := source.NewFileSource(cfg.DataFile)

	m := menu.New(os.Stdin, os.Stdout, ds, src, logger)
	m.Run()
}
