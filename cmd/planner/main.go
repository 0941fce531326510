package main

import (
	"fmt"
	"os"

	"github.com/JustSimplyTom/HACKATHON/internal/config"
	"github.com/JustSimplyTom/HACKATHON/internal/logger"
	"github.com/JustSimplyTom/HACKATHON/internal/storage"
	"github.com/JustSimplyTom/HACKATHON/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogPath)
	if err != nil {
		fmt.Printf("failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	store, err := storage.Open(cfg.DBPath, log)
	if err != nil {
		fmt.Printf("failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := ui.Run(store, log, cfg); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
