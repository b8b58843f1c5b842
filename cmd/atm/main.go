package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"atm-teller/internal/app"
	"atm-teller/internal/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, closer, err := app.NewLogger(cfg)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	application, err := app.New(cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		slog.Error("Failed to open account store", "error", err)
		closer.Close()
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		slog.Error("Session aborted", "error", err)
		closer.Close()
		os.Exit(1)
	}

	slog.Info("Session finished")
}
