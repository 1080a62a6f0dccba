package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"expense-tracker/internal/config"
	"expense-tracker/internal/database"
	"expense-tracker/internal/repositories"

	"github.com/joho/godotenv"
)

const tierHint = "Running servers keep serving in-memory reports until REPORT_MEMORY_CACHE_TTL; send them SIGHUP to flush"

func main() {
	reportsOnly := flag.Bool("reports-only", false, "only drop cached monthly reports, e.g. after changing REPORT_TIMEZONE")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if *reportsOnly {
		deleted, err := repositories.NewReportRepository(db.DB).DeleteAll(context.Background())
		if err != nil {
			logger.Error("Failed to clear cached reports", "error", err)
			os.Exit(1)
		}
		logger.Info("Cleared cached reports", "count", deleted)
		logger.Info(tierHint)
		return
	}

	if err := db.Wipe(); err != nil {
		logger.Error("Wipe failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Database wipe complete")
	logger.Info(tierHint)
}
