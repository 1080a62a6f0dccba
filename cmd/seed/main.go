package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"expense-tracker/internal/config"
	"expense-tracker/internal/database"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/services"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

var demoUserIDs = []int64{1, 2}

func main() {
	var (
		generate = flag.Int("generate", 0, "number of random costs to add for the demo users")
		month    = flag.String("month", "", "month of the generated costs as YYYY-MM (default: previous month)")
		seed     = flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed for generated costs")
	)
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

	ctx := context.Background()

	if err := run(ctx, db, *generate, *month, *seed); err != nil {
		logger.Error("Seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Seeding complete")
}

func run(ctx context.Context, db *database.DB, generate int, month string, seed uint64) error {
	users := repositories.NewUserRepository(db.DB)
	costs := repositories.NewCostRepository(db.DB)
	reports := repositories.NewReportRepository(db.DB)
	logs := services.NewRequestLogService(repositories.NewRequestLogRepository(db.DB))

	if err := db.DeleteUsers(demoUserIDs); err != nil {
		return err
	}

	for _, user := range demoUsers() {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
	}
	slog.Info("Seeded users", "count", len(demoUserIDs))

	demo := demoCosts(time.Now().UTC())
	if err := costs.CreateBatch(ctx, demo); err != nil {
		return err
	}
	slog.Info("Seeded costs", "count", len(demo))

	if generate > 0 {
		start, err := generatedMonth(month)
		if err != nil {
			return err
		}

		generated := services.NewCostGenerator(seed).GenerateCosts(demoUserIDs, generate, start)
		if err := costs.CreateBatch(ctx, generated); err != nil {
			return err
		}
		slog.Info("Generated costs", "count", len(generated), "month", start.Format("2006-01"), "seed", seed)
	}

	// reports cached before this run no longer match the seeded costs
	deleted, err := reports.DeleteByUserIDs(ctx, demoUserIDs)
	if err != nil {
		return err
	}
	slog.Info("Cleared cached reports", "count", deleted, "hint", "send running servers SIGHUP to flush their in-memory reports")

	for i, url := range []string{"/", "/api"} {
		entry := models.NewRequestLog("seed", "SEED", url, 0, "")
		entry.Message = "Seeded database"
		if i > 0 {
			entry.Message = "Seeded database - 2"
		}
		if err := logs.Record(ctx, entry); err != nil {
			return err
		}
	}

	return nil
}

func demoUsers() []*models.User {
	return []*models.User{
		{UserID: 1, FirstName: "Mosh", LastName: "Israeli", Birthday: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)},
		{UserID: 2, FirstName: "Israel", LastName: "Israeli", Birthday: time.Date(1992, 5, 15, 0, 0, 0, 0, time.UTC)},
	}
}

// demoCosts covers two closed months, for report caching, and the current one
func demoCosts(now time.Time) []models.Cost {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return []models.Cost{
		{Description: "Lunch", Category: models.CategoryFood, UserID: 1, Sum: decimal.NewFromInt(25), OccurredAt: day(2024, time.January, 10)},
		{Description: "Gym", Category: models.CategorySports, UserID: 1, Sum: decimal.NewFromInt(45), OccurredAt: day(2024, time.January, 15)},
		{Description: "Books", Category: models.CategoryEducation, UserID: 2, Sum: decimal.NewFromInt(60), OccurredAt: day(2024, time.February, 5)},
		{Description: "Rent", Category: models.CategoryHousing, UserID: 1, Sum: decimal.NewFromInt(900), OccurredAt: now},
	}
}

func generatedMonth(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0), nil
	}
	return time.Parse("2006-01", raw)
}
