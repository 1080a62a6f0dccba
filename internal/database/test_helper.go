package database

import (
	"testing"
	"time"

	"expense-tracker/internal/config"
	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory sqlite database
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection to ":memory:" would get its own empty database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, userID int64) *models.User {
	t.Helper()

	user := &models.User{
		UserID:    userID,
		FirstName: "Test",
		LastName:  "User",
		Birthday:  time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestCost(t *testing.T, db *DB, userID int64, category models.Category, sum string, occurredAt time.Time) *models.Cost {
	t.Helper()

	cost := &models.Cost{
		Description: "test " + string(category),
		Category:    category,
		UserID:      userID,
		Sum:         decimal.RequireFromString(sum),
		OccurredAt:  occurredAt,
	}

	if err := db.Create(cost).Error; err != nil {
		t.Fatalf("failed to create test cost: %v", err)
	}

	return cost
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Wipe(); err != nil {
		t.Logf("failed to cleanup test database: %v", err)
	}
}
