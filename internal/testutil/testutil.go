// Package testutil builds throwaway databases and configs for tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/lshigami/eduportal/config"
	"github.com/lshigami/eduportal/internal/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SeedPassword is the password of every seeded account.
const SeedPassword = "password"

// Config returns a config suitable for tests: in-memory database, fixed secret, exact text grading.
func Config() *config.Config {
	return &config.Config{
		Server:   config.Server{Port: "0", GinMode: "test"},
		Log:      config.Log{Level: "disabled"},
		Database: config.Database{Driver: database.DriverSQLite, Path: ":memory:"},
		Auth: config.Auth{
			JWTSecret:               "test-secret",
			JWTTTL:                  time.Hour,
			SchoolVerificationToken: "VALID_TOKEN",
		},
		Seed:    config.Seed{DemoData: true, Password: SeedPassword},
		Grading: config.Grading{Concurrency: 2},
	}
}

// NewDB opens a private in-memory database, migrated but empty.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// NewSeededDB opens a private in-memory database holding the demo data.
func NewSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := NewDB(t)
	require.NoError(t, database.Seed(db, SeedPassword))
	return db
}
