package database

import (
	"testing"

	"github.com/lshigami/eduportal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectorFor(t *testing.T) {
	d, err := dialectorFor(config.Database{Driver: DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	d, err = dialectorFor(config.Database{Driver: DriverPostgres, Host: "db", Port: "5432", User: "u", Name: "portal"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	_, err = dialectorFor(config.Database{Driver: "mysql"})
	assert.Error(t, err)
}

func TestNewDatabaseMigrates(t *testing.T) {
	db, err := NewDatabase(&config.Config{Database: config.Database{Driver: DriverSQLite, Path: ":memory:"}})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	require.NoError(t, AutoMigrate(db))
	for _, m := range Models() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}
}
