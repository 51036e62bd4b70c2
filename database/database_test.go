package database

import (
	"testing"

	"github.com/lshigami/egzamapp/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file:egzamapp.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", SQLiteDSN(""))
	assert.Contains(t, SQLiteDSN("/tmp/x.db"), "file:/tmp/x.db?")
}

func TestNewDatabaseSQLite(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = DriverSQLite
	cfg.Database.Path = t.TempDir() + "/egzam.db"

	db, err := NewDatabase(cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, sqlDB.Ping())
	assert.Equal(t, "sqlite", db.Dialector.Name())
}

func TestNewDatabaseUnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "oracle"

	_, err := NewDatabase(cfg)
	assert.ErrorContains(t, err, `unsupported database driver "oracle"`)
}
