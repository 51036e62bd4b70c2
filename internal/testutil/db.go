package testutil

import (
	"path/filepath"
	"testing"

	"github.com/lshigami/egzamapp/config"
	"github.com/lshigami/egzamapp/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB opens a migrated sqlite database in a per-test temp dir.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = database.DriverSQLite
	cfg.Database.Path = filepath.Join(t.TempDir(), "egzamapp_test.db")

	db, err := database.NewDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// Config returns the defaults the services run with in production.
func Config() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.DefaultUserID = "demo-user"
	cfg.Auth.UserHeader = "X-User-Id"
	cfg.Upload.MaxBytes = 10 << 20
	cfg.Exam.StartScopedToOwner = true
	return cfg
}
