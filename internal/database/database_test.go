package database

import (
	"context"
	"path/filepath"
	"testing"

	"comodatos-admin/internal/config"
	"comodatos-admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:         "sqlite",
		SQLitePath:     filepath.Join(t.TempDir(), "audit.db"),
		MaxConnections: 1,
		MaxIdleConns:   1,
	}

	db, err := Initialize(context.Background(), cfg, quietLogger())
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck(context.Background()))
	assert.True(t, db.Migrator().HasTable(&models.SelectionEvent{}))
}

func TestSetupTestDB(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	require.NoError(t, db.Create(&models.SelectionEvent{SessionID: "s", ClienteID: 1}).Error)

	var count int64
	require.NoError(t, db.Model(&models.SelectionEvent{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
