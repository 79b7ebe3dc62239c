package database

import (
	"path/filepath"
	"testing"

	"github.com/annolab/annotator-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	t.Run("creates the database file and directory", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "data", "annotator.db")

		db, err := Initialize(dbPath, false)
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		assert.NoError(t, db.HealthCheck())
	})

	t.Run("in-memory database", func(t *testing.T) {
		db, err := Initialize(":memory:", false)
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		assert.NoError(t, db.HealthCheck())
	})
}

func TestAutoMigrate(t *testing.T) {
	db, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	err = db.AutoMigrate(&models.Asset{}, &models.Label{}, &models.Region{})
	require.NoError(t, err)

	for _, table := range []string{"assets", "labels", "regions"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestHealthCheckUninitialized(t *testing.T) {
	var db *DB
	assert.Error(t, db.HealthCheck())
}
