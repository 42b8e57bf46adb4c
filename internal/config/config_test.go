package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, StoreFile, cfg.StoreDriver)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "configs/challenges.json", cfg.CatalogPath)
	assert.Equal(t, 0, cfg.MinSessionSeconds)
}

func TestLoadRejectsUnknownStoreDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsNegativeMinSession(t *testing.T) {
	t.Setenv("MIN_SESSION_SECONDS", "-5")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "eighty")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetDBConnString(t *testing.T) {
	t.Setenv("DB_USER", "speech")
	t.Setenv("DB_PASSWORD", "hive")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "practice")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://speech:hive@db:5433/practice?sslmode=disable", cfg.GetDBConnString())
}
