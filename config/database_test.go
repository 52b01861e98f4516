package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDatabaseConfigDefaults(t *testing.T) {
	unsetenv(t, "DB_TYPE", "DB_HOST", "DB_PORT", "DB_AUTO_MIGRATE", "DB_SLOW_THRESHOLD_MS", "APP_ENV")

	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)

	assert.Equal(t, DBTypePostgres, cfg.Type)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "5432", cfg.Port)
	assert.True(t, cfg.AutoMigrate)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 2*time.Second, cfg.SlowThreshold())
}

func TestLoadDatabaseConfigOverrides(t *testing.T) {
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/p.db")
	t.Setenv("DB_REPLICA_DSNS", "host=r1,host=r2")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)

	assert.Equal(t, DBTypeSQLite, cfg.Type)
	assert.Equal(t, "/tmp/p.db", cfg.SQLitePath)
	assert.Equal(t, []string{"host=r1", "host=r2"}, cfg.ReplicaDSNs)
	assert.False(t, cfg.AutoMigrate)
	assert.True(t, cfg.IsProduction())
}

func TestLoadDatabaseConfigRejectsUnknownType(t *testing.T) {
	t.Setenv("DB_TYPE", "oracle")

	_, err := LoadDatabaseConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Type:     DBTypePostgres,
		Host:     "db",
		Port:     "5433",
		User:     "u",
		Password: "p",
		Name:     "n",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5433 sslmode=disable", cfg.DSN())

	cfg.Type = DBTypeSupabase
	assert.Contains(t, cfg.DSN(), "sslmode=require")
}
