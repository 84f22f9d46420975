package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("testdata/nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "file:farmbook.db", cfg.Storage.DSN)
	assert.Equal(t, "0 6 * * *", cfg.Digest.CronSchedule)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("FARMBOOK_DB", "file:/tmp/test.db")
	t.Setenv("DIGEST_CRON_SCHEDULE", "30 5 * * *")
	t.Setenv("APP_DEBUG", "true")

	cfg, err := Load("testdata/nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "file:/tmp/test.db", cfg.Storage.DSN)
	assert.Equal(t, "30 5 * * *", cfg.Digest.CronSchedule)
	assert.True(t, cfg.Debug)
}

func TestValidateRejectsBadPort(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-port")

	_, err := Load("testdata/nonexistent.env")
	assert.Error(t, err)
}
