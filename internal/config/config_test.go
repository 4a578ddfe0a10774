package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "", c.RemoteEndpoint, "offline-only by default")
	assert.Equal(t, "shelfkeeper.db", c.DatabaseDSN)
	assert.Equal(t, 3, c.UploadRetries)
	assert.Equal(t, 2*time.Second, c.UploadRetryDelay)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "shelfkeeper.db", cfg.DatabaseDSN)
	assert.Equal(t, 3, cfg.UploadRetries)
}
