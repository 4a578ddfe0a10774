package cli

import (
	"testing"

	"github.com/dmitrijs2005/shelfkeeper/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_AcceptsConfigLayerFlags(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	root := NewRootCmd(cfg)

	err := root.ParseFlags([]string{
		"-a", "https://api.example.com",
		"-d", "shelf.db",
		"-t", "tok",
		"-c", "shelf.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.RemoteEndpoint)
	assert.Equal(t, "shelf.db", cfg.DatabaseDSN)
	assert.Equal(t, "tok", cfg.AuthToken)

	// -c is accepted but bound to nothing; the config package reads it
	// from os.Args on its own
	f := root.PersistentFlags().Lookup("config")
	require.NotNil(t, f)
	assert.Equal(t, "shelf.json", f.Value.String())
}

func TestRootCmd_SubcommandsRegistered(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	root := NewRootCmd(cfg)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "sync")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "add")
}
