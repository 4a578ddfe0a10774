package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name     string
		args     []string
		expected Config
	}{
		{
			name: "all flags set",
			args: []string{"cmd", "-a", "https://api.example", "-d", "other.db", "-t", "tok"},
			expected: Config{
				RemoteEndpoint: "https://api.example",
				DatabaseDSN:    "other.db",
				AuthToken:      "tok",
			},
		},
		{
			name:     "no flags keep existing values",
			args:     []string{"cmd"},
			expected: Config{DatabaseDSN: "keep.db"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{DatabaseDSN: "keep.db"}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, *config)
		})
	}
}
