package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestamp_Valid(t *testing.T) {
	ts, ok := ParseTimestamp("2025-04-01T10:00:00Z")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC), ts)
}

func TestParseTimestamp_MalformedIsZero(t *testing.T) {
	for _, s := range []string{"", "yesterday", "2025-04-01", "1712138400"} {
		ts, ok := ParseTimestamp(s)
		assert.False(t, ok, "input %q", s)
		assert.True(t, ts.IsZero(), "input %q must compare oldest", s)
	}
}

func TestCollection_LocalOnly(t *testing.T) {
	c := Collection{ID: "col-1"}
	assert.True(t, c.LocalOnly())

	c.OwnerID = "user-1"
	assert.False(t, c.LocalOnly())
}

func TestModTime_MalformedSortsOldest(t *testing.T) {
	good := Item{ID: "a", UpdatedAt: "2025-04-01T10:00:00Z"}
	bad := Item{ID: "b", UpdatedAt: "garbage"}
	assert.True(t, good.ModTime().After(bad.ModTime()))
}
