package syncer

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/shelfkeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_SeedsFreshAdminAccountOnce(t *testing.T) {
	store := newFakeStore()
	rc := newFakeRemote("admin-1")
	rc.admin = true
	status := &statusRecorder{}

	s := NewService(store, rc, testOptions(status))
	res, err := s.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Collections, 2, "every starter collection is persisted")
	for _, c := range res.Collections {
		assert.Equal(t, "admin-1", c.OwnerID, "seeds are tagged with the acting owner")
		assert.True(t, c.Public, "seeds are publicly visible")
		assert.NotEmpty(t, c.ID)
	}
	assert.Equal(t, CurrentSeedVersion, store.seedVersion)
	assert.Len(t, rc.upserted, 2, "seeds are pushed to the remote store")

	// a second load with an up-to-date seed version must not reseed
	before := len(rc.upserted)
	_, err = s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, len(rc.upserted))
}

func TestLoad_NoSeedingForRegularIdentity(t *testing.T) {
	store := newFakeStore()
	rc := newFakeRemote("user-1") // not admin

	s := NewService(store, rc, testOptions(&statusRecorder{}))
	res, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.Empty(t, res.Collections)
	assert.Equal(t, 0, store.seedVersion)
}

func TestLoad_NoSeedingWhenRemoteHasData(t *testing.T) {
	store := newFakeStore()
	rc := newFakeRemote("admin-1")
	rc.admin = true
	rc.fetchResult = []models.Collection{col("cloud", "Cloud Shelf", "2025-03-01T00:00:00Z", "admin-1")}

	s := NewService(store, rc, testOptions(&statusRecorder{}))
	res, err := s.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Collections, 1)
	assert.Equal(t, 0, store.seedVersion, "non-empty remote snapshot disables seeding")
}

func TestLoad_NoSeedingWhenVersionCurrent(t *testing.T) {
	store := newFakeStore()
	store.seedVersion = CurrentSeedVersion
	rc := newFakeRemote("admin-1")
	rc.admin = true

	s := NewService(store, rc, testOptions(&statusRecorder{}))
	res, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.Empty(t, res.Collections)
	assert.Empty(t, rc.upserted)
}
