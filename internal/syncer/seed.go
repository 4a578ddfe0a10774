package syncer

import (
	"context"
	"time"

	"github.com/dmitrijs2005/shelfkeeper/internal/models"
	"github.com/google/uuid"
)

// CurrentSeedVersion gates one-time population of the starter collections.
// Bumping it makes the next qualifying load reseed exactly once.
const CurrentSeedVersion = 1

// maybeSeed populates the starter collections when the dataset is empty on
// both sides, the session belongs to an admin identity, and the persisted
// seed version is behind. Seeds are tagged with the acting owner and public
// visibility, persisted locally and pushed best-effort to the remote store.
// Returns the seeded collections (nil when seeding did not run).
func (s *Service) maybeSeed(ctx context.Context, gen int64) ([]models.Collection, error) {
	if !s.remoteSession() || !s.remote.IsAdmin() {
		return nil, nil
	}

	stored, err := s.store.SeedVersion(ctx)
	if err != nil {
		return nil, err
	}
	if stored >= CurrentSeedVersion {
		return nil, nil
	}
	if s.generation.Load() != gen {
		return nil, nil
	}

	seeds := seedCollections(s.remote.OwnerID())
	for i := range seeds {
		if err := s.SaveCollection(ctx, &seeds[i]); err != nil {
			return nil, err
		}
	}

	if err := s.store.SetSeedVersion(ctx, CurrentSeedVersion); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "seeded starter collections", "count", len(seeds), "version", CurrentSeedVersion)
	return seeds, nil
}

// seedCollections builds the fixed starter set for a fresh account.
func seedCollections(ownerID string) []models.Collection {
	now := models.Timestamp(time.Now())

	records := models.Collection{
		ID:         uuid.NewString(),
		TemplateID: "records",
		Name:       "Vinyl Records",
		Icon:       "💿",
		Fields: []models.FieldDef{
			{Key: "artist", Label: "Artist", Type: models.FieldTypeText},
			{Key: "year", Label: "Year", Type: models.FieldTypeNumber},
			{Key: "label", Label: "Label", Type: models.FieldTypeText},
		},
		Display:   models.DisplaySettings{ListFields: []string{"artist", "year"}, BadgeField: "year"},
		UpdatedAt: now,
		OwnerID:   ownerID,
		Public:    true,
	}

	chocolate := models.Collection{
		ID:         uuid.NewString(),
		TemplateID: "chocolate",
		Name:       "Chocolate Bars",
		Icon:       "🍫",
		Fields: []models.FieldDef{
			{Key: "maker", Label: "Maker", Type: models.FieldTypeText},
			{Key: "cacao", Label: "Cacao %", Type: models.FieldTypeNumber},
			{Key: "origin", Label: "Origin", Type: models.FieldTypeText},
		},
		Display:   models.DisplaySettings{ListFields: []string{"maker", "cacao"}, BadgeField: "cacao"},
		UpdatedAt: now,
		OwnerID:   ownerID,
		Public:    true,
	}

	return []models.Collection{records, chocolate}
}
