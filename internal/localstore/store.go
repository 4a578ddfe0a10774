// Package localstore owns the on-device durable dataset: collections,
// items, photo assets, and sync bookkeeping. Every operation is local-only
// and works without network reachability.
package localstore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/shelfkeeper/internal/common"
	"github.com/dmitrijs2005/shelfkeeper/internal/dbx"
	"github.com/dmitrijs2005/shelfkeeper/internal/models"
	"github.com/dmitrijs2005/shelfkeeper/internal/repositories/assets"
	"github.com/dmitrijs2005/shelfkeeper/internal/repositories/collections"
	"github.com/dmitrijs2005/shelfkeeper/internal/repositories/items"
	"github.com/dmitrijs2005/shelfkeeper/internal/repositories/metadata"
)

// Store composes the SQLite repositories over one database handle.
type Store struct {
	db          *sql.DB
	collections collections.Repository
	items       items.Repository
	assets      assets.Repository
	meta        metadata.Repository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:          db,
		collections: collections.NewSQLiteRepository(db),
		items:       items.NewSQLiteRepository(db),
		assets:      assets.NewSQLiteRepository(db),
		meta:        metadata.NewSQLiteRepository(db),
	}
}

func (s *Store) Close() error { return s.db.Close() }

// GetCollections returns every stored collection with its items attached,
// in insertion order.
func (s *Store) GetCollections(ctx context.Context) ([]models.Collection, error) {
	cols, err := s.collections.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.items.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	byCollection := make(map[string][]models.Item, len(cols))
	for _, item := range all {
		byCollection[item.CollectionID] = append(byCollection[item.CollectionID], item)
	}

	for i := range cols {
		cols[i].Items = byCollection[cols[i].ID]
	}
	return cols, nil
}

// SaveCollection upserts one collection and its items. A missing identifier
// rejects with common.ErrValidation before anything is written, which also
// guarantees the remote leg of a dual write is never attempted for invalid
// data.
func (s *Store) SaveCollection(ctx context.Context, c *models.Collection) error {
	if c == nil || c.ID == "" {
		return fmt.Errorf("collection is missing an id: %w", common.ErrValidation)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := collections.NewSQLiteRepository(tx).Upsert(ctx, c); err != nil {
			return err
		}
		itemRepo := items.NewSQLiteRepository(tx)
		for i := range c.Items {
			// normalize into a copy so the caller's slice is untouched
			item := c.Items[i]
			item.CollectionID = c.ID
			if err := itemRepo.Upsert(ctx, &item); err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveAll replaces the whole stored dataset with the given collections.
// Used for the bulk overwrite that follows a merge; runs in one
// transaction.
func (s *Store) SaveAll(ctx context.Context, cols []models.Collection) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		colRepo := collections.NewSQLiteRepository(tx)
		itemRepo := items.NewSQLiteRepository(tx)

		if err := colRepo.DeleteAll(ctx); err != nil {
			return err
		}
		if err := itemRepo.DeleteAll(ctx); err != nil {
			return err
		}

		for i := range cols {
			if err := colRepo.Upsert(ctx, &cols[i]); err != nil {
				return err
			}
			for j := range cols[i].Items {
				item := cols[i].Items[j]
				item.CollectionID = cols[i].ID
				if err := itemRepo.Upsert(ctx, &item); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// SaveAsset stores the original and display blobs for an item as one
// atomic pair.
func (s *Store) SaveAsset(ctx context.Context, collectionID, itemID string, original, display []byte) error {
	if collectionID == "" || itemID == "" {
		return fmt.Errorf("asset key is incomplete: %w", common.ErrValidation)
	}
	return s.assets.Save(ctx, collectionID, itemID, original, display)
}

// GetAsset returns the stored original/display pair for an item.
func (s *Store) GetAsset(ctx context.Context, collectionID, itemID string) ([]byte, []byte, error) {
	return s.assets.Get(ctx, collectionID, itemID)
}

// HasLocalOnlyData reports whether any stored entity lacks sync evidence
// (an owner id on its collection).
func (s *Store) HasLocalOnlyData(ctx context.Context) (bool, error) {
	n, err := s.collections.CountLocalOnly(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	n, err = s.items.CountLocalOnly(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SeedVersion returns the persisted seed version, 0 when unset.
func (s *Store) SeedVersion(ctx context.Context) (int, error) {
	v, err := s.meta.Get(ctx, metadata.KeySeedVersion)
	if err != nil {
		return 0, err
	}
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("stored seed version %q is not a number: %w", v, err)
	}
	return n, nil
}

// SetSeedVersion persists the seed version.
func (s *Store) SetSeedVersion(ctx context.Context, version int) error {
	return s.meta.Set(ctx, metadata.KeySeedVersion, strconv.Itoa(version))
}
