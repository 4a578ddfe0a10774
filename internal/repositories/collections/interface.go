package collections

import (
	"context"

	"github.com/dmitrijs2005/shelfkeeper/internal/models"
)

// Repository describes persistence operations for Collection records.
// Implementations are backed by the local SQLite database and never touch
// the network. Items are persisted separately; implementations store and
// return collection rows without their items.
type Repository interface {
	// GetAll returns every stored collection, without items attached.
	GetAll(ctx context.Context) ([]models.Collection, error)

	// Upsert inserts a new collection or replaces an existing one by ID.
	Upsert(ctx context.Context, c *models.Collection) error

	// DeleteAll removes every collection row. Used for the bulk overwrite
	// that follows a merge.
	DeleteAll(ctx context.Context) error

	// CountLocalOnly returns the number of collections with no owner id,
	// i.e. never written to the remote store.
	CountLocalOnly(ctx context.Context) (int, error)
}
