package items

import (
	"context"

	"github.com/dmitrijs2005/shelfkeeper/internal/models"
)

// Repository describes persistence operations for Item records. Items are
// stored and reconciled independently of their owning collection.
type Repository interface {
	// GetAll returns every stored item.
	GetAll(ctx context.Context) ([]models.Item, error)

	// GetByCollection returns the items owned by one collection.
	GetByCollection(ctx context.Context, collectionID string) ([]models.Item, error)

	// Upsert inserts a new item or replaces an existing one by ID.
	Upsert(ctx context.Context, item *models.Item) error

	// DeleteAll removes every item row.
	DeleteAll(ctx context.Context) error

	// CountLocalOnly returns the number of items whose owning collection
	// carries no sync evidence (or is missing locally).
	CountLocalOnly(ctx context.Context) (int, error)
}
