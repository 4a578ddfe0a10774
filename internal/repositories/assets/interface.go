package assets

import "context"

// Resolutions stored per photo. Lifecycle follows the item that references
// the asset; assets carry no timestamp of their own.
const (
	ResolutionOriginal = "original"
	ResolutionDisplay  = "display"
)

// Repository stores photo payloads in two resolutions, keyed by the owning
// collection and item. Save writes both resolutions as one atomic unit.
type Repository interface {
	// Save writes the original and display blobs in a single transaction:
	// both succeed or both fail.
	Save(ctx context.Context, collectionID, itemID string, original, display []byte) error

	// Get returns the stored pair for an item.
	Get(ctx context.Context, collectionID, itemID string) (original, display []byte, err error)
}
