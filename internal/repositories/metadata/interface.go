package metadata

import "context"

// Keys stored in the metadata table.
const KeySeedVersion = "seed_version"

// Repository is a small key/value store for sync bookkeeping, such as the
// seed version gating one-time population of default data.
type Repository interface {
	// Get returns the stored value, or "" if the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores or replaces the value for a key.
	Set(ctx context.Context, key, value string) error
}
