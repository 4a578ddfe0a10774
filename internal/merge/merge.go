// Package merge reconciles a local snapshot and a remote snapshot of the
// same entity kind into one authoritative result set. All functions are
// pure decision logic: no I/O, no mutation of inputs, deterministic output
// for a given input pair. The caller performs persistence based on the
// result.
package merge

import (
	"time"

	"github.com/dmitrijs2005/shelfkeeper/internal/models"
)

// Entity is the contract the recency merge needs: a stable identifier and
// a comparable last-modified instant.
type Entity interface {
	EntityID() string
	ModTime() time.Time
}

// mergeByRecency builds the authoritative set from a (local, remote) pair.
//
// Remote entities come first, in remote order. Where both sides hold the
// same id, the side with the strictly greater ModTime wins in full; on an
// exact tie the remote record is taken (remote is the tie-break authority).
// Every local entity absent from remote is appended afterwards, in local
// order, unconditionally: local-only data is never dropped here. Whether a
// previously-synced entity missing from remote should be deleted is a
// policy decision for the caller, not for this function.
//
// Runs in O(n+m); no id appears twice in the result.
func mergeByRecency[E Entity](local, remote []E) []E {
	result := make([]E, 0, len(local)+len(remote))

	localByID := make(map[string]E, len(local))
	for _, l := range local {
		localByID[l.EntityID()] = l
	}

	inRemote := make(map[string]struct{}, len(remote))
	for _, r := range remote {
		id := r.EntityID()
		inRemote[id] = struct{}{}
		if l, ok := localByID[id]; ok && l.ModTime().After(r.ModTime()) {
			result = append(result, l)
			continue
		}
		result = append(result, r)
	}

	for _, l := range local {
		if _, ok := inRemote[l.EntityID()]; !ok {
			result = append(result, l)
		}
	}

	return result
}

// Collections merges two collection snapshots by recency.
func Collections(local, remote []models.Collection) []models.Collection {
	return mergeByRecency(local, remote)
}

// Items merges two item snapshots by recency. Items are reconciled
// independently of their owning collection's presence or absence.
func Items(local, remote []models.Item) []models.Item {
	return mergeByRecency(local, remote)
}
