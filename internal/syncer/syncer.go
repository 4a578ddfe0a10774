// Package syncer drives the offline-first sync lifecycle: load the local
// snapshot, fetch the remote one when a session is available, merge, and
// persist the result. Local writes always complete independently of the
// remote leg; remote failures degrade to status signals and never cross
// this package's boundary as errors.
package syncer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/shelfkeeper/internal/logging"
	"github.com/dmitrijs2005/shelfkeeper/internal/merge"
	"github.com/dmitrijs2005/shelfkeeper/internal/models"
	"github.com/dmitrijs2005/shelfkeeper/internal/remote"
	"github.com/dmitrijs2005/shelfkeeper/internal/retryx"
)

// State of one load cycle.
type State string

const (
	StateIdle     State = "idle"
	StateLoading  State = "loading"
	StateReady    State = "ready"
	StateDegraded State = "degraded"
)

// Tone classifies a status signal for the presentation layer.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
)

// Status message keys emitted through the callback.
const (
	StatusSynced            = "synced"
	StatusSyncPaused        = "sync_paused"
	StatusRemoteWriteFailed = "remote_write_failed"
)

// StatusFunc receives status signals for the presentation layer.
type StatusFunc func(key string, tone Tone)

// LocalStore is the on-device persistence contract the orchestrator needs.
// Implemented by localstore.Store.
type LocalStore interface {
	GetCollections(ctx context.Context) ([]models.Collection, error)
	SaveCollection(ctx context.Context, c *models.Collection) error
	SaveAll(ctx context.Context, cols []models.Collection) error
	SaveAsset(ctx context.Context, collectionID, itemID string, original, display []byte) error
	HasLocalOnlyData(ctx context.Context) (bool, error)
	SeedVersion(ctx context.Context) (int, error)
	SetSeedVersion(ctx context.Context, version int) error
}

// LoadResult is what one completed load cycle hands to the caller.
type LoadResult struct {
	Collections    []models.Collection
	State          State
	LoadError      string
	HasLocalImport bool
}

// Options tune a Service beyond its two stores.
type Options struct {
	Logger        logging.Logger
	Status        StatusFunc
	RetryAttempts int
	RetryDelay    time.Duration

	// Samples is the fallback collection set shown when both stores are
	// empty and no identity is present. Never persisted implicitly.
	Samples []models.Collection
}

// Service is the sync orchestrator. A nil remote client means the app runs
// offline-only.
type Service struct {
	store  LocalStore
	remote remote.Client
	log    logging.Logger
	status StatusFunc

	retryAttempts int
	retryDelay    time.Duration
	samples       []models.Collection

	generation atomic.Int64

	mu    sync.Mutex
	state State
}

func NewService(store LocalStore, remoteClient remote.Client, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}
	attempts := opts.RetryAttempts
	if attempts < 2 {
		attempts = 2
	}
	s := &Service{
		store:         store,
		remote:        remoteClient,
		log:           log,
		status:        opts.Status,
		retryAttempts: attempts,
		retryDelay:    opts.RetryDelay,
		samples:       opts.Samples,
	}
	s.state = StateIdle
	return s
}

// State returns the state set by the most recent load cycle.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Service) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// commit records the cycle's final state unless a newer cycle has started,
// in which case the stale cycle's side effects are discarded.
func (s *Service) commit(gen int64, st State) bool {
	if s.generation.Load() != gen {
		return false
	}
	s.setState(st)
	return true
}

func (s *Service) emit(key string, tone Tone) {
	if s.status != nil {
		s.status(key, tone)
	}
}

func (s *Service) remoteSession() bool {
	return s.remote != nil && s.remote.OwnerID() != ""
}

// Load runs one complete sync cycle and returns the authoritative
// collection set for the session. Remote failures never fail the load; they
// surface through LoadResult.LoadError and the status callback.
func (s *Service) Load(ctx context.Context) (*LoadResult, error) {
	gen := s.generation.Add(1)
	s.setState(StateLoading)

	local, err := s.store.GetCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading local collections: %w", err)
	}
	s.reportMalformedTimestamps(ctx, local)

	hasLocalOnly, err := s.store.HasLocalOnlyData(ctx)
	if err != nil {
		return nil, fmt.Errorf("inspecting local data: %w", err)
	}

	if !s.remoteSession() {
		result := &LoadResult{Collections: local, State: StateReady, HasLocalImport: hasLocalOnly}
		if len(local) == 0 && len(s.samples) > 0 {
			result.Collections = s.samples
		}
		s.commit(gen, StateReady)
		return result, nil
	}

	cloud, err := s.remote.FetchCollections(ctx)
	if err != nil {
		// remote unavailable: previously visible data stays as-is
		s.log.Warn(ctx, "remote fetch failed, sync paused", "error", err)
		result := &LoadResult{
			Collections:    local,
			State:          StateDegraded,
			LoadError:      "sync paused: " + err.Error(),
			HasLocalImport: hasLocalOnly,
		}
		if s.commit(gen, StateDegraded) {
			s.emit(StatusSyncPaused, ToneError)
		}
		return result, nil
	}
	s.reportMalformedTimestamps(ctx, cloud)

	if len(local) == 0 && len(cloud) == 0 {
		seeded, err := s.maybeSeed(ctx, gen)
		if err != nil {
			return nil, err
		}
		local = seeded
	}

	merged := mergeSnapshots(local, cloud)

	if s.generation.Load() != gen {
		// superseded mid-flight (e.g. identity changed): hand the result
		// back but apply nothing
		return &LoadResult{Collections: merged, State: StateReady, HasLocalImport: hasLocalOnly}, nil
	}

	if !hasLocalOnly {
		if err := s.store.SaveAll(ctx, merged); err != nil {
			return nil, fmt.Errorf("persisting merge result: %w", err)
		}
	}

	if s.commit(gen, StateReady) {
		s.emit(StatusSynced, ToneSuccess)
	}
	s.log.Info(ctx, "sync finished", "collections", len(merged))
	return &LoadResult{Collections: merged, State: StateReady, HasLocalImport: hasLocalOnly}, nil
}

// mergeSnapshots reconciles collections and items as separate snapshot
// pairs, then reattaches the merged items to their owning collections.
// Items whose collection lost the collection-level merge still resolve on
// their own timestamps.
func mergeSnapshots(local, cloud []models.Collection) []models.Collection {
	mergedCols := merge.Collections(local, cloud)
	mergedItems := merge.Items(flattenItems(local), flattenItems(cloud))

	byCollection := make(map[string][]models.Item, len(mergedCols))
	for _, item := range mergedItems {
		byCollection[item.CollectionID] = append(byCollection[item.CollectionID], item)
	}
	for i := range mergedCols {
		mergedCols[i].Items = byCollection[mergedCols[i].ID]
	}
	return mergedCols
}

func flattenItems(cols []models.Collection) []models.Item {
	var result []models.Item
	for _, c := range cols {
		result = append(result, c.Items...)
	}
	return result
}

// SaveCollection writes locally first; the remote leg is best-effort and a
// failure there is reported, logged, and never rolled back. Sync evidence
// (the owner id) is stamped only after the remote write succeeds.
func (s *Service) SaveCollection(ctx context.Context, c *models.Collection) error {
	if err := s.store.SaveCollection(ctx, c); err != nil {
		return err
	}

	if !s.remoteSession() {
		return nil
	}

	synced := *c
	synced.OwnerID = s.remote.OwnerID()

	if err := s.remote.UpsertCollection(ctx, synced); err != nil {
		s.log.Error(ctx, "remote collection upsert failed", "collection", c.ID, "error", err)
		s.emit(StatusRemoteWriteFailed, ToneError)
		return nil
	}
	if err := s.remote.UpsertItems(ctx, synced.Items); err != nil {
		s.log.Error(ctx, "remote items upsert failed", "collection", c.ID, "error", err)
		s.emit(StatusRemoteWriteFailed, ToneError)
		return nil
	}

	c.OwnerID = synced.OwnerID
	if err := s.store.SaveCollection(ctx, c); err != nil {
		s.log.Error(ctx, "failed to persist sync evidence", "collection", c.ID, "error", err)
	}
	return nil
}

// SaveAsset stores both photo resolutions locally as an atomic pair, then
// uploads each resolution best-effort with independent retries, so a
// transient failure on one blob never re-uploads the other.
func (s *Service) SaveAsset(ctx context.Context, collectionID, itemID string, original, display []byte) error {
	if err := s.store.SaveAsset(ctx, collectionID, itemID, original, display); err != nil {
		return err
	}

	if !s.remoteSession() {
		return nil
	}

	uploads := []struct {
		resolution string
		blob       []byte
	}{
		{"original", original},
		{"display", display},
	}

	for _, u := range uploads {
		path := s.remote.AssetPath(collectionID, itemID, u.resolution)
		blob := u.blob
		err := retryx.Do(ctx, s.retryAttempts, s.retryDelay, func(ctx context.Context) error {
			_, err := s.remote.UploadAsset(ctx, path, blob)
			return err
		})
		if err != nil {
			s.log.Error(ctx, "asset upload failed after retries", "path", path, "error", err)
			s.emit(StatusRemoteWriteFailed, ToneError)
		}
	}
	return nil
}

func (s *Service) reportMalformedTimestamps(ctx context.Context, cols []models.Collection) {
	for _, c := range cols {
		if _, ok := models.ParseTimestamp(c.UpdatedAt); !ok {
			s.log.Warn(ctx, "collection has malformed timestamp, treating as oldest", "collection", c.ID, "updatedAt", c.UpdatedAt)
		}
		for _, item := range c.Items {
			if _, ok := models.ParseTimestamp(item.UpdatedAt); !ok {
				s.log.Warn(ctx, "item has malformed timestamp, treating as oldest", "item", item.ID, "updatedAt", item.UpdatedAt)
			}
		}
	}
}
