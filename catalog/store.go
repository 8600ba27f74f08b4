package catalog

import (
	"context"
	"sync"
	"time"

	"salon-site-server/logx"
	"salon-site-server/models"
)

// Store owns the catalog snapshot served by one catalog page
type Store struct {
	loader   Loader
	mu       sync.RWMutex
	records  []models.ServiceRecord
	loadedAt time.Time
}

// NewStore creates an empty store. Call Reload to populate it.
func NewStore(loader Loader) *Store {
	return &Store{
		loader:  loader,
		records: []models.ServiceRecord{},
	}
}

// Snapshot returns the current catalog. Callers must not modify it.
func (s *Store) Snapshot() []models.ServiceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// LoadedAt is the time of the last successful load, zero if none
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Source names the loader behind the store
func (s *Store) Source() string {
	return s.loader.Name()
}

// Reload fetches the catalog again. On failure the store keeps its last
// good snapshot, which is empty if no load has ever succeeded.
func (s *Store) Reload(ctx context.Context) error {
	records, err := s.loader.Load(ctx)
	if err != nil {
		s.mu.RLock()
		kept := len(s.records)
		s.mu.RUnlock()
		logx.Warn().Err(err).Str("source", s.loader.Name()).Int("kept_records", kept).Msg("⚠️ Catalog reload failed")
		return err
	}

	s.mu.Lock()
	s.records = records
	s.loadedAt = time.Now()
	s.mu.Unlock()

	logx.Info().Str("source", s.loader.Name()).Int("records", len(records)).Msg("✅ Catalog loaded")
	return nil
}
