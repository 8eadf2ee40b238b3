package repository

import (
	"context"
	"hash/fnv"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/ohack/teamforge/internal/domain/model"
	"github.com/ohack/teamforge/pkg/metrics"
)

// Default store configuration constants.
const (
	defaultShardCount = 8
)

// record keeps a profile together with its insertion sequence so List can
// reproduce original submission order.
type record struct {
	profile  model.Profile
	insertAt uint64
}

// shard is one lock domain of the store.
type shard struct {
	mu       sync.RWMutex
	profiles map[string]record
}

// MemStore implements Store with a sharded in-memory map. Shard selection
// hashes the UserID with FNV-1a, so unrelated profiles rarely contend.
type MemStore struct {
	shards []*shard
	seq    atomic.Uint64
	count  atomic.Int64
}

// NewMemStore creates an in-memory roster store with configuration options.
func NewMemStore(_ context.Context, opts ...Option) *MemStore {
	s := &MemStore{}
	cfg := storeConfig{shardCount: defaultShardCount}
	for _, opt := range opts {
		opt(&cfg)
	}

	s.shards = make([]*shard, cfg.shardCount)
	for i := range s.shards {
		s.shards[i] = &shard{profiles: make(map[string]record)}
	}

	metrics.UpdateRosterShardCount(cfg.shardCount)
	return s
}

func (s *MemStore) shardFor(userID string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return s.shards[int(h.Sum32())%len(s.shards)]
}

// Upsert inserts or replaces a profile.
func (s *MemStore) Upsert(_ context.Context, p model.Profile) (bool, error) {
	if p.UserID == "" {
		return false, ErrMissingUserID
	}

	sh := s.shardFor(p.UserID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	prev, exists := sh.profiles[p.UserID]
	insertAt := prev.insertAt
	if !exists {
		insertAt = s.seq.Add(1)
		s.count.Add(1)
	}
	sh.profiles[p.UserID] = record{profile: p, insertAt: insertAt}

	metrics.UpdateRosterSize(int(s.count.Load()))
	return !exists, nil
}

// Get returns the profile for userID.
func (s *MemStore) Get(_ context.Context, userID string) (model.Profile, error) {
	sh := s.shardFor(userID)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	rec, ok := sh.profiles[userID]
	if !ok {
		return model.Profile{}, ErrNotFound
	}
	return rec.profile, nil
}

// List returns every profile in insertion order.
func (s *MemStore) List(_ context.Context) ([]model.Profile, error) {
	var records []record
	for _, sh := range s.shards {
		sh.mu.RLock()
		for _, rec := range sh.profiles {
			records = append(records, rec)
		}
		sh.mu.RUnlock()
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].insertAt < records[j].insertAt
	})

	out := make([]model.Profile, len(records))
	for i, rec := range records {
		out[i] = rec.profile
	}
	return out, nil
}

// Delete removes a profile from the roster.
func (s *MemStore) Delete(_ context.Context, userID string) error {
	sh := s.shardFor(userID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, ok := sh.profiles[userID]; !ok {
		return ErrNotFound
	}
	delete(sh.profiles, userID)
	s.count.Add(-1)

	metrics.UpdateRosterSize(int(s.count.Load()))
	return nil
}

// Count returns the number of profiles on the roster.
func (s *MemStore) Count(_ context.Context) int {
	return int(s.count.Load())
}
