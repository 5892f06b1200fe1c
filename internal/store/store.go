// Package store is the single source of truth for the five entity
// collections. All reads and writes go through a Store handle constructed
// once at process start; every mutation triggers an asynchronous snapshot
// save through the persistence slot. Save failures are logged, never
// surfaced: the in-memory state stays authoritative for the process
// lifetime.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/meanval/meanval/internal/persist"
	"go.uber.org/zap"
)

type Store struct {
	mu   sync.Mutex
	snap *persist.Snapshot

	slot persist.SlotStore
	log  *zap.Logger
	now  func() time.Time

	lastIDMillis int64

	// Save pipeline: mutations publish the latest snapshot into pending
	// and a single writer goroutine drains it, so saves reach the slot in
	// mutation order and intermediate snapshots coalesce away.
	saveMu  sync.Mutex
	pending *persist.Snapshot
	writing bool
	saves   sync.WaitGroup
}

// Open loads the aggregate document from the slot. A missing, unreachable
// or malformed slot falls back to the built-in seed dataset, which is then
// written out as the new snapshot.
func Open(ctx context.Context, slot persist.SlotStore, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		slot: slot,
		log:  log,
		now:  func() time.Time { return time.Now().UTC() },
	}

	snap, err := slot.Load(ctx)
	if err != nil {
		log.Warn("loading snapshot failed, falling back to seed data", zap.Error(err))
	}
	if snap == nil {
		snap = persist.DefaultSnapshot()
		if err := slot.Save(ctx, snap); err != nil {
			log.Warn("seeding snapshot failed", zap.Error(err))
		}
	}
	snap.EnsureCounters()
	s.snap = snap
	return s
}

// Flush blocks until all pending snapshot saves have completed.
func (s *Store) Flush() {
	s.saves.Wait()
}

// persistLocked schedules a snapshot save. The caller must hold s.mu; the
// snapshot is deep-copied under the lock and handed to the single writer
// goroutine so mutations never block on the durable slot. The writer always
// takes the newest pending snapshot, so a slow earlier save can never
// overwrite a later mutation in the slot.
func (s *Store) persistLocked() {
	snap := s.snap.Clone()

	s.saveMu.Lock()
	s.pending = snap
	if s.writing {
		s.saveMu.Unlock()
		return
	}
	s.writing = true
	s.saveMu.Unlock()

	s.saves.Add(1)
	go s.writePending()
}

// writePending drains pending snapshots until no newer one is waiting.
func (s *Store) writePending() {
	defer s.saves.Done()
	for {
		s.saveMu.Lock()
		snap := s.pending
		s.pending = nil
		if snap == nil {
			s.writing = false
			s.saveMu.Unlock()
			return
		}
		s.saveMu.Unlock()

		if err := s.slot.Save(context.Background(), snap); err != nil {
			s.log.Warn("snapshot save failed", zap.Error(err))
		}
	}
}

// newID returns a timestamp-derived id. Consecutive calls within the same
// millisecond still produce distinct, ordered ids.
func (s *Store) newID(prefix string) string {
	ms := s.now().UnixMilli()
	if ms <= s.lastIDMillis {
		ms = s.lastIDMillis + 1
	}
	s.lastIDMillis = ms
	return fmt.Sprintf("%s-%d", prefix, ms)
}
