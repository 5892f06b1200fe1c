package testutil

import (
	"context"
	"testing"

	"github.com/meanval/meanval/internal/domain"
	"github.com/meanval/meanval/internal/persist"
	"github.com/meanval/meanval/internal/store"
)

// NewTestStore opens a store over a fresh in-memory slot primed with an
// empty snapshot, so tests start from zero records rather than seed data.
func NewTestStore(t *testing.T) (*store.Store, *MemorySlotStore) {
	t.Helper()
	slot := NewMemorySlotStore()
	// At least one collection must be non-nil or the decoder reports the
	// document as malformed.
	if err := slot.Seed(&persist.Snapshot{Clients: []domain.Client{}}); err != nil {
		t.Fatalf("seeding slot: %v", err)
	}
	s := store.Open(context.Background(), slot, nil)
	t.Cleanup(s.Flush)
	return s, slot
}
