package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/meanval/meanval/internal/persist"
)

// MemorySlotStore is an in-memory persist.SlotStore for tests. It stores
// the encoded document, so tests exercise the same serialization path as
// the real slots.
type MemorySlotStore struct {
	mu    sync.Mutex
	raw   []byte
	saves int
}

func NewMemorySlotStore() *MemorySlotStore {
	return &MemorySlotStore{}
}

func (m *MemorySlotStore) Load(ctx context.Context) (*persist.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.raw == nil {
		return nil, nil
	}
	return persist.DecodeSnapshot(m.raw)
}

func (m *MemorySlotStore) Save(ctx context.Context, snap *persist.Snapshot) error {
	raw, err := snap.Encode()
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw = raw
	m.saves++
	return nil
}

// Saves reports how many times Save completed.
func (m *MemorySlotStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Seed primes the slot with an encoded snapshot.
func (m *MemorySlotStore) Seed(snap *persist.Snapshot) error {
	return m.Save(context.Background(), snap)
}

// ErrSlotDown is returned by FailingSlotStore operations.
var ErrSlotDown = errors.New("slot store down")

// FailingSlotStore fails every operation, for testing degraded paths.
type FailingSlotStore struct{}

func (FailingSlotStore) Load(ctx context.Context) (*persist.Snapshot, error) {
	return nil, ErrSlotDown
}

func (FailingSlotStore) Save(ctx context.Context, snap *persist.Snapshot) error {
	return ErrSlotDown
}
