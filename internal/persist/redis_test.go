package persist_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/meanval/meanval/internal/domain"
	"github.com/meanval/meanval/internal/persist"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisSlot(t *testing.T) (*persist.RedisSlotStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return persist.NewRedisSlotStore(client, ""), mr
}

func TestRedisSlotStore_Roundtrip(t *testing.T) {
	slot, _ := newRedisSlot(t)
	ctx := context.Background()

	loaded, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded, "missing key reads as empty, not as an error")

	in := &persist.Snapshot{
		Proposals: []domain.Proposal{{ID: "prop-1", Number: "TEK-2024-001", Amount: 200000}},
	}
	require.NoError(t, slot.Save(ctx, in))

	out, err := slot.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.Proposals, out.Proposals)
}

func TestRedisSlotStore_UsesDefaultKey(t *testing.T) {
	slot, mr := newRedisSlot(t)

	require.NoError(t, slot.Save(context.Background(), &persist.Snapshot{Clients: []domain.Client{}}))
	assert.True(t, mr.Exists(persist.RedisKey))
}

func TestRedisSlotStore_MalformedDocument(t *testing.T) {
	slot, mr := newRedisSlot(t)
	mr.Set(persist.RedisKey, "not json")

	_, err := slot.Load(context.Background())
	assert.ErrorIs(t, err, persist.ErrMalformedSnapshot)
}

func TestRedisSlotStore_Unavailable(t *testing.T) {
	slot, mr := newRedisSlot(t)
	mr.Close()

	assert.ErrorIs(t, slot.Ping(context.Background()), persist.ErrSlotUnavailable)

	_, err := slot.Load(context.Background())
	assert.ErrorIs(t, err, persist.ErrSlotUnavailable)

	err = slot.Save(context.Background(), &persist.Snapshot{Clients: []domain.Client{}})
	assert.ErrorIs(t, err, persist.ErrSlotUnavailable)
}
