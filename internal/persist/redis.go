package persist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKey is the slot key used by the mirror API, matching the key layout
// of the original deployment's cache.
const RedisKey = "meanval:data"

// RedisSlotStore keeps the aggregate document under a single Redis key.
// It backs the remote mirror API; the terminal tool uses the SQLite slot.
type RedisSlotStore struct {
	client *redis.Client
	key    string
}

// NewRedisSlotStore wraps an existing client. An empty key selects RedisKey.
func NewRedisSlotStore(client *redis.Client, key string) *RedisSlotStore {
	if key == "" {
		key = RedisKey
	}
	return &RedisSlotStore{client: client, key: key}
}

// DialRedis connects to Redis with the timeouts used across our services.
func DialRedis(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

// Ping reports whether the slot is reachable.
func (s *RedisSlotStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	return nil
}

func (s *RedisSlotStore) Load(ctx context.Context) (*Snapshot, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrSlotUnavailable, s.key, err)
	}
	return DecodeSnapshot(raw)
}

func (s *RedisSlotStore) Save(ctx context.Context, snap *Snapshot) error {
	raw, err := snap.Encode()
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrSlotUnavailable, s.key, err)
	}
	return nil
}

func (s *RedisSlotStore) Close() error {
	return s.client.Close()
}
