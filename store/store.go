package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("store: key not found")

// Store is the key-value backend the CMS runs on. Every method is a single
// store operation; nothing here spans more than one key atomically except
// SetNX, which claims a key only if it is free.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	Delete(ctx context.Context, key string) error

	// MGet returns one entry per key, in order; missing keys yield nil.
	MGet(ctx context.Context, keys ...string) ([][]byte, error)

	SAdd(ctx context.Context, key, member string) error
	SRem(ctx context.Context, key, member string) error
	SMembers(ctx context.Context, key string) ([]string, error)

	// ZAdd inserts member or updates its score.
	ZAdd(ctx context.Context, key, member string, score float64) error
	ZRem(ctx context.Context, key, member string) error
	// ZRevRange returns members ordered by score, highest first. start and
	// stop are inclusive and may be negative to count from the end.
	ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	ZCard(ctx context.Context, key string) (int64, error)

	Ping(ctx context.Context) error
	Close() error
}
