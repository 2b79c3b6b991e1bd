package services

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v9"

	"h3llo-cms/store"
)

func newTestStore(t *testing.T) (store.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return store.NewRedisStoreFromClient(client), mr
}

var errStoreDown = errors.New("store unavailable")

// faultyStore passes every call through to Store except the operations
// marked with fail, which return errStoreDown.
type faultyStore struct {
	store.Store
	failing map[string]bool
}

func newFaultyStore(kv store.Store) *faultyStore {
	return &faultyStore{Store: kv, failing: map[string]bool{}}
}

func (f *faultyStore) fail(ops ...string) {
	for _, op := range ops {
		f.failing[op] = true
	}
}

func (f *faultyStore) Set(ctx context.Context, key string, value []byte) error {
	if f.failing["Set"] {
		return errStoreDown
	}
	return f.Store.Set(ctx, key, value)
}

func (f *faultyStore) SAdd(ctx context.Context, key, member string) error {
	if f.failing["SAdd"] {
		return errStoreDown
	}
	return f.Store.SAdd(ctx, key, member)
}

func (f *faultyStore) ZAdd(ctx context.Context, key, member string, score float64) error {
	if f.failing["ZAdd"] {
		return errStoreDown
	}
	return f.Store.ZAdd(ctx, key, member, score)
}
