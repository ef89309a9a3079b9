package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(ctx context.Context, key string) ([]byte, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	m.data[key] = val
}

func (m *memStore) Del(ctx context.Context, keys ...string) {
	for _, k := range keys {
		delete(m.data, k)
	}
}

func TestListCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	lc := NewListCache(store, time.Minute)

	_, ok := lc.GetList(ctx, "projects")
	require.False(t, ok)

	lc.PutList(ctx, "projects", []byte(`{"success":true,"data":[]}`))
	body, ok := lc.GetList(ctx, "projects")
	require.True(t, ok)
	require.JSONEq(t, `{"success":true,"data":[]}`, string(body))

	// Keys are namespaced per resource.
	_, ok = lc.GetList(ctx, "templates")
	require.False(t, ok)

	lc.Invalidate(ctx, "projects")
	_, ok = lc.GetList(ctx, "projects")
	require.False(t, ok)
}

func TestNilListCacheIsDisabled(t *testing.T) {
	ctx := context.Background()
	var lc *ListCache

	_, ok := lc.GetList(ctx, "projects")
	require.False(t, ok)
	lc.PutList(ctx, "projects", []byte("x")) // must not panic
	lc.Invalidate(ctx, "projects")
}
