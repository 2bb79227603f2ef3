package reports

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	_ "github.com/meridian-erp/meridian-erp/testing"
)

func newTestCache(t *testing.T) (*Cache, func()) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewCache(client, time.Minute)
	return cache, func() {
		_ = client.Close()
		mr.Close()
	}
}

func TestCacheFetchJSONCaches(t *testing.T) {
	cache, cleanup := newTestCache(t)
	defer cleanup()
	ctx := context.Background()

	calls := 0
	loader := func(context.Context) (interface{}, error) {
		calls++
		return map[string]int{"value": 42}, nil
	}

	key, err := cache.BuildKey(ctx, "reports", "test")
	if err != nil {
		t.Fatalf("build key: %v", err)
	}

	var first map[string]int
	if err := cache.FetchJSON(ctx, key, &first, loader); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	var second map[string]int
	if err := cache.FetchJSON(ctx, key, &second, loader); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one loader call, got %d", calls)
	}
	if second["value"] != 42 {
		t.Fatalf("unexpected cached value: %+v", second)
	}
}

func TestCacheBumpInvalidates(t *testing.T) {
	cache, cleanup := newTestCache(t)
	defer cleanup()
	ctx := context.Background()

	before, err := cache.BuildKey(ctx, "reports", "tb")
	if err != nil {
		t.Fatalf("build key: %v", err)
	}
	if err := cache.Bump(ctx); err != nil {
		t.Fatalf("bump: %v", err)
	}
	after, err := cache.BuildKey(ctx, "reports", "tb")
	if err != nil {
		t.Fatalf("build key after bump: %v", err)
	}
	if before == after {
		t.Fatalf("bump did not change the key: %s", before)
	}
}

func TestCacheNilClientPassesThrough(t *testing.T) {
	cache := NewCache(nil, time.Minute)
	ctx := context.Background()

	calls := 0
	loader := func(context.Context) (interface{}, error) {
		calls++
		return map[string]int{"value": 7}, nil
	}

	key, err := cache.BuildKey(ctx, "reports", "tb")
	if err != nil {
		t.Fatalf("build key: %v", err)
	}
	var out map[string]int
	for i := 0; i < 2; i++ {
		if err := cache.FetchJSON(ctx, key, &out, loader); err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
	}
	if calls != 2 {
		t.Fatalf("nil client must recompute every time, got %d calls", calls)
	}
}
