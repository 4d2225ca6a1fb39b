package repository

import (
	"context"
	"testing"
)

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "k"); ok {
		t.Error("expected miss on empty cache")
	}

	cache.Set(ctx, "k", "font-size-xl")
	if v, ok := cache.Get(ctx, "k"); !ok || v != "font-size-xl" {
		t.Errorf("expected font-size-xl, got %q", v)
	}

	cache.Set(ctx, "k", "")
	if v, ok := cache.Get(ctx, "k"); !ok || v != "" {
		t.Errorf("an empty value is still stored, got %q %v", v, ok)
	}
}
