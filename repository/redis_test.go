package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"market-master/domain"
)

// unreachableClient points at a closed port so every command fails fast.
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestSessionRepositoryRedis_ConnectionError(t *testing.T) {
	repo := NewSessionRepositoryRedis(unreachableClient(t), "test:", time.Minute)
	ctx := context.Background()

	_, err := repo.Load(ctx, "abc")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrSessionNotFound) {
		t.Error("a connection failure must not look like a missing session")
	}

	if err := repo.Save(ctx, domain.SessionState{ID: "abc"}); err == nil {
		t.Error("expected save error")
	}
}

func TestRedisCache_ConnectionErrorIsMiss(t *testing.T) {
	cache := NewRedisCache(unreachableClient(t), "test:")

	if _, ok := cache.Get(context.Background(), "client:fontSizePreference"); ok {
		t.Error("expected miss when redis is down")
	}
	if err := cache.Set(context.Background(), "k", "v"); err == nil {
		t.Error("expected set error")
	}
}
