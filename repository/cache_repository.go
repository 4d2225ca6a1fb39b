package repository

import "context"

// CacheRepository is a flat string key/value store, used for client
// preferences.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
