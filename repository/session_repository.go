package repository

import (
	"context"
	"errors"

	"market-master/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps calculator state for the lifetime of a page
// session. Entries expire; nothing outlives the configured TTL.
type SessionRepository interface {
	Load(ctx context.Context, id string) (domain.SessionState, error)
	Save(ctx context.Context, state domain.SessionState) error
	Delete(ctx context.Context, id string) error
}
