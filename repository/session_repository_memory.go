package repository

import (
	"context"
	"sync"
	"time"

	"market-master/domain"
)

type memorySession struct {
	state     domain.SessionState
	expiresAt time.Time
}

// SessionRepositoryMemory is an in-memory SessionRepository with expiry.
type SessionRepositoryMemory struct {
	mu   sync.Mutex
	ttl  time.Duration
	data map[string]memorySession
	now  func() time.Time
}

func NewSessionRepositoryMemory(ttl time.Duration) *SessionRepositoryMemory {
	return &SessionRepositoryMemory{
		ttl:  ttl,
		data: make(map[string]memorySession),
		now:  time.Now,
	}
}

func (r *SessionRepositoryMemory) Load(_ context.Context, id string) (domain.SessionState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.data[id]
	if !ok {
		return domain.SessionState{}, ErrSessionNotFound
	}
	if r.now().After(s.expiresAt) {
		delete(r.data, id)
		return domain.SessionState{}, ErrSessionNotFound
	}
	return s.state, nil
}

func (r *SessionRepositoryMemory) Save(_ context.Context, state domain.SessionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[state.ID] = memorySession{
		state:     state,
		expiresAt: r.now().Add(r.ttl),
	}
	return nil
}

func (r *SessionRepositoryMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, id)
	return nil
}

// Sweep drops expired sessions and reports how many were removed.
func (r *SessionRepositoryMemory) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, s := range r.data {
		if now.After(s.expiresAt) {
			delete(r.data, id)
			removed++
		}
	}
	return removed
}
