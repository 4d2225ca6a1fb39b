package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"market-master/domain"
	"market-master/repository"
)

// SessionService runs one Calculator per page session. Events for the same
// session are applied one at a time.
type SessionService struct {
	repo     repository.SessionRepository
	terms    []int
	defaults domain.MortgageInputs

	mu    sync.Mutex
	locks map[string]*sessionLock
}

// sessionLock is dropped from the map once nobody holds or waits on it.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewSessionService takes default inputs as configured; the down payment
// amount is derived from the default percent.
func NewSessionService(
	repo repository.SessionRepository,
	terms []int,
	defaults domain.MortgageInputs,
) *SessionService {
	return &SessionService{
		repo:     repo,
		terms:    terms,
		defaults: SyncFromPercent(defaults),
		locks:    make(map[string]*sessionLock),
	}
}

func (s *SessionService) lock(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sessionLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

// Create starts a session seeded with the default inputs.
func (s *SessionService) Create(ctx context.Context) (domain.CalculatorSnapshot, error) {
	calc, err := NewCalculator(s.defaults, s.terms)
	if err != nil {
		return domain.CalculatorSnapshot{}, err
	}

	id := uuid.NewString()
	if err := s.save(ctx, id, calc); err != nil {
		return domain.CalculatorSnapshot{}, err
	}

	snap := calc.Snapshot()
	snap.SessionID = id
	return snap, nil
}

// Get recomputes the snapshot for a stored session.
func (s *SessionService) Get(ctx context.Context, id string) (domain.CalculatorSnapshot, error) {
	calc, err := s.load(ctx, id)
	if err != nil {
		return domain.CalculatorSnapshot{}, err
	}
	snap := calc.Snapshot()
	snap.SessionID = id
	return snap, nil
}

// Dispatch applies one control event to a session.
func (s *SessionService) Dispatch(
	ctx context.Context,
	id string,
	event domain.CalculatorEvent,
) (domain.CalculatorSnapshot, error) {
	unlock := s.lock(id)
	defer unlock()

	calc, err := s.load(ctx, id)
	if err != nil {
		return domain.CalculatorSnapshot{}, err
	}

	if _, err := calc.Apply(Trigger(event.Trigger), event.Value); err != nil {
		return domain.CalculatorSnapshot{}, err
	}

	if err := s.save(ctx, id, calc); err != nil {
		return domain.CalculatorSnapshot{}, err
	}

	snap := calc.Snapshot()
	snap.SessionID = id
	if len(snap.Warnings) > 0 {
		log.Printf("Warning: session %s inputs flagged: %v", id, snap.Warnings)
	}
	return snap, nil
}

// End drops the session.
func (s *SessionService) End(ctx context.Context, id string) error {
	unlock := s.lock(id)
	defer unlock()
	return s.repo.Delete(ctx, id)
}

func (s *SessionService) load(ctx context.Context, id string) (*Calculator, error) {
	state, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	calc, err := NewCalculator(state.Inputs, s.terms)
	if err != nil {
		return nil, fmt.Errorf("restore session %s: %w", id, err)
	}
	return calc, nil
}

func (s *SessionService) save(ctx context.Context, id string, calc *Calculator) error {
	return s.repo.Save(ctx, domain.SessionState{
		ID:        id,
		Inputs:    calc.Inputs(),
		UpdatedAt: time.Now().UTC(),
	})
}

// Defaults returns the inputs new sessions start from.
func (s *SessionService) Defaults() domain.MortgageInputs {
	return s.defaults
}

// Terms returns the offered loan terms.
func (s *SessionService) Terms() []int {
	out := make([]int, len(s.terms))
	copy(out, s.terms)
	return out
}
