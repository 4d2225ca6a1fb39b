package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"market-master/domain"
)

func TestSessionRepositoryMemory_SaveLoad(t *testing.T) {
	repo := NewSessionRepositoryMemory(time.Minute)
	ctx := context.Background()

	state := domain.SessionState{ID: "abc", Inputs: domain.MortgageInputs{HomePrice: 350000, LoanTermYears: 30}}
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.Load(ctx, "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Inputs != state.Inputs {
		t.Errorf("expected %+v, got %+v", state.Inputs, got.Inputs)
	}

	if _, err := repo.Load(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionRepositoryMemory_Expiry(t *testing.T) {
	repo := NewSessionRepositoryMemory(time.Minute)
	ctx := context.Background()

	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	repo.Save(ctx, domain.SessionState{ID: "a"})

	now = now.Add(59 * time.Second)
	if _, err := repo.Load(ctx, "a"); err != nil {
		t.Fatalf("expected live session, got %v", err)
	}

	now = now.Add(2 * time.Second)
	if _, err := repo.Load(ctx, "a"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected expired session, got %v", err)
	}
}

func TestSessionRepositoryMemory_SaveRefreshesTTL(t *testing.T) {
	repo := NewSessionRepositoryMemory(time.Minute)
	ctx := context.Background()

	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	repo.Save(ctx, domain.SessionState{ID: "a"})

	now = now.Add(50 * time.Second)
	repo.Save(ctx, domain.SessionState{ID: "a"})

	now = now.Add(50 * time.Second)
	if _, err := repo.Load(ctx, "a"); err != nil {
		t.Errorf("expected save to extend the session, got %v", err)
	}
}

func TestSessionRepositoryMemory_SweepAndDelete(t *testing.T) {
	repo := NewSessionRepositoryMemory(time.Minute)
	ctx := context.Background()

	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	repo.Save(ctx, domain.SessionState{ID: "old"})

	now = now.Add(45 * time.Second)
	repo.Save(ctx, domain.SessionState{ID: "new"})

	now = now.Add(30 * time.Second)
	if n := repo.Sweep(); n != 1 {
		t.Errorf("expected 1 swept, got %d", n)
	}

	repo.Delete(ctx, "new")
	if _, err := repo.Load(ctx, "new"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected deleted session gone, got %v", err)
	}
}
