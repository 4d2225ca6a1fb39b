package service

import (
	"errors"
	"fmt"
	"sort"
)

var ErrInvalidTerm = errors.New("loan term not offered")

// TermSelector keeps exactly one loan term active out of a fixed set.
type TermSelector struct {
	terms  []int
	active int
}

func NewTermSelector(terms []int, active int) (*TermSelector, error) {
	seen := make(map[int]bool, len(terms))
	cleaned := make([]int, 0, len(terms))
	for _, t := range terms {
		if t <= 0 {
			return nil, fmt.Errorf("term %d: %w", t, ErrInvalidTerm)
		}
		if !seen[t] {
			seen[t] = true
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		return nil, errors.New("no loan terms configured")
	}
	sort.Ints(cleaned)

	s := &TermSelector{terms: cleaned}
	if err := s.Select(active); err != nil {
		// fall back to the longest term, the site default
		s.active = cleaned[len(cleaned)-1]
	}
	return s, nil
}

// Select makes years the only active term.
func (s *TermSelector) Select(years int) error {
	for _, t := range s.terms {
		if t == years {
			s.active = years
			return nil
		}
	}
	return fmt.Errorf("%d years: %w", years, ErrInvalidTerm)
}

func (s *TermSelector) Active() int {
	return s.active
}

func (s *TermSelector) IsActive(years int) bool {
	return s.active == years
}

func (s *TermSelector) Terms() []int {
	out := make([]int, len(s.terms))
	copy(out, s.terms)
	return out
}
