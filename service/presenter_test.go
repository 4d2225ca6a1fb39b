package service

import (
	"errors"
	"math"
	"testing"

	"market-master/domain"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "$0"},
		{0.49, "$0"},
		{999.5, "$1,000"},
		{2522.62, "$2,523"},
		{1234567.5, "$1,234,568"},
		{-1500.4, "-$1,500"},
	}

	for _, tt := range tests {
		if got := FormatCurrency(tt.value); got != tt.expected {
			t.Errorf("FormatCurrency(%v): expected %s, got %s", tt.value, tt.expected, got)
		}
	}
}

func TestRender_HOAVisibility(t *testing.T) {
	withHOA := Render(Compute(domain.MortgageInputs{HomePrice: 300000, DownPayment: 60000, InterestRate: 6, HOAFees: 250, LoanTermYears: 30}))
	if !withHOA.HOAVisible || withHOA.HOA != "$250" {
		t.Errorf("expected visible $250 HOA, got %v %s", withHOA.HOAVisible, withHOA.HOA)
	}

	without := Render(Compute(domain.MortgageInputs{HomePrice: 300000, DownPayment: 60000, InterestRate: 6, LoanTermYears: 30}))
	if without.HOAVisible {
		t.Errorf("expected HOA hidden")
	}
	if without.HOA != "$0" {
		t.Errorf("HOA value is still rendered, expected $0, got %s", without.HOA)
	}
}

func TestRender_BarWidths(t *testing.T) {
	v := Render(Compute(domain.MortgageInputs{
		HomePrice: 400000, DownPayment: 80000, InterestRate: 6.5,
		PropertyTax: 4800, HomeInsurance: 1200, HOAFees: 150, LoanTermYears: 30,
	}))
	if v.BarWidths == nil {
		t.Fatal("expected bar widths")
	}
	b := v.BarWidths
	sum := b.PrincipalInterest + b.Tax + b.Insurance + b.HOA
	if math.Abs(sum-100) > 0.05 {
		t.Errorf("expected widths to sum to 100, got %f", sum)
	}

	empty := Render(Compute(domain.MortgageInputs{LoanTermYears: 30}))
	if empty.BarWidths != nil {
		t.Errorf("expected no bar widths for zero total")
	}
}

func TestPresent_WritesAllTargets(t *testing.T) {
	v := Render(Compute(domain.MortgageInputs{
		HomePrice: 400000, DownPayment: 80000, InterestRate: 6.5,
		PropertyTax: 4800, HomeInsurance: 1200, HOAFees: 100, LoanTermYears: 30,
	}))
	s := NewMemorySurface(AllTargets()...)

	if err := Present(s, v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Text[domain.TargetTotalMonthly] != v.TotalMonthly {
		t.Errorf("expected %s, got %s", v.TotalMonthly, s.Text[domain.TargetTotalMonthly])
	}
	if s.Text[domain.TargetHOA] != "$100" {
		t.Errorf("expected HOA text $100, got %s", s.Text[domain.TargetHOA])
	}
	if !s.Visible[domain.TargetHOALine] {
		t.Errorf("expected HOA line visible")
	}
	if s.Width[domain.TargetBarPrincipalInterest] != v.BarWidths.PrincipalInterest {
		t.Errorf("expected bar width to be written")
	}
}

func TestPresent_MissingRequiredTargetWritesNothing(t *testing.T) {
	targets := []domain.Target{}
	for _, target := range AllTargets() {
		if target != domain.TargetTotalCost {
			targets = append(targets, target)
		}
	}
	s := NewMemorySurface(targets...)

	err := Present(s, Render(Compute(domain.MortgageInputs{HomePrice: 100000, LoanTermYears: 30})))
	if !errors.Is(err, ErrMissingTarget) {
		t.Fatalf("expected ErrMissingTarget, got %v", err)
	}
	if s.Writes != 0 {
		t.Errorf("expected no writes, got %d", s.Writes)
	}
}

func TestPresent_OptionalTargetsSkipped(t *testing.T) {
	required := []domain.Target{
		domain.TargetTotalMonthly, domain.TargetPrincipalInterest, domain.TargetTax,
		domain.TargetInsurance, domain.TargetLoanAmount, domain.TargetTotalInterest, domain.TargetTotalCost,
	}
	s := NewMemorySurface(required...)

	v := Render(Compute(domain.MortgageInputs{HomePrice: 100000, HOAFees: 50, LoanTermYears: 30}))
	if err := Present(s, v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.Text[domain.TargetHOA]; ok {
		t.Errorf("HOA target does not exist and must not be written")
	}
	if len(s.Width) != 0 {
		t.Errorf("expected no bar writes, got %v", s.Width)
	}
	if s.Writes != len(required) {
		t.Errorf("expected %d writes, got %d", len(required), s.Writes)
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1250); got != "1,250" {
		t.Errorf("expected 1,250, got %s", got)
	}
	if got := FormatNumber(7); got != "7" {
		t.Errorf("expected 7, got %s", got)
	}
}
