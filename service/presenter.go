package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"market-master/domain"
)

var ErrMissingTarget = errors.New("required display target missing")

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// requiredTargets must all exist before Present writes anything.
var requiredTargets = []domain.Target{
	domain.TargetTotalMonthly,
	domain.TargetPrincipalInterest,
	domain.TargetTax,
	domain.TargetInsurance,
	domain.TargetLoanAmount,
	domain.TargetTotalInterest,
	domain.TargetTotalCost,
}

// DisplaySurface is wherever calculator output ends up: a page, a terminal
// or a test double.
type DisplaySurface interface {
	Has(target domain.Target) bool
	SetText(target domain.Target, text string)
	SetVisible(target domain.Target, visible bool)
	SetWidth(target domain.Target, percent float64)
}

// FormatCurrency renders v as "$X,XXX" rounded to the whole dollar.
// Non-finite values render as "$0".
func FormatCurrency(v float64) string {
	n := decimal.NewFromFloat(finite(v)).Round(0).IntPart()
	if n < 0 {
		return currencyPrinter.Sprintf("-$%d", -n)
	}
	return currencyPrinter.Sprintf("$%d", n)
}

// FormatNumber groups digits with commas, as the stat counters do.
func FormatNumber(n int) string {
	return currencyPrinter.Sprintf("%d", n)
}

func percentWidth(v float64) float64 {
	return decimal.NewFromFloat(finite(v)).Round(2).InexactFloat64()
}

// Render maps a result onto display strings.
func Render(r domain.MortgageResult) domain.View {
	v := domain.View{
		TotalMonthly:      FormatCurrency(r.TotalMonthlyPayment),
		PrincipalInterest: FormatCurrency(r.MonthlyPrincipalInterest),
		Tax:               FormatCurrency(r.MonthlyTax),
		Insurance:         FormatCurrency(r.MonthlyInsurance),
		HOA:               FormatCurrency(r.MonthlyHOA),
		HOAVisible:        r.MonthlyHOA > 0,
		LoanAmount:        FormatCurrency(r.LoanAmount),
		TotalInterest:     FormatCurrency(r.TotalInterest),
		TotalCost:         FormatCurrency(r.TotalPaid),
	}

	if r.Breakdown != nil {
		v.BarWidths = &domain.Breakdown{
			PrincipalInterest: percentWidth(r.Breakdown.PrincipalInterest),
			Tax:               percentWidth(r.Breakdown.Tax),
			Insurance:         percentWidth(r.Breakdown.Insurance),
			HOA:               percentWidth(r.Breakdown.HOA),
		}
	}
	return v
}

// Present writes the view to surface. A missing required target aborts
// before anything is written; optional targets are skipped when absent.
func Present(surface DisplaySurface, v domain.View) error {
	for _, t := range requiredTargets {
		if !surface.Has(t) {
			return fmt.Errorf("%s: %w", t, ErrMissingTarget)
		}
	}

	surface.SetText(domain.TargetTotalMonthly, v.TotalMonthly)
	surface.SetText(domain.TargetPrincipalInterest, v.PrincipalInterest)
	surface.SetText(domain.TargetTax, v.Tax)
	surface.SetText(domain.TargetInsurance, v.Insurance)
	surface.SetText(domain.TargetLoanAmount, v.LoanAmount)
	surface.SetText(domain.TargetTotalInterest, v.TotalInterest)
	surface.SetText(domain.TargetTotalCost, v.TotalCost)

	if surface.Has(domain.TargetHOA) {
		surface.SetText(domain.TargetHOA, v.HOA)
	}
	if surface.Has(domain.TargetHOALine) {
		surface.SetVisible(domain.TargetHOALine, v.HOAVisible)
	}

	if v.BarWidths == nil {
		return nil
	}
	bars := []struct {
		target domain.Target
		width  float64
	}{
		{domain.TargetBarPrincipalInterest, v.BarWidths.PrincipalInterest},
		{domain.TargetBarTax, v.BarWidths.Tax},
		{domain.TargetBarInsurance, v.BarWidths.Insurance},
		{domain.TargetBarHOA, v.BarWidths.HOA},
	}
	for _, b := range bars {
		if surface.Has(b.target) {
			surface.SetWidth(b.target, b.width)
		}
	}
	return nil
}

// MemorySurface is a DisplaySurface backed by maps. Only the targets passed
// to NewMemorySurface exist.
type MemorySurface struct {
	Text    map[domain.Target]string
	Visible map[domain.Target]bool
	Width   map[domain.Target]float64
	targets map[domain.Target]bool
	Writes  int
}

func NewMemorySurface(targets ...domain.Target) *MemorySurface {
	s := &MemorySurface{
		Text:    make(map[domain.Target]string),
		Visible: make(map[domain.Target]bool),
		Width:   make(map[domain.Target]float64),
		targets: make(map[domain.Target]bool, len(targets)),
	}
	for _, t := range targets {
		s.targets[t] = true
	}
	return s
}

// AllTargets is every target the presenter knows about.
func AllTargets() []domain.Target {
	return append(append([]domain.Target{}, requiredTargets...),
		domain.TargetHOA,
		domain.TargetHOALine,
		domain.TargetBarPrincipalInterest,
		domain.TargetBarTax,
		domain.TargetBarInsurance,
		domain.TargetBarHOA,
	)
}

func (s *MemorySurface) Has(t domain.Target) bool { return s.targets[t] }

func (s *MemorySurface) SetText(t domain.Target, text string) {
	s.Text[t] = text
	s.Writes++
}

func (s *MemorySurface) SetVisible(t domain.Target, visible bool) {
	s.Visible[t] = visible
	s.Writes++
}

func (s *MemorySurface) SetWidth(t domain.Target, percent float64) {
	s.Width[t] = percent
	s.Writes++
}
