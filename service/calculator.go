package service

import (
	"errors"
	"fmt"
	"sort"

	"market-master/domain"
)

var ErrUnknownTrigger = errors.New("unknown calculator trigger")

// Trigger names the page control that fired.
type Trigger string

const (
	TriggerHomePrice          Trigger = "home-price"
	TriggerHomePriceSlider    Trigger = "home-price-slider"
	TriggerDownPayment        Trigger = "down-payment"
	TriggerDownPaymentPercent Trigger = "down-payment-percent"
	TriggerDownPaymentSlider  Trigger = "down-payment-slider"
	TriggerInterestRate       Trigger = "interest-rate"
	TriggerInterestRateSlider Trigger = "interest-rate-slider"
	TriggerPropertyTax        Trigger = "property-tax"
	TriggerHomeInsurance      Trigger = "home-insurance"
	TriggerHOAFees            Trigger = "hoa-fees"
	TriggerLoanTerm           Trigger = "loan-term"
)

type binding struct {
	field func(in *domain.MortgageInputs) *float64
	sync  SyncSource // empty when the control does not touch the down payment
}

var (
	homePriceField    = func(in *domain.MortgageInputs) *float64 { return &in.HomePrice }
	downPaymentField  = func(in *domain.MortgageInputs) *float64 { return &in.DownPayment }
	downPercentField  = func(in *domain.MortgageInputs) *float64 { return &in.DownPaymentPercent }
	interestRateField = func(in *domain.MortgageInputs) *float64 { return &in.InterestRate }
)

// bindings is the dispatch table from control to field and sync direction.
// The loan term buttons are handled by the term selector instead.
var bindings = map[Trigger]binding{
	TriggerHomePrice:          {field: homePriceField, sync: SyncFromPercentSource},
	TriggerHomePriceSlider:    {field: homePriceField, sync: SyncFromPercentSource},
	TriggerDownPayment:        {field: downPaymentField, sync: SyncFromAmountSource},
	TriggerDownPaymentPercent: {field: downPercentField, sync: SyncFromPercentSource},
	TriggerDownPaymentSlider:  {field: downPercentField, sync: SyncFromPercentSource},
	TriggerInterestRate:       {field: interestRateField},
	TriggerInterestRateSlider: {field: interestRateField},
	TriggerPropertyTax:        {field: func(in *domain.MortgageInputs) *float64 { return &in.PropertyTax }},
	TriggerHomeInsurance:      {field: func(in *domain.MortgageInputs) *float64 { return &in.HomeInsurance }},
	TriggerHOAFees:            {field: func(in *domain.MortgageInputs) *float64 { return &in.HOAFees }},
}

// Triggers lists every control the calculator responds to.
func Triggers() []Trigger {
	out := make([]Trigger, 0, len(bindings)+1)
	for t := range bindings {
		out = append(out, t)
	}
	out = append(out, TriggerLoanTerm)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Calculator is the page-lifetime calculator state. It is not safe for
// concurrent use; callers serialize events.
type Calculator struct {
	inputs domain.MortgageInputs
	terms  *TermSelector
	result domain.MortgageResult
}

// NewCalculator takes inputs that are already consistent (see Resolve) and
// computes the initial result. A zero loan term picks the longest offered
// term; any other term must be offered.
func NewCalculator(in domain.MortgageInputs, terms []int) (*Calculator, error) {
	selector, err := NewTermSelector(terms, in.LoanTermYears)
	if err != nil {
		return nil, err
	}
	if in.LoanTermYears != 0 && !selector.IsActive(in.LoanTermYears) {
		return nil, fmt.Errorf("%d years: %w", in.LoanTermYears, ErrInvalidTerm)
	}
	in.LoanTermYears = selector.Active()

	c := &Calculator{inputs: Bound(in), terms: selector}
	c.recompute()
	return c, nil
}

// Apply handles one input event: the raw control text is parsed, the
// dependent down payment field is re-derived in the direction the control
// dictates and every output is recomputed.
func (c *Calculator) Apply(trigger Trigger, raw string) (domain.MortgageResult, error) {
	if trigger == TriggerLoanTerm {
		if err := c.terms.Select(int(ParseAmount(raw))); err != nil {
			return c.result, err
		}
		c.inputs.LoanTermYears = c.terms.Active()
		c.recompute()
		return c.result, nil
	}

	b, ok := bindings[trigger]
	if !ok {
		return c.result, fmt.Errorf("%q: %w", trigger, ErrUnknownTrigger)
	}

	*b.field(&c.inputs) = ParseAmount(raw)
	c.inputs = Bound(c.inputs)

	switch b.sync {
	case SyncFromPercentSource:
		c.inputs = SyncFromPercent(c.inputs)
	case SyncFromAmountSource:
		c.inputs = SyncFromAmount(c.inputs)
	}

	c.recompute()
	return c.result, nil
}

// SelectTerm is Apply for the loan term buttons.
func (c *Calculator) SelectTerm(years int) (domain.MortgageResult, error) {
	return c.Apply(TriggerLoanTerm, fmt.Sprint(years))
}

func (c *Calculator) recompute() {
	c.result = Compute(c.inputs)
}

func (c *Calculator) Inputs() domain.MortgageInputs {
	return c.inputs
}

func (c *Calculator) Result() domain.MortgageResult {
	return c.result
}

func (c *Calculator) Terms() *TermSelector {
	return c.terms
}

func (c *Calculator) Snapshot() domain.CalculatorSnapshot {
	return domain.CalculatorSnapshot{
		Inputs:   c.inputs,
		Terms:    c.terms.Terms(),
		Result:   c.result,
		View:     Render(c.result),
		Warnings: c.inputs.Anomalies(),
	}
}
