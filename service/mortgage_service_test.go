package service

import (
	"math"
	"testing"

	"market-master/domain"
)

const tolerance = 0.005

func assertClose(t *testing.T, expected, actual float64, description string) {
	t.Helper()
	if math.Abs(expected-actual) > tolerance {
		t.Errorf("%s: expected %.4f, got %.4f", description, expected, actual)
	}
}

func TestComputeMonthlyPI_StandardFormula(t *testing.T) {
	tests := []struct {
		loan     float64
		rate     float64
		term     int
		expected float64
	}{
		{320000, 6.5, 30, 2022.62},
		{200000, 4, 25, 1055.67},
		{100000, 5, 15, 790.79},
	}

	for _, tt := range tests {
		got := ComputeMonthlyPI(tt.loan, tt.rate, tt.term)
		if math.Abs(got-tt.expected) > 0.01 {
			t.Errorf("%.0f @ %.2f%% for %dy: expected %.2f, got %.4f", tt.loan, tt.rate, tt.term, tt.expected, got)
		}
	}
}

func TestComputeMonthlyPI_ZeroRate(t *testing.T) {
	for _, term := range []int{10, 15, 20, 30} {
		got := ComputeMonthlyPI(360000, 0, term)
		assertClose(t, 360000/float64(term*12), got, "zero rate straight line")
	}
}

func TestComputeMonthlyPI_ZeroLoan(t *testing.T) {
	for _, rate := range []float64{0, 3.25, 6.5, 18} {
		for _, term := range []int{15, 30} {
			if got := ComputeMonthlyPI(0, rate, term); got != 0 {
				t.Errorf("expected 0 for zero loan, got %f", got)
			}
		}
	}
	if got := ComputeMonthlyPI(-5000, 5, 30); got != 0 {
		t.Errorf("expected 0 for negative loan, got %f", got)
	}
}

func TestComputeMonthlyPI_NonNegativeAndFinite(t *testing.T) {
	for _, loan := range []float64{0, 1, 1500, 250000, 5_000_000} {
		for _, rate := range []float64{0, 0.01, 2.5, 7, 25, 99, 5000, 20000, 50000, 1e300} {
			for _, term := range []int{1, 15, 20, 30, 40} {
				got := ComputeMonthlyPI(loan, rate, term)
				if got < 0 || math.IsNaN(got) || math.IsInf(got, 0) {
					t.Fatalf("loan=%f rate=%f term=%d: got %f", loan, rate, term, got)
				}
			}
		}
	}
}

func TestComputeMonthlyPI_OverflowingGrowth(t *testing.T) {
	// (1+r)^n overflows; the payment tends to loan * monthly rate
	got := ComputeMonthlyPI(300000, 50000, 30)
	assertClose(t, 300000*50000.0/100/12, got, "interest-only limit")
}

func TestCompute_ExtremeInputsStayFinite(t *testing.T) {
	tests := []domain.MortgageInputs{
		{HomePrice: 1e308, DownPaymentPercent: 20, InterestRate: 6.5, LoanTermYears: 30},
		{HomePrice: 400000, InterestRate: 1e308, PropertyTax: 1e308, LoanTermYears: 30},
		{HomePrice: math.Inf(1), HOAFees: math.NaN(), LoanTermYears: 30},
	}
	for i, in := range tests {
		r := Compute(SyncFromPercent(in))
		for _, v := range []float64{r.LoanAmount, r.MonthlyPrincipalInterest, r.TotalMonthlyPayment, r.TotalPaid, r.TotalInterest} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("case %d: non-finite output %v", i, v)
			}
		}
		Render(r)
	}
}

func TestBound(t *testing.T) {
	in := Bound(domain.MortgageInputs{
		HomePrice: 1e308, DownPaymentPercent: 150, InterestRate: 50000,
		PropertyTax: -1e308, HOAFees: math.NaN(),
	})
	if in.HomePrice != MaxHomePrice || in.InterestRate != MaxInterestRate || in.PropertyTax != -MaxAnnualCost {
		t.Errorf("expected clamped values, got %+v", in)
	}
	if in.DownPaymentPercent != 150 {
		t.Errorf("in-limit anomalies are kept, got %f", in.DownPaymentPercent)
	}
	if in.HOAFees != 0 {
		t.Errorf("expected NaN coerced to 0, got %f", in.HOAFees)
	}
}

func TestComputeMonthlyPI_Idempotent(t *testing.T) {
	first := ComputeMonthlyPI(275000, 5.875, 20)
	for i := 0; i < 10; i++ {
		if got := ComputeMonthlyPI(275000, 5.875, 20); got != first {
			t.Fatalf("expected identical result %f, got %f", first, got)
		}
	}
}

func TestComputeMonthlyPI_NonPositiveTerm(t *testing.T) {
	if got := ComputeMonthlyPI(100000, 5, 0); got != 0 {
		t.Errorf("expected 0 for zero term, got %f", got)
	}
}

func TestCompute_TotalInterestMatchesAmortization(t *testing.T) {
	in := domain.MortgageInputs{HomePrice: 500000, DownPayment: 100000, InterestRate: 7.125, LoanTermYears: 30}
	r := Compute(in)

	n := float64(30 * 12)
	assertClose(t, r.MonthlyPrincipalInterest*n-r.LoanAmount, r.TotalInterest, "total interest")
	assertClose(t, r.MonthlyPrincipalInterest*n, r.TotalPaid, "total paid")
	if r.NumPayments != 360 {
		t.Errorf("expected 360 payments, got %d", r.NumPayments)
	}
}

func TestCompute_BreakdownSumsTo100(t *testing.T) {
	inputs := []domain.MortgageInputs{
		{HomePrice: 400000, DownPayment: 80000, InterestRate: 6.5, PropertyTax: 4800, HomeInsurance: 1200, LoanTermYears: 30},
		{HomePrice: 250000, DownPayment: 0, InterestRate: 0, PropertyTax: 0, HomeInsurance: 900, HOAFees: 350, LoanTermYears: 15},
		{HomePrice: 0, PropertyTax: 1200, LoanTermYears: 30},
	}

	for i, in := range inputs {
		r := Compute(in)
		if r.TotalMonthlyPayment <= 0 {
			t.Fatalf("case %d: expected positive total", i)
		}
		if r.Breakdown == nil {
			t.Fatalf("case %d: expected breakdown", i)
		}
		b := r.Breakdown
		assertClose(t, 100, b.PrincipalInterest+b.Tax+b.Insurance+b.HOA, "breakdown sum")
	}
}

func TestCompute_ZeroTotalLeavesBreakdownUnset(t *testing.T) {
	r := Compute(domain.MortgageInputs{LoanTermYears: 30})
	if r.TotalMonthlyPayment != 0 {
		t.Fatalf("expected zero total, got %f", r.TotalMonthlyPayment)
	}
	if r.Breakdown != nil {
		t.Errorf("expected nil breakdown, got %+v", *r.Breakdown)
	}
}

func TestCompute_ScenarioA(t *testing.T) {
	in := SyncFromPercent(domain.MortgageInputs{
		HomePrice:          400000,
		DownPaymentPercent: 20,
		InterestRate:       6.5,
		PropertyTax:        4800,
		HomeInsurance:      1200,
		LoanTermYears:      30,
	})
	if in.DownPayment != 80000 {
		t.Fatalf("expected down payment 80000, got %f", in.DownPayment)
	}

	r := Compute(in)
	if math.Round(r.MonthlyPrincipalInterest) != 2023 {
		t.Errorf("expected P&I ~2023, got %f", r.MonthlyPrincipalInterest)
	}
	if math.Round(r.TotalMonthlyPayment) != 2523 {
		t.Errorf("expected total ~2523, got %f", r.TotalMonthlyPayment)
	}

	v := Render(r)
	if v.HOAVisible {
		t.Errorf("expected HOA line hidden")
	}
	if v.TotalMonthly != "$2,523" {
		t.Errorf("expected $2,523, got %s", v.TotalMonthly)
	}
	if v.PrincipalInterest != "$2,023" {
		t.Errorf("expected $2,023, got %s", v.PrincipalInterest)
	}
}

func TestCompute_ScenarioD_ShorterTerm(t *testing.T) {
	in := domain.MortgageInputs{HomePrice: 400000, DownPayment: 80000, InterestRate: 6.5, LoanTermYears: 30}
	long := Compute(in)
	in.LoanTermYears = 15
	short := Compute(in)

	if short.TotalInterest >= long.TotalInterest {
		t.Errorf("expected less interest on 15y: %f vs %f", short.TotalInterest, long.TotalInterest)
	}
	if short.MonthlyPrincipalInterest <= long.MonthlyPrincipalInterest {
		t.Errorf("expected higher P&I on 15y: %f vs %f", short.MonthlyPrincipalInterest, long.MonthlyPrincipalInterest)
	}
}
