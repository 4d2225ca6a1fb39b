package service

import (
	"math"

	"market-master/domain"
)

// ComputeMonthlyPI returns the fixed monthly principal and interest payment
// of a fully amortizing loan. It never fails: non-positive loans and terms
// pay nothing, and a zero rate is repaid straight-line.
func ComputeMonthlyPI(loanAmount, annualRatePercent float64, termYears int) float64 {
	n := termYears * PaymentsPerYear
	if !(loanAmount > 0) || n <= 0 {
		return 0
	}

	monthlyRate := annualRatePercent / 100 / PaymentsPerYear
	if monthlyRate <= 0 {
		return finite(loanAmount / float64(n))
	}

	growth := math.Pow(1+monthlyRate, float64(n))
	if math.IsInf(growth, 1) {
		// growth/(growth-1) tends to 1
		return finite(loanAmount * monthlyRate)
	}
	return finite(loanAmount * monthlyRate * growth / (growth - 1))
}

// finite maps NaN and ±Inf to 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clamp(v, limit float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-limit, math.Min(limit, v))
}

// Bound clamps every control value to its limit. The down payment percent
// keeps its out-of-range values up to MaxDownPaymentPercent so Anomalies
// still reports them.
func Bound(in domain.MortgageInputs) domain.MortgageInputs {
	in.HomePrice = clamp(in.HomePrice, MaxHomePrice)
	in.DownPayment = clamp(in.DownPayment, MaxHomePrice*MaxDownPaymentPercent/100)
	in.DownPaymentPercent = clamp(in.DownPaymentPercent, MaxDownPaymentPercent)
	in.InterestRate = clamp(in.InterestRate, MaxInterestRate)
	in.PropertyTax = clamp(in.PropertyTax, MaxAnnualCost)
	in.HomeInsurance = clamp(in.HomeInsurance, MaxAnnualCost)
	in.HOAFees = clamp(in.HOAFees, MaxHOAFees)
	return in
}

// Compute derives every output from the inputs. It is recomputed in full on
// each call. Outputs are always finite; callers that take raw values should
// Bound them first so the numbers stay meaningful.
func Compute(in domain.MortgageInputs) domain.MortgageResult {
	loanAmount := in.HomePrice - in.DownPayment
	numPayments := in.LoanTermYears * PaymentsPerYear
	if numPayments < 0 {
		numPayments = 0
	}

	pi := ComputeMonthlyPI(loanAmount, in.InterestRate, in.LoanTermYears)
	tax := finite(in.PropertyTax / PaymentsPerYear)
	insurance := finite(in.HomeInsurance / PaymentsPerYear)
	hoa := finite(in.HOAFees)
	total := finite(pi + tax + insurance + hoa)
	totalPaid := finite(pi * float64(numPayments))

	result := domain.MortgageResult{
		LoanAmount:               finite(loanAmount),
		MonthlyPrincipalInterest: pi,
		MonthlyTax:               tax,
		MonthlyInsurance:         insurance,
		MonthlyHOA:               hoa,
		TotalMonthlyPayment:      total,
		TotalPaid:                totalPaid,
		TotalInterest:            finite(totalPaid - loanAmount),
		NumPayments:              numPayments,
	}

	if total > 0 {
		result.Breakdown = &domain.Breakdown{
			PrincipalInterest: pi / total * 100,
			Tax:               tax / total * 100,
			Insurance:         insurance / total * 100,
			HOA:               hoa / total * 100,
		}
	}

	return result
}
