package domain

import "fmt"

type MortgageInputs struct {
	HomePrice          float64 `json:"home_price"`
	DownPayment        float64 `json:"down_payment"`
	DownPaymentPercent float64 `json:"down_payment_percent"`
	InterestRate       float64 `json:"interest_rate"`  // annual nominal, percent
	PropertyTax        float64 `json:"property_tax"`   // annual
	HomeInsurance      float64 `json:"home_insurance"` // annual
	HOAFees            float64 `json:"hoa_fees"`       // already monthly
	LoanTermYears      int     `json:"loan_term_years"`
}

// Anomalies lists input values that the calculator accepts as-is but that a
// form layer should probably reject. Nothing here is clamped.
func (in MortgageInputs) Anomalies() []string {
	var out []string
	if in.DownPaymentPercent < 0 || in.DownPaymentPercent > 100 {
		out = append(out, fmt.Sprintf("down payment percent %.2f is outside 0-100", in.DownPaymentPercent))
	}
	if in.DownPayment > in.HomePrice && in.HomePrice > 0 {
		out = append(out, "down payment exceeds home price")
	}
	if in.InterestRate < 0 {
		out = append(out, "interest rate is negative")
	}
	return out
}

type Breakdown struct {
	PrincipalInterest float64 `json:"principal_interest"`
	Tax               float64 `json:"tax"`
	Insurance         float64 `json:"insurance"`
	HOA               float64 `json:"hoa"`
}

type MortgageResult struct {
	LoanAmount               float64    `json:"loan_amount"`
	MonthlyPrincipalInterest float64    `json:"monthly_principal_interest"`
	MonthlyTax               float64    `json:"monthly_tax"`
	MonthlyInsurance         float64    `json:"monthly_insurance"`
	MonthlyHOA               float64    `json:"monthly_hoa"`
	TotalMonthlyPayment      float64    `json:"total_monthly_payment"`
	TotalPaid                float64    `json:"total_paid"`
	TotalInterest            float64    `json:"total_interest"`
	NumPayments              int        `json:"num_payments"`
	Breakdown                *Breakdown `json:"breakdown,omitempty"` // nil unless TotalMonthlyPayment > 0
}
