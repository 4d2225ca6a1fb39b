package domain

// Display targets written by the presenter.
type Target string

const (
	TargetTotalMonthly      Target = "total-monthly"
	TargetPrincipalInterest Target = "principal-interest"
	TargetTax               Target = "monthly-tax"
	TargetInsurance         Target = "monthly-insurance"
	TargetHOA               Target = "monthly-hoa"
	TargetHOALine           Target = "hoa-line"
	TargetLoanAmount        Target = "loan-amount"
	TargetTotalInterest     Target = "total-interest"
	TargetTotalCost         Target = "total-cost"

	TargetBarPrincipalInterest Target = "bar-principal-interest"
	TargetBarTax               Target = "bar-tax"
	TargetBarInsurance         Target = "bar-insurance"
	TargetBarHOA               Target = "bar-hoa"
)

type View struct {
	TotalMonthly      string     `json:"total_monthly"`
	PrincipalInterest string     `json:"principal_interest"`
	Tax               string     `json:"tax"`
	Insurance         string     `json:"insurance"`
	HOA               string     `json:"hoa"`
	HOAVisible        bool       `json:"hoa_visible"`
	LoanAmount        string     `json:"loan_amount"`
	TotalInterest     string     `json:"total_interest"`
	TotalCost         string     `json:"total_cost"`
	BarWidths         *Breakdown `json:"bar_widths,omitempty"` // percent widths, nil when unset
}
