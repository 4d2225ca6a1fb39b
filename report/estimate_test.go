package report

import (
	"bytes"
	"testing"
	"time"

	"market-master/domain"
)

func TestWriteEstimate(t *testing.T) {
	inputs := domain.MortgageInputs{
		HomePrice: 400000, DownPayment: 80000, DownPaymentPercent: 20,
		InterestRate: 6.5, PropertyTax: 4800, HomeInsurance: 1200, HOAFees: 125, LoanTermYears: 30,
	}
	view := domain.View{
		TotalMonthly: "$2,648", PrincipalInterest: "$2,023", Tax: "$400", Insurance: "$100",
		HOA: "$125", HOAVisible: true, LoanAmount: "$320,000", TotalInterest: "$408,143", TotalCost: "$728,143",
		BarWidths: &domain.Breakdown{PrincipalInterest: 76.38, Tax: 15.11, Insurance: 3.78, HOA: 4.72},
	}

	var buf bytes.Buffer
	if err := WriteEstimate(&buf, inputs, view, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("expected PDF header")
	}
}

func TestWriteEstimate_NoBreakdown(t *testing.T) {
	var buf bytes.Buffer
	err := WriteEstimate(&buf, domain.MortgageInputs{LoanTermYears: 30}, domain.View{TotalMonthly: "$0"}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected output")
	}
}

func TestInputRows_GroupedCurrency(t *testing.T) {
	rows := inputRows(domain.MortgageInputs{
		HomePrice: 400000, DownPayment: 80000, DownPaymentPercent: 20,
		InterestRate: 6.5, PropertyTax: 4800, HomeInsurance: 1200, LoanTermYears: 30,
	})

	expected := map[string]string{
		"Home price":            "$400,000",
		"Down payment":          "$80,000 (20.0%)",
		"Property tax (yearly)": "$4,800",
		"Loan term":             "30 years",
	}
	for _, r := range rows {
		if want, ok := expected[r.label]; ok && r.value != want {
			t.Errorf("%s: expected %s, got %s", r.label, want, r.value)
		}
	}
}
