// Package report renders a printable mortgage estimate.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"market-master/domain"
	"market-master/service"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
	labelWidth   = 110.0
	rowHeight    = 8.0
)

type estimateSheet struct {
	pdf    *fpdf.Fpdf
	inputs domain.MortgageInputs
	view   domain.View
	now    time.Time
}

// WriteEstimate writes a one-page PDF summarizing the inputs and the
// rendered calculator output.
func WriteEstimate(w io.Writer, inputs domain.MortgageInputs, view domain.View, now time.Time) error {
	s := &estimateSheet{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		inputs: inputs,
		view:   view,
		now:    now,
	}
	s.pdf.SetMargins(marginLeft, marginTop, marginRight)
	s.pdf.SetAutoPageBreak(true, marginBottom)
	s.pdf.SetTitle("Mortgage Payment Estimate", false)

	s.pdf.AddPage()
	s.addHeader()
	s.addInputs()
	s.addMonthly()
	s.addTotals()
	s.addFooter()

	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("write estimate pdf: %w", err)
	}
	return nil
}

func (s *estimateSheet) addHeader() {
	s.pdf.SetFont("Arial", "B", 22)
	s.pdf.SetTextColor(0, 51, 102)
	s.pdf.CellFormat(contentWidth, 12, "Mortgage Payment Estimate", "", 1, "C", false, 0, "")

	s.pdf.SetFont("Arial", "I", 10)
	s.pdf.SetTextColor(100, 100, 100)
	s.pdf.CellFormat(contentWidth, 6, "Prepared "+s.now.Format("January 2, 2006"), "", 1, "C", false, 0, "")
	s.pdf.Ln(6)
}

func (s *estimateSheet) section(title string) {
	s.pdf.SetFillColor(245, 247, 250)
	s.pdf.SetDrawColor(200, 200, 200)
	s.pdf.SetFont("Arial", "B", 12)
	s.pdf.SetTextColor(0, 51, 102)
	s.pdf.CellFormat(contentWidth, rowHeight, title, "1", 1, "L", true, 0, "")
	s.pdf.SetFont("Arial", "", 11)
	s.pdf.SetTextColor(50, 50, 50)
}

func (s *estimateSheet) row(label, value string) {
	s.pdf.CellFormat(labelWidth, rowHeight, label, "LB", 0, "L", false, 0, "")
	s.pdf.CellFormat(contentWidth-labelWidth, rowHeight, value, "RB", 1, "R", false, 0, "")
}

type labeledValue struct {
	label, value string
}

// inputRows lists the inputs as printed, money in the site's "$X,XXX" form.
func inputRows(in domain.MortgageInputs) []labeledValue {
	return []labeledValue{
		{"Home price", service.FormatCurrency(in.HomePrice)},
		{"Down payment", fmt.Sprintf("%s (%.1f%%)", service.FormatCurrency(in.DownPayment), in.DownPaymentPercent)},
		{"Interest rate", fmt.Sprintf("%.3f%%", in.InterestRate)},
		{"Loan term", fmt.Sprintf("%d years", in.LoanTermYears)},
		{"Property tax (yearly)", service.FormatCurrency(in.PropertyTax)},
		{"Home insurance (yearly)", service.FormatCurrency(in.HomeInsurance)},
		{"HOA fees (monthly)", service.FormatCurrency(in.HOAFees)},
	}
}

func (s *estimateSheet) addInputs() {
	s.section("Your Inputs")
	for _, r := range inputRows(s.inputs) {
		s.row(r.label, r.value)
	}
	s.pdf.Ln(6)
}

func (s *estimateSheet) addMonthly() {
	v := s.view
	s.section("Monthly Payment")
	s.row("Principal & interest", v.PrincipalInterest)
	s.row("Property tax", v.Tax)
	s.row("Home insurance", v.Insurance)
	if v.HOAVisible {
		s.row("HOA fees", v.HOA)
	}
	s.pdf.SetFont("Arial", "B", 12)
	s.row("Total monthly payment", v.TotalMonthly)

	if v.BarWidths != nil {
		s.addBar(*v.BarWidths)
	}
	s.pdf.Ln(6)
}

// addBar draws the proportional payment bar.
func (s *estimateSheet) addBar(w domain.Breakdown) {
	s.pdf.Ln(4)
	x, y := s.pdf.GetX(), s.pdf.GetY()
	segments := []struct {
		pct     float64
		r, g, b int
	}{
		{w.PrincipalInterest, 0, 51, 102},
		{w.Tax, 196, 149, 106},
		{w.Insurance, 100, 149, 237},
		{w.HOA, 160, 160, 160},
	}
	for _, seg := range segments {
		if seg.pct <= 0 {
			continue
		}
		width := contentWidth * seg.pct / 100
		s.pdf.SetFillColor(seg.r, seg.g, seg.b)
		s.pdf.Rect(x, y, width, 6, "F")
		x += width
	}
	s.pdf.Ln(8)
}

func (s *estimateSheet) addTotals() {
	v := s.view
	s.section("Over the Life of the Loan")
	s.row("Loan amount", v.LoanAmount)
	s.row("Total interest", v.TotalInterest)
	s.row("Total of principal & interest payments", v.TotalCost)
	s.pdf.Ln(6)
}

func (s *estimateSheet) addFooter() {
	s.pdf.SetFont("Arial", "I", 9)
	s.pdf.SetTextColor(120, 120, 120)
	s.pdf.MultiCell(contentWidth, 5,
		"This estimate is for illustration only and is not a loan offer. "+
			"Actual rates, taxes and insurance costs vary.", "", "L", false)
}
