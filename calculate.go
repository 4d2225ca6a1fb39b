package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"market-master/domain"
	"market-master/report"
	"market-master/service"
)

func newCalculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute a monthly mortgage payment",
		Long: `Compute a monthly mortgage payment from the same inputs the site's
calculator takes. Values accept display text such as "$400,000" or "6.5%".
Pass --down to set the down payment as an amount; otherwise --down-percent
is used.`,
		RunE: runCalculate,
	}

	f := cmd.Flags()
	f.String("price", "", "home price")
	f.String("down", "", "down payment amount")
	f.String("down-percent", "", "down payment percent")
	f.String("rate", "", "annual interest rate, percent")
	f.Int("term", 0, "loan term in years")
	f.String("tax", "", "property tax per year")
	f.String("insurance", "", "home insurance per year")
	f.String("hoa", "", "HOA fees per month")
	f.String("pdf", "", "also write a PDF estimate to this file")
	return cmd
}

func runCalculate(cmd *cobra.Command, args []string) error {
	defaults := cfg.Calculator.Defaults()
	flags := cmd.Flags()

	read := func(name string, fallback float64) float64 {
		if !flags.Changed(name) {
			return fallback
		}
		raw, _ := flags.GetString(name)
		return service.ParseAmount(raw)
	}

	in := domain.MortgageInputs{
		HomePrice:          read("price", defaults.HomePrice),
		DownPayment:        read("down", 0),
		DownPaymentPercent: read("down-percent", defaults.DownPaymentPercent),
		InterestRate:       read("rate", defaults.InterestRate),
		PropertyTax:        read("tax", defaults.PropertyTax),
		HomeInsurance:      read("insurance", defaults.HomeInsurance),
		HOAFees:            read("hoa", defaults.HOAFees),
		LoanTermYears:      defaults.LoanTermYears,
	}
	if flags.Changed("term") {
		in.LoanTermYears, _ = flags.GetInt("term")
	}

	// an explicit amount wins over the percent
	source := service.SyncFromPercentSource
	if flags.Changed("down") {
		source = service.SyncFromAmountSource
	}
	in = service.Resolve(service.Bound(in), source)

	calc, err := service.NewCalculator(in, cfg.Calculator.LoanTerms)
	if err != nil {
		return err
	}

	snap := calc.Snapshot()
	if err := printView(cmd.OutOrStdout(), snap); err != nil {
		return err
	}

	if path, _ := flags.GetString("pdf"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := report.WriteEstimate(f, snap.Inputs, snap.View, time.Now()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nEstimate written to %s\n", path)
	}
	return nil
}

var targetLabels = map[domain.Target]string{
	domain.TargetTotalMonthly:      "Total monthly payment",
	domain.TargetPrincipalInterest: "Principal & interest",
	domain.TargetTax:               "Property tax",
	domain.TargetInsurance:         "Home insurance",
	domain.TargetHOA:               "HOA fees",
	domain.TargetLoanAmount:        "Loan amount",
	domain.TargetTotalInterest:     "Total interest",
	domain.TargetTotalCost:         "Total cost",
}

// printView presents the snapshot onto an in-memory surface and prints it.
func printView(w io.Writer, snap domain.CalculatorSnapshot) error {
	surface := service.NewMemorySurface(service.AllTargets()...)
	if err := service.Present(surface, snap.View); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Home price\t%s\n", service.FormatCurrency(snap.Inputs.HomePrice))
	fmt.Fprintf(tw, "Down payment\t%s (%.1f%%)\n", service.FormatCurrency(snap.Inputs.DownPayment), snap.Inputs.DownPaymentPercent)
	fmt.Fprintf(tw, "Loan term\t%d years\n", snap.Inputs.LoanTermYears)
	fmt.Fprintln(tw, "\t")

	for _, t := range []domain.Target{
		domain.TargetPrincipalInterest,
		domain.TargetTax,
		domain.TargetInsurance,
		domain.TargetHOA,
		domain.TargetTotalMonthly,
		domain.TargetLoanAmount,
		domain.TargetTotalInterest,
		domain.TargetTotalCost,
	} {
		if t == domain.TargetHOA && !surface.Visible[domain.TargetHOALine] {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", targetLabels[t], surface.Text[t])
	}
	for _, warning := range snap.Warnings {
		fmt.Fprintf(tw, "warning\t%s\n", warning)
	}
	return tw.Flush()
}
