package service

import (
	"math"

	"market-master/domain"
)

// SyncSource names which of the two down payment views was edited last.
type SyncSource string

const (
	SyncFromPercentSource SyncSource = "percent"
	SyncFromAmountSource  SyncSource = "amount"
)

// SyncFromPercent re-derives the down payment amount from the percent.
// A derived amount never goes below zero.
func SyncFromPercent(in domain.MortgageInputs) domain.MortgageInputs {
	in.DownPayment = math.Max(0, in.DownPaymentPercent/100*in.HomePrice)
	return in
}

// SyncFromAmount re-derives the down payment percent from the amount.
func SyncFromAmount(in domain.MortgageInputs) domain.MortgageInputs {
	if in.HomePrice > 0 {
		in.DownPaymentPercent = in.DownPayment / in.HomePrice * 100
	} else {
		in.DownPaymentPercent = 0
	}
	return in
}

// Resolve applies the derivation matching source. Anything other than
// "amount" treats the percent as authoritative.
func Resolve(in domain.MortgageInputs, source SyncSource) domain.MortgageInputs {
	if source == SyncFromAmountSource {
		return SyncFromAmount(in)
	}
	return SyncFromPercent(in)
}
