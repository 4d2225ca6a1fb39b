package service

import "time"

const (
	PaymentsPerYear       = 12
	DefaultLoanTermYears  = 30
	FontSizePreferenceKey = "fontSizePreference"

	// Control limits. Values past these are clamped, which keeps every
	// result finite.
	MaxHomePrice          = 1_000_000_000.0
	MaxDownPaymentPercent = 1000.0
	MaxInterestRate       = 1000.0 // annual percent
	MaxAnnualCost         = 100_000_000.0
	MaxHOAFees            = 10_000_000.0
	MaxLoanTermYears      = 50

	// Page behavior, mirrored from the site script.
	NavScrollThreshold   = 50.0
	ParallaxRate         = 0.3
	ParallaxFadeFraction = 0.8
	DefaultNavHeight     = 80.0
	RevealStaggerGroup   = 4
	RevealStaggerStep    = 100 * time.Millisecond

	CounterDuration = 2 * time.Second
	CounterSteps    = 60

	DefaultCarouselInterval = 5 * time.Second

	MinPhoneDigits = 10
)

var DefaultLoanTerms = []int{15, 20, 30}
