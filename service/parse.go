package service

import (
	"regexp"
	"strconv"
)

var (
	nonNumericChars = regexp.MustCompile(`[^0-9.\-]`)
	leadingNumber   = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
)

// ParseAmount reads a number out of display text such as "$400,000" or
// "6.5%". Everything but digits, '.' and '-' is dropped and the leading
// numeric prefix is parsed. Unparseable text is 0.
func ParseAmount(raw string) float64 {
	cleaned := nonNumericChars.ReplaceAllString(raw, "")
	match := leadingNumber.FindString(cleaned)
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return v
}
