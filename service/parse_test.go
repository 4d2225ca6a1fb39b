package service

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
	}{
		{"$400,000", 400000},
		{"6.5%", 6.5},
		{"1,234.56", 1234.56},
		{"", 0},
		{"abc", 0},
		{"$", 0},
		{".", 0},
		{".5", 0.5},
		{"-5", -5},
		{"-", 0},
		{"1-2", 1},
		{"1.2.3", 1.2},
		{"  30 years ", 30},
	}

	for _, tt := range tests {
		if got := ParseAmount(tt.raw); got != tt.expected {
			t.Errorf("ParseAmount(%q): expected %v, got %v", tt.raw, tt.expected, got)
		}
	}
}
