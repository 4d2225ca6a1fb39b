package domain

import "time"

type CalculatorEvent struct {
	Trigger string `json:"trigger"`
	Value   string `json:"value"`
}

// CalculatorSnapshot is what every calculator endpoint answers with.
type CalculatorSnapshot struct {
	SessionID string         `json:"session_id,omitempty"`
	Inputs    MortgageInputs `json:"inputs"`
	Terms     []int          `json:"terms"`
	Result    MortgageResult `json:"result"`
	View      View           `json:"view"`
	Warnings  []string       `json:"warnings,omitempty"`
}

type SessionState struct {
	ID        string         `json:"id"`
	Inputs    MortgageInputs `json:"inputs"`
	UpdatedAt time.Time      `json:"updated_at"`
}
