package sse

import "github.com/osse101/wheelbet/internal/domain"

// SpinCompletedPayload is the browser view of a settled spin
type SpinCompletedPayload struct {
	domain.SpinCompletedPayload
	BalanceText string `json:"balance_text"`
	DeltaText   string `json:"delta_text"`
}

// SessionEndedPayload is the browser view of a finished session
type SessionEndedPayload struct {
	domain.SessionEndedPayload
	ReasonText  string `json:"reason_text"`
	BalanceText string `json:"balance_text"`
}

// ConnectedPayload is sent once when a client attaches
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters"`
}
