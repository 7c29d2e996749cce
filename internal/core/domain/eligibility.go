package domain

import "time"

// EligibilityStatus is the outcome of an eligibility check.
type EligibilityStatus string

const (
	StatusEligible    EligibilityStatus = "eligible"
	StatusNotEligible EligibilityStatus = "not_eligible"
	StatusError       EligibilityStatus = "error"
)

// Valid reports whether s is one of the known statuses.
func (s EligibilityStatus) Valid() bool {
	switch s {
	case StatusEligible, StatusNotEligible, StatusError:
		return true
	}
	return false
}

// Message returns the default human-readable text for the status.
func (s EligibilityStatus) Message() string {
	switch s {
	case StatusEligible:
		return MsgEligible
	case StatusNotEligible:
		return MsgNotEligible
	case StatusError:
		return MsgCheckFailed
	default:
		return MsgUnknownStatus
	}
}

// EligibilityResult is the outcome of checking a single address.
type EligibilityResult struct {
	Address   string            `json:"address"`
	Status    EligibilityStatus `json:"status"`
	Message   string            `json:"message,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewErrorResult builds an error-status result captured now.
func NewErrorResult(address, message string) EligibilityResult {
	return EligibilityResult{
		Address:   address,
		Status:    StatusError,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Statistics aggregates a list of results.
type Statistics struct {
	Total              int     `json:"total"`
	Eligible           int     `json:"eligible"`
	NotEligible        int     `json:"not_eligible"`
	Errors             int     `json:"errors"`
	EligiblePercentage float64 `json:"eligible_percentage"`
}

// User-facing messages attached to results.
const (
	MsgEligible       = "Address is eligible for airdrop"
	MsgNotEligible    = "Address is not eligible for airdrop"
	MsgCheckFailed    = "Error checking eligibility"
	MsgUnknownStatus  = "Unknown status"
	MsgInvalidAddress = "Invalid EVM address format"
	MsgNoScore        = "Not eligible"
)
