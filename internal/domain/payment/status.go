package payment

import "github.com/fitpulsehq/gym-manager/internal/httperr"

// ===============================
// Payment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	// Refunded is reachable only through an explicit administrative action,
	// never through the lifecycle rules below.
	StatusRefunded Status = "refunded"
)

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Payment Methods
// ===============================

type Method string

const (
	MethodCash   Method = "cash"
	MethodCard   Method = "card"
	MethodOnline Method = "online"
	MethodEsewa  Method = "esewa"
)

func ValidMethod(m Method) bool {
	switch m {
	case MethodCash, MethodCard, MethodOnline, MethodEsewa:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanComplete allows pending -> completed only.
func CanComplete(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanFail allows pending -> failed only.
func CanFail(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
