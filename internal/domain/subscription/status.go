package subscription

// ===============================
// Subscription Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// IsTerminal reports whether no further transitions are possible.
func IsTerminal(s Status) bool {
	return s == StatusExpired || s == StatusCancelled
}
