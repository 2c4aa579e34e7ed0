package models

// PaymentStatus is the closed set of payment states. A payment is pending
// until a verified callback moves it to one of the terminal states.
type PaymentStatus string

const (
	StatusPending      PaymentStatus = "pending"
	StatusSucceeded    PaymentStatus = "succeeded"
	StatusFailed       PaymentStatus = "failed"
	StatusCanceled     PaymentStatus = "canceled"
	StatusUnrecognized PaymentStatus = "unrecognized"
)

// ParseStatus maps a callback status string onto the closed status set.
// The gateway vocabulary is open, so anything outside the terminal values
// parses to StatusUnrecognized instead of failing.
func ParseStatus(status string) PaymentStatus {
	switch status {
	case "succeeded":
		return StatusSucceeded
	case "failed":
		return StatusFailed
	case "canceled":
		return StatusCanceled
	}

	return StatusUnrecognized
}

// Terminal reports whether the status ends the payment lifecycle.
func (s PaymentStatus) Terminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusCanceled:
		return true
	}

	return false
}
