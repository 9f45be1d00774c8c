package booking

import "github.com/BruksfildServices01/petcare-marketplace/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ===============================
// Validations
// ===============================

func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return st, nil
	}
	return "", httperr.ErrBusiness(httperr.CodeInvalidStatus)
}

// CanTransition applies the strict state machine: only a pending booking
// moves, and only to confirmed or cancelled.
func CanTransition(current, next Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	if next != StatusConfirmed && next != StatusCancelled {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}
