package booking

import (
	"testing"

	"github.com/BruksfildServices01/petcare-marketplace/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled", "completed"} {
		if _, err := ParseStatus(s); err != nil {
			t.Errorf("%s: unexpected error %v", s, err)
		}
	}

	_, err := ParseStatus("archived")
	if !httperr.IsBusiness(err, httperr.CodeInvalidStatus) {
		t.Errorf("expected invalid_status, got %v", err)
	}
}

func TestCanTransition(t *testing.T) {
	allowed := [][2]Status{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
	}
	for _, tr := range allowed {
		if err := CanTransition(tr[0], tr[1]); err != nil {
			t.Errorf("%s -> %s: unexpected error %v", tr[0], tr[1], err)
		}
	}

	rejected := [][2]Status{
		{StatusPending, StatusCompleted},
		{StatusPending, StatusPending},
		{StatusConfirmed, StatusCancelled},
		{StatusCancelled, StatusConfirmed},
		{StatusCompleted, StatusCancelled},
	}
	for _, tr := range rejected {
		if err := CanTransition(tr[0], tr[1]); !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
			t.Errorf("%s -> %s: expected invalid_transition, got %v", tr[0], tr[1], err)
		}
	}
}
