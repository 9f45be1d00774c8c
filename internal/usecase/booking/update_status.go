package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/petcare-marketplace/internal/derive"
	domain "github.com/BruksfildServices01/petcare-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
	"github.com/BruksfildServices01/petcare-marketplace/internal/notify"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
)

var statusMessages = map[domain.Status]string{
	domain.StatusPending:   "La reserva ha vuelto a quedar pendiente.",
	domain.StatusConfirmed: "La reserva ha sido confirmada.",
	domain.StatusCancelled: "La reserva ha sido cancelada.",
	domain.StatusCompleted: "La reserva ha sido marcada como completada.",
}

type UpdateStatusInput struct {
	ID     int64
	Status string
	// UserID restricts the change to the user's bookings. Zero means any.
	UserID int64
}

type UpdateBookingStatus struct {
	holder   *state.Holder
	notifier notify.Notifier
	strict   bool
}

// NewUpdateBookingStatus builds the use case. With strict unset any known
// status overwrites the current one.
func NewUpdateBookingStatus(
	holder *state.Holder,
	notifier notify.Notifier,
	strict bool,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		holder:   holder,
		notifier: notifier,
		strict:   strict,
	}
}

// Execute replaces the status of one booking. found is false for unknown
// ids, which leave the state untouched.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (updated models.Booking, found bool, err error) {

	status, err := domain.ParseStatus(strings.TrimSpace(in.Status))
	if err != nil {
		uc.notifier.Notify(ctx, notify.FromError("Error", err))
		return models.Booking{}, false, err
	}

	_, err = uc.holder.Apply(ctx, func(cur state.Snapshot) (state.Snapshot, state.Dirty, error) {
		b, ok := derive.LookupBooking(cur.Bookings, in.ID)
		if !ok || (in.UserID != 0 && b.UserID != in.UserID) {
			return cur, 0, nil
		}

		bookings, _, err := domain.WithStatus(cur.Bookings, in.ID, status, uc.strict)
		if err != nil {
			return cur, 0, err
		}

		found = true
		updated, _ = derive.LookupBooking(bookings, in.ID)

		next := cur
		next.Bookings = bookings
		return next, state.DirtyBookings, nil
	})

	if err != nil {
		uc.notifier.Notify(ctx, notify.FromError("Error", err))
		return models.Booking{}, false, err
	}
	if !found {
		return models.Booking{}, false, nil
	}

	uc.notifier.Notify(ctx, notify.Info(
		"Estado actualizado",
		statusMessages[status],
	))

	return updated, true, nil
}
