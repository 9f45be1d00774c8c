package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/petcare-marketplace/internal/derive"
	domain "github.com/BruksfildServices01/petcare-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/petcare-marketplace/internal/httperr"
	"github.com/BruksfildServices01/petcare-marketplace/internal/idgen"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
	"github.com/BruksfildServices01/petcare-marketplace/internal/notify"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
	"github.com/BruksfildServices01/petcare-marketplace/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	// UserID is the authenticated requester. It must match the user
	// currently signed in.
	UserID  int64
	Booking domain.CreateInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	holder   *state.Holder
	ids      *idgen.Sequence
	notifier notify.Notifier
	tz       string
	now      func() time.Time
}

func NewCreateBooking(
	holder *state.Holder,
	ids *idgen.Sequence,
	notifier notify.Notifier,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		holder:   holder,
		ids:      ids,
		notifier: notifier,
		tz:       tz,
		now:      timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books for the requester. When nobody is signed in, or the
// requester is not the signed-in user, it fails with login_required and
// leaves the state untouched.
func (uc *CreateBooking) Execute(ctx context.Context, req CreateBookingInput) (models.Booking, error) {
	in := req.Booking.Normalize()

	var created models.Booking
	_, err := uc.holder.Apply(ctx, func(cur state.Snapshot) (state.Snapshot, state.Dirty, error) {

		// --------------------------------------------------
		// 1️⃣ Session
		// --------------------------------------------------
		if cur.User == nil || req.UserID == 0 || cur.User.ID != req.UserID {
			return cur, 0, httperr.ErrBusiness(httperr.CodeLoginRequired)
		}

		// --------------------------------------------------
		// 2️⃣ Form
		// --------------------------------------------------
		if err := domain.Validate(in, uc.tz); err != nil {
			return cur, 0, err
		}

		// --------------------------------------------------
		// 3️⃣ References
		// --------------------------------------------------
		provider, ok := derive.LookupProvider(cur.Providers(), in.WalkerID)
		if !ok {
			return cur, 0, httperr.ErrBusiness(httperr.CodeProviderNotFound)
		}

		if _, ok := derive.LookupPet(derive.OwnedPets(cur.Pets, cur.User), in.PetID); !ok {
			return cur, 0, httperr.ErrBusiness(httperr.CodePetNotFound)
		}

		if !provider.Offers(in.Service) {
			return cur, 0, httperr.ErrBusiness(httperr.CodeServiceNotOffered)
		}

		// --------------------------------------------------
		// 4️⃣ Append
		// --------------------------------------------------
		created = domain.New(in, provider, cur.User.ID, uc.ids.Next(), uc.now())

		next := cur
		next.Bookings = append(append(make([]models.Booking, 0, len(cur.Bookings)+1), cur.Bookings...), created)
		return next, state.DirtyBookings, nil
	})

	if err != nil {
		uc.notifier.Notify(ctx, failure(err))
		return models.Booking{}, err
	}

	uc.notifier.Notify(ctx, notify.Info(
		"¡Reserva creada!",
		"Tu solicitud ha sido enviada al cuidador.",
	))

	return created, nil
}

func failure(err error) notify.Notification {
	switch httperr.BusinessCode(err) {
	case httperr.CodeLoginRequired:
		return notify.Failure("¡Inicia sesión!", "Debes iniciar sesión para crear una reserva.")
	case httperr.CodeMissingFields:
		return notify.FromError("Campos incompletos", err)
	}
	return notify.FromError("Error", err)
}
