package booking

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/petcare-marketplace/internal/httperr"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
	"github.com/BruksfildServices01/petcare-marketplace/internal/timezone"
)

const DefaultDuration = 1

type CreateInput struct {
	PetID    int64
	WalkerID int64
	Date     string
	Time     string
	Service  string
	Duration int64
	Notes    string
}

// Normalize trims text fields and applies the default duration.
func (in CreateInput) Normalize() CreateInput {
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.Service = strings.TrimSpace(in.Service)
	in.Notes = strings.TrimSpace(in.Notes)
	if in.Duration == 0 {
		in.Duration = DefaultDuration
	}
	return in
}

// Validate checks the form fields alone; references are checked by the
// caller against the current state.
func Validate(in CreateInput, tz string) error {
	if in.PetID == 0 || in.WalkerID == 0 || in.Date == "" || in.Time == "" || in.Service == "" {
		return httperr.ErrBusiness(httperr.CodeMissingFields)
	}
	if in.Duration < 1 {
		return httperr.ErrBusiness(httperr.CodeInvalidDuration)
	}
	if _, err := timezone.ParseSlot(in.Date, in.Time, tz); err != nil {
		return httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}
	return nil
}

// TotalPrice is fixed at creation; later price changes do not touch it.
func TotalPrice(p models.Provider, duration int64) float64 {
	return p.Price * float64(duration)
}

func New(
	in CreateInput,
	provider models.Provider,
	userID int64,
	id int64,
	now time.Time,
) models.Booking {
	return models.Booking{
		ID:         id,
		PetID:      models.FlexInt(in.PetID),
		WalkerID:   models.FlexInt(provider.ID),
		Date:       in.Date,
		Time:       in.Time,
		Service:    in.Service,
		Duration:   models.FlexInt(in.Duration),
		Notes:      in.Notes,
		TotalPrice: TotalPrice(provider, in.Duration),
		Status:     string(InitialStatus()),
		CreatedAt:  now,
		UserID:     userID,
	}
}

// WithStatus returns a copy of bookings where the booking with id has the
// given status. found is false when no booking has that id; the returned
// slice is then the input itself. With strict set, the change must be a
// valid transition.
func WithStatus(
	bookings []models.Booking,
	id int64,
	status Status,
	strict bool,
) (out []models.Booking, found bool, err error) {

	idx := -1
	for i, b := range bookings {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return bookings, false, nil
	}

	if strict {
		if err := CanTransition(Status(bookings[idx].Status), status); err != nil {
			return bookings, true, err
		}
	}

	out = make([]models.Booking, len(bookings))
	copy(out, bookings)
	out[idx].Status = string(status)
	return out, true, nil
}
