package derive

import (
	"github.com/BruksfildServices01/petcare-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/petcare-marketplace/internal/dto"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
)

const (
	UnknownPetLabel      = "Mascota desconocida"
	UnknownProviderLabel = "Profesional desconocido"
)

var statusLabels = map[booking.Status]string{
	booking.StatusPending:   "Pendiente",
	booking.StatusConfirmed: "Confirmada",
	booking.StatusCancelled: "Cancelada",
	booking.StatusCompleted: "Completada",
}

// StatusLabel returns the display label of a booking status. Unknown values
// are shown as-is.
func StatusLabel(status string) string {
	if l, ok := statusLabels[booking.Status(status)]; ok {
		return l
	}
	return status
}

// BookingViews joins each booking with its pet and provider names. Missing
// references get a fallback label instead of failing.
func BookingViews(
	bookings []models.Booking,
	pets []models.Pet,
	providers []models.Provider,
) []dto.BookingListDTO {

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		petName := UnknownPetLabel
		if p, ok := LookupPet(pets, b.PetID.Int64()); ok {
			petName = p.Name
		}

		providerName := UnknownProviderLabel
		avatar := ""
		if p, ok := LookupProvider(providers, b.WalkerID.Int64()); ok {
			providerName = p.Name
			avatar = p.Avatar
		}

		out = append(out, dto.BookingListDTO{
			ID:             b.ID,
			PetID:          b.PetID.Int64(),
			PetName:        petName,
			ProviderID:     b.WalkerID.Int64(),
			ProviderName:   providerName,
			ProviderAvatar: avatar,
			Date:           b.Date,
			Time:           b.Time,
			Service:        b.Service,
			Duration:       b.Duration.Int64(),
			Notes:          b.Notes,
			TotalPrice:     b.TotalPrice,
			Status:         b.Status,
			StatusLabel:    StatusLabel(b.Status),
			CreatedAt:      b.CreatedAt,
		})
	}
	return out
}
