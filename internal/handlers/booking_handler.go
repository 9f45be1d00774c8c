package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-marketplace/internal/derive"
	domain "github.com/BruksfildServices01/petcare-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/petcare-marketplace/internal/httperr"
	"github.com/BruksfildServices01/petcare-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/petcare-marketplace/internal/middleware"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
	ucBooking "github.com/BruksfildServices01/petcare-marketplace/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	holder       *state.Holder
	create       *ucBooking.CreateBooking
	updateStatus *ucBooking.UpdateBookingStatus
}

func NewBookingHandler(
	holder *state.Holder,
	create *ucBooking.CreateBooking,
	updateStatus *ucBooking.UpdateBookingStatus,
) *BookingHandler {
	return &BookingHandler{
		holder:       holder,
		create:       create,
		updateStatus: updateStatus,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// CreateBookingRequest accepts ids and duration as numbers or numeric
// strings, the way select boxes submit them.
type CreateBookingRequest struct {
	PetID    models.FlexInt `json:"petId"`
	WalkerID models.FlexInt `json:"walkerId"`
	Date     string         `json:"date"`
	Time     string         `json:"time"`
	Service  string         `json:"service"`
	Duration models.FlexInt `json:"duration"`
	Notes    string         `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	created, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID: middleware.UserID(c),
		Booking: domain.CreateInput{
			PetID:    req.PetID.Int64(),
			WalkerID: req.WalkerID.Int64(),
			Date:     req.Date,
			Time:     req.Time,
			Service:  req.Service,
			Duration: req.Duration.Int64(),
			Notes:    req.Notes,
		},
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// LIST (ME)
// ======================================================

func (h *BookingHandler) MeList(c *gin.Context) {
	snap := h.holder.Current()

	httpresp.List(c, derive.BookingViews(
		derive.OwnedBookings(snap.Bookings, sessionUser(c)),
		snap.Pets,
		snap.Providers(),
	))
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	updated, found, err := h.updateStatus.Execute(c.Request.Context(), ucBooking.UpdateStatusInput{
		ID:     id,
		Status: req.Status,
		UserID: middleware.UserID(c),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if !found {
		httperr.NotFound(c, "booking_not_found", "Reserva no encontrada.")
		return
	}

	httpresp.OK(c, updated)
}
