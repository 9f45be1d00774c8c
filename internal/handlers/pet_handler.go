package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-marketplace/internal/derive"
	domain "github.com/BruksfildServices01/petcare-marketplace/internal/domain/pet"
	"github.com/BruksfildServices01/petcare-marketplace/internal/httperr"
	"github.com/BruksfildServices01/petcare-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/petcare-marketplace/internal/media"
	"github.com/BruksfildServices01/petcare-marketplace/internal/middleware"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
	ucPet "github.com/BruksfildServices01/petcare-marketplace/internal/usecase/pet"
)

// ======================================================
// HANDLER
// ======================================================

type PetHandler struct {
	holder       *state.Holder
	addPet       *ucPet.AddPet
	deletePet    *ucPet.DeletePet
	images       *media.PetImages
	guestVisible bool
}

// NewPetHandler builds the handler. images may be nil, in which case
// uploads are refused.
func NewPetHandler(
	holder *state.Holder,
	addPet *ucPet.AddPet,
	deletePet *ucPet.DeletePet,
	images *media.PetImages,
	guestVisible bool,
) *PetHandler {
	return &PetHandler{
		holder:       holder,
		addPet:       addPet,
		deletePet:    deletePet,
		images:       images,
		guestVisible: guestVisible,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePetRequest struct {
	Name         string `json:"name" form:"name"`
	Type         string `json:"type" form:"type"`
	Breed        string `json:"breed" form:"breed"`
	Age          string `json:"age" form:"age"`
	Weight       string `json:"weight" form:"weight"`
	SpecialNeeds string `json:"specialNeeds" form:"specialNeeds"`
}

func (r CreatePetRequest) input() domain.Input {
	return domain.Input{
		Name:         r.Name,
		Type:         r.Type,
		Breed:        r.Breed,
		Age:          r.Age,
		Weight:       r.Weight,
		SpecialNeeds: r.SpecialNeeds,
	}
}

// ======================================================
// LIST
// ======================================================

// List shows the signed-in user's pets. Guests see every pet unless guest
// visibility is off.
func (h *PetHandler) List(c *gin.Context) {
	snap := h.holder.Current()

	if snap.User == nil && !h.guestVisible {
		httpresp.List(c, []models.Pet{})
		return
	}

	httpresp.List(c, derive.OwnedPets(snap.Pets, snap.User))
}

// MeList filters by the user the session middleware authenticated, not by
// whoever is signed in by the time the snapshot is read.
func (h *PetHandler) MeList(c *gin.Context) {
	snap := h.holder.Current()
	httpresp.List(c, derive.OwnedPets(snap.Pets, sessionUser(c)))
}

// ======================================================
// CREATE
// ======================================================

// Create adds a pet for the authenticated user. Accepts JSON, or multipart
// form data with an optional "image" file.
func (h *PetHandler) Create(c *gin.Context) {
	var req CreatePetRequest
	multipart := strings.HasPrefix(c.ContentType(), "multipart/form-data")

	var err error
	if multipart {
		err = c.ShouldBind(&req)
	} else {
		err = c.ShouldBindJSON(&req)
	}
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	in := ucPet.AddPetInput{
		OwnerID: middleware.UserID(c),
		Pet:     req.input(),
	}

	if multipart && in.OwnerID != 0 && domain.Validate(in.Pet.Normalize()) == nil {
		url, err := h.upload(c)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		in.Pet.ImageURL = url
	}

	created, err := h.addPet.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, created)
}

// upload stores the "image" form file, if any, and returns its URL.
func (h *PetHandler) upload(c *gin.Context) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	if h.images == nil {
		return "", httperr.ErrBusiness(httperr.CodeImageUploadUnavailable)
	}

	f, err := fh.Open()
	if err != nil {
		return "", httperr.ErrBusiness(httperr.CodeImageInvalid)
	}
	defer f.Close()

	return h.images.Save(c.Request.Context(), f)
}

// ======================================================
// DELETE
// ======================================================

func (h *PetHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	removed, err := h.deletePet.Execute(c.Request.Context(), ucPet.DeletePetInput{
		ID:      id,
		OwnerID: middleware.UserID(c),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"removed": removed})
}
