package pet

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/petcare-marketplace/internal/httperr"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
	"github.com/BruksfildServices01/petcare-marketplace/internal/validators"
)

type Input struct {
	Name         string
	Type         string
	Breed        string
	Age          string
	Weight       string
	SpecialNeeds string
	ImageURL     string
}

func (in Input) Normalize() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Type = strings.TrimSpace(in.Type)
	in.Breed = strings.TrimSpace(in.Breed)
	in.Age = strings.TrimSpace(in.Age)
	in.Weight = strings.TrimSpace(in.Weight)
	in.SpecialNeeds = strings.TrimSpace(in.SpecialNeeds)
	return in
}

// Validate requires the fields the add-pet form marks as mandatory.
func Validate(in Input) error {
	if validators.Blank(in.Name, in.Breed, in.Age, in.Weight) {
		return httperr.ErrBusiness(httperr.CodeMissingFields)
	}
	return nil
}

func New(in Input, ownerID, id int64, now time.Time) models.Pet {
	return models.Pet{
		ID:           id,
		Name:         in.Name,
		Type:         in.Type,
		Breed:        in.Breed,
		Age:          in.Age,
		Weight:       in.Weight,
		SpecialNeeds: in.SpecialNeeds,
		ImageURL:     in.ImageURL,
		UserID:       ownerID,
		CreatedAt:    now,
	}
}

// Without returns pets minus the pet with id. removed is false when no pet
// matched; the input is then returned as-is.
func Without(pets []models.Pet, id int64) (out []models.Pet, removed bool) {
	out = make([]models.Pet, 0, len(pets))
	for _, p := range pets {
		if p.ID == id {
			removed = true
			continue
		}
		out = append(out, p)
	}
	if !removed {
		return pets, false
	}
	return out, true
}
