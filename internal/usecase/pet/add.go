package pet

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/petcare-marketplace/internal/domain/pet"
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

type AddPetInput struct {
	OwnerID int64
	Pet     domain.Input
}

// ======================================================
// USE CASE
// ======================================================

type AddPet struct {
	holder   *state.Holder
	ids      *idgen.Sequence
	notifier notify.Notifier
	now      func() time.Time
}

func NewAddPet(
	holder *state.Holder,
	ids *idgen.Sequence,
	notifier notify.Notifier,
) *AddPet {
	return &AddPet{
		holder:   holder,
		ids:      ids,
		notifier: notifier,
		now:      timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AddPet) Execute(ctx context.Context, in AddPetInput) (models.Pet, error) {

	// --------------------------------------------------
	// Owner
	// --------------------------------------------------
	if in.OwnerID == 0 {
		uc.loginRequired(ctx)
		return models.Pet{}, httperr.ErrBusiness(httperr.CodeLoginRequired)
	}

	// --------------------------------------------------
	// Form
	// --------------------------------------------------
	data := in.Pet.Normalize()
	if err := domain.Validate(data); err != nil {
		uc.notifier.Notify(ctx, notify.FromError("Campos incompletos", err))
		return models.Pet{}, err
	}

	// --------------------------------------------------
	// Append + persist
	// --------------------------------------------------
	var created models.Pet
	_, err := uc.holder.Apply(ctx, func(cur state.Snapshot) (state.Snapshot, state.Dirty, error) {
		if cur.User == nil || cur.User.ID != in.OwnerID {
			return cur, 0, httperr.ErrBusiness(httperr.CodeLoginRequired)
		}

		created = domain.New(data, in.OwnerID, uc.ids.Next(), uc.now())

		next := cur
		next.Pets = append(append(make([]models.Pet, 0, len(cur.Pets)+1), cur.Pets...), created)
		return next, state.DirtyPets, nil
	})
	if err != nil {
		if httperr.BusinessCode(err) == httperr.CodeLoginRequired {
			uc.loginRequired(ctx)
		}
		return models.Pet{}, err
	}

	uc.notifier.Notify(ctx, notify.Info(
		"¡Mascota agregada!",
		created.Name+" ha sido agregada exitosamente.",
	))

	return created, nil
}

func (uc *AddPet) loginRequired(ctx context.Context) {
	uc.notifier.Notify(ctx, notify.Failure(
		"Error",
		"Debes iniciar sesión para agregar una mascota.",
	))
}
