package pet

import (
	"context"

	domain "github.com/BruksfildServices01/petcare-marketplace/internal/domain/pet"
	"github.com/BruksfildServices01/petcare-marketplace/internal/derive"
	"github.com/BruksfildServices01/petcare-marketplace/internal/notify"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
)

type DeletePetInput struct {
	ID int64
	// OwnerID restricts the removal to the owner's pets. Zero means any pet.
	OwnerID int64
}

type DeletePet struct {
	holder   *state.Holder
	notifier notify.Notifier
}

func NewDeletePet(holder *state.Holder, notifier notify.Notifier) *DeletePet {
	return &DeletePet{
		holder:   holder,
		notifier: notifier,
	}
}

// Execute removes the pet. Unknown ids are a no-op, so deleting twice is
// safe; removed reports whether anything changed.
func (uc *DeletePet) Execute(ctx context.Context, in DeletePetInput) (removed bool, err error) {
	_, err = uc.holder.Apply(ctx, func(cur state.Snapshot) (state.Snapshot, state.Dirty, error) {
		p, ok := derive.LookupPet(cur.Pets, in.ID)
		if !ok || (in.OwnerID != 0 && p.UserID != in.OwnerID) {
			return cur, 0, nil
		}

		next := cur
		next.Pets, removed = domain.Without(cur.Pets, in.ID)
		return next, state.DirtyPets, nil
	})
	if err != nil {
		return false, err
	}

	uc.notifier.Notify(ctx, notify.Info(
		"Mascota eliminada",
		"La mascota ha sido eliminada de tu perfil.",
	))

	return removed, nil
}
