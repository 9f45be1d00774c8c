package session

import (
	"context"

	"github.com/BruksfildServices01/petcare-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/petcare-marketplace/internal/idgen"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
	"github.com/BruksfildServices01/petcare-marketplace/internal/notify"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
)

// signIn makes identity the current user under a fresh id. Any previous
// user is replaced.
func signIn(
	ctx context.Context,
	holder *state.Holder,
	ids *idgen.Sequence,
	notifier notify.Notifier,
	identity account.Identity,
) (models.User, error) {

	var user models.User
	_, err := holder.Apply(ctx, func(cur state.Snapshot) (state.Snapshot, state.Dirty, error) {
		user = models.User{
			ID:    ids.Next(),
			Email: identity.Email,
			Name:  identity.Name,
		}

		next := cur
		next.User = &user
		return next, state.DirtyUser, nil
	})
	if err != nil {
		return models.User{}, err
	}

	notifier.Notify(ctx, notify.Info(
		"¡Bienvenido, "+user.Name+"!",
		"Has iniciado sesión correctamente.",
	))

	return user, nil
}
