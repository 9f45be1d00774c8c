package session

import (
	"context"

	"github.com/BruksfildServices01/petcare-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/petcare-marketplace/internal/idgen"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
	"github.com/BruksfildServices01/petcare-marketplace/internal/notify"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
)

type Login struct {
	holder   *state.Holder
	ids      *idgen.Sequence
	provider account.Provider
	notifier notify.Notifier
}

func NewLogin(
	holder *state.Holder,
	ids *idgen.Sequence,
	provider account.Provider,
	notifier notify.Notifier,
) *Login {
	return &Login{
		holder:   holder,
		ids:      ids,
		provider: provider,
		notifier: notifier,
	}
}

func (uc *Login) Execute(ctx context.Context, c account.Credentials) (models.User, error) {
	identity, err := uc.provider.Login(ctx, c)
	if err != nil {
		uc.notifier.Notify(ctx, notify.Failure(
			"Error de Validación",
			"Por favor, ingresa tu correo y contraseña.",
		))
		return models.User{}, err
	}

	return signIn(ctx, uc.holder, uc.ids, uc.notifier, identity)
}
