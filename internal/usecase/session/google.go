package session

import (
	"context"

	"github.com/BruksfildServices01/petcare-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/petcare-marketplace/internal/idgen"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
	"github.com/BruksfildServices01/petcare-marketplace/internal/notify"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
)

type GoogleLogin struct {
	holder   *state.Holder
	ids      *idgen.Sequence
	provider account.Provider
	notifier notify.Notifier
}

func NewGoogleLogin(
	holder *state.Holder,
	ids *idgen.Sequence,
	provider account.Provider,
	notifier notify.Notifier,
) *GoogleLogin {
	return &GoogleLogin{
		holder:   holder,
		ids:      ids,
		provider: provider,
		notifier: notifier,
	}
}

func (uc *GoogleLogin) Execute(ctx context.Context) (models.User, error) {
	identity, err := uc.provider.Google(ctx)
	if err != nil {
		uc.notifier.Notify(ctx, notify.Failure(
			"Conexión con Supabase pendiente",
			"La integración con Supabase no está completa. Por favor, sigue los pasos para conectar tu cuenta.",
		))
		return models.User{}, err
	}

	return signIn(ctx, uc.holder, uc.ids, uc.notifier, identity)
}
