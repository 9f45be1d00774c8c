package session

import (
	"context"

	"github.com/BruksfildServices01/petcare-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/petcare-marketplace/internal/httperr"
	"github.com/BruksfildServices01/petcare-marketplace/internal/idgen"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
	"github.com/BruksfildServices01/petcare-marketplace/internal/notify"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
)

type Register struct {
	holder   *state.Holder
	ids      *idgen.Sequence
	provider account.Provider
	notifier notify.Notifier
}

func NewRegister(
	holder *state.Holder,
	ids *idgen.Sequence,
	provider account.Provider,
	notifier notify.Notifier,
) *Register {
	return &Register{
		holder:   holder,
		ids:      ids,
		provider: provider,
		notifier: notifier,
	}
}

func (uc *Register) Execute(ctx context.Context, r account.Registration) (models.User, error) {
	identity, err := uc.provider.Register(ctx, r)
	if err != nil {
		uc.notifier.Notify(ctx, registerFailure(err))
		return models.User{}, err
	}

	return signIn(ctx, uc.holder, uc.ids, uc.notifier, identity)
}

func registerFailure(err error) notify.Notification {
	switch httperr.BusinessCode(err) {
	case httperr.CodeMissingFields:
		return notify.Failure("Campos incompletos", "Por favor completa todos los campos.")
	case httperr.CodePasswordMismatch:
		return notify.Failure("Error de contraseña", "Las contraseñas no coinciden.")
	case httperr.CodeInvalidCredentials:
		return notify.Failure("Error de Validación", "Por favor, ingresa tu correo y contraseña.")
	}
	return notify.FromError("Error", err)
}
