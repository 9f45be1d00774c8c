package session

import (
	"context"

	"github.com/BruksfildServices01/petcare-marketplace/internal/notify"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
)

type Logout struct {
	holder   *state.Holder
	notifier notify.Notifier
}

func NewLogout(holder *state.Holder, notifier notify.Notifier) *Logout {
	return &Logout{
		holder:   holder,
		notifier: notifier,
	}
}

// Execute clears the current user and removes the stored session.
func (uc *Logout) Execute(ctx context.Context) error {
	_, err := uc.holder.Apply(ctx, func(cur state.Snapshot) (state.Snapshot, state.Dirty, error) {
		next := cur
		next.User = nil
		return next, state.DirtyUser, nil
	})
	if err != nil {
		return err
	}

	uc.notifier.Notify(ctx, notify.Info(
		"Sesión cerrada",
		"Has cerrado sesión correctamente.",
	))
	return nil
}
