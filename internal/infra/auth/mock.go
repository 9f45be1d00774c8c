package auth

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/petcare-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/petcare-marketplace/internal/httperr"
)

// Mock accepts any well-formed credentials. Nothing is verified or stored
// besides the identity it hands back.
type Mock struct{}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Login(_ context.Context, c account.Credentials) (account.Identity, error) {
	if err := account.ValidateCredentials(c); err != nil {
		return account.Identity{}, err
	}

	email := strings.TrimSpace(c.Email)
	return account.Identity{
		Email: email,
		Name:  account.NameFromEmail(email),
	}, nil
}

// Register checks the form and then signs the user in like Login does.
func (m *Mock) Register(ctx context.Context, r account.Registration) (account.Identity, error) {
	if err := account.ValidateRegistration(r); err != nil {
		return account.Identity{}, err
	}

	return m.Login(ctx, account.Credentials{Email: r.Email, Password: r.Password})
}

// Google has no backing integration yet.
func (m *Mock) Google(_ context.Context) (account.Identity, error) {
	return account.Identity{}, httperr.ErrBusiness(httperr.CodeIntegrationUnavailable)
}

// Compile-time check
var _ account.Provider = (*Mock)(nil)
