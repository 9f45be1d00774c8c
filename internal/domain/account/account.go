package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/petcare-marketplace/internal/httperr"
	"github.com/BruksfildServices01/petcare-marketplace/internal/validators"
)

type Credentials struct {
	Email    string
	Password string
}

type Registration struct {
	Name           string
	Email          string
	Password       string
	RepeatPassword string
}

// Identity is what a provider vouches for. The caller assigns the user id.
type Identity struct {
	Email string
	Name  string
}

// Provider authenticates users. Implementations decide how; callers only
// see an identity or a business error.
type Provider interface {
	Login(ctx context.Context, c Credentials) (Identity, error)
	Register(ctx context.Context, r Registration) (Identity, error)
	Google(ctx context.Context) (Identity, error)
}

// ValidateCredentials is the shape check every provider starts with.
func ValidateCredentials(c Credentials) error {
	if !validators.IsEmailWellFormed(strings.TrimSpace(c.Email)) || c.Password == "" {
		return httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}
	return nil
}

func ValidateRegistration(r Registration) error {
	if validators.Blank(r.Name, r.Email, r.Password, r.RepeatPassword) {
		return httperr.ErrBusiness(httperr.CodeMissingFields)
	}
	if r.Password != r.RepeatPassword {
		return httperr.ErrBusiness(httperr.CodePasswordMismatch)
	}
	return nil
}

// NameFromEmail is the display name given to a user who only typed an
// email: everything before the first "@".
func NameFromEmail(email string) string {
	return validators.LocalPart(strings.TrimSpace(email))
}
