package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsEmailWellFormed checks syntax only. Login is a mock, so there is no
// domain lookup.
func IsEmailWellFormed(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	return validate.Var(email, "email") == nil
}

// LocalPart returns the text before the first "@".
func LocalPart(email string) string {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at < 0 {
		return email
	}
	return email[:at]
}

// Blank reports whether any of the values is empty after trimming.
func Blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
