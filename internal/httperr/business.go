package httperr

import "errors"

// Business error codes surfaced to callers.
const (
	CodeLoginRequired          = "login_required"
	CodeMissingFields          = "missing_fields"
	CodePasswordMismatch       = "password_mismatch"
	CodeInvalidCredentials     = "invalid_credentials"
	CodeIntegrationUnavailable = "integration_unavailable"
	CodeInvalidDuration        = "invalid_duration"
	CodeInvalidDateOrTime      = "invalid_date_or_time"
	CodeInvalidStatus          = "invalid_status"
	CodeInvalidTransition      = "invalid_transition"
	CodeProviderNotFound       = "provider_not_found"
	CodePetNotFound            = "pet_not_found"
	CodeServiceNotOffered      = "service_not_offered"
	CodeImageInvalid           = "image_invalid"
	CodeImageUploadUnavailable = "image_upload_unavailable"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode returns the code of a business error, or "" for anything else.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
