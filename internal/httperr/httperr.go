package httperr

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code          string `json:"error_code"`
	Message       string `json:"message"`
	LoginRequired bool   `json:"login_required,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// LoginRequired answers 401 with the flag clients use to open the login
// prompt.
func LoginRequired(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, HTTPError{
		Code:          CodeLoginRequired,
		Message:       "Debes iniciar sesión para continuar.",
		LoginRequired: true,
	})
}

// FromError maps a use case error to a response. Business errors are the
// caller's fault; anything else is logged and hidden.
func FromError(c *gin.Context, err error) {
	code := BusinessCode(err)
	switch code {
	case "":
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		Internal(c, "internal_error", "Error interno.")
	case CodeLoginRequired:
		LoginRequired(c)
	default:
		BadRequest(c, code, messages[code])
	}
}

var messages = map[string]string{
	CodeMissingFields:          "Por favor completa todos los campos obligatorios.",
	CodePasswordMismatch:       "Las contraseñas no coinciden.",
	CodeInvalidCredentials:     "Correo o contraseña inválidos.",
	CodeIntegrationUnavailable: "La integración no está disponible.",
	CodeInvalidDuration:        "La duración debe ser de al menos una hora.",
	CodeInvalidDateOrTime:      "Fecha u hora inválida.",
	CodeInvalidStatus:          "Estado desconocido.",
	CodeInvalidTransition:      "La reserva no puede cambiar a ese estado.",
	CodeProviderNotFound:       "Profesional no encontrado.",
	CodePetNotFound:            "Mascota no encontrada.",
	CodeServiceNotOffered:      "El profesional no ofrece ese servicio.",
	CodeImageInvalid:           "Imagen inválida.",
	CodeImageUploadUnavailable: "La carga de imágenes no está disponible.",
}

// Message returns the user-facing text of a business code.
func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return "Error interno."
}
