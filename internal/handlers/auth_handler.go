package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/petcare-marketplace/internal/config"
	"github.com/BruksfildServices01/petcare-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/petcare-marketplace/internal/httperr"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
	ucSession "github.com/BruksfildServices01/petcare-marketplace/internal/usecase/session"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	config   *config.Config
	login    *ucSession.Login
	register *ucSession.Register
	google   *ucSession.GoogleLogin
	logout   *ucSession.Logout
}

func NewAuthHandler(
	cfg *config.Config,
	login *ucSession.Login,
	register *ucSession.Register,
	google *ucSession.GoogleLogin,
	logout *ucSession.Logout,
) *AuthHandler {
	return &AuthHandler{
		config:   cfg,
		login:    login,
		register: register,
		google:   google,
		logout:   logout,
	}
}

// --------- Requests ---------

// Field presence is checked by the use cases so that every failure gets
// its notification.
type RegisterRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeatPassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	user, err := h.login.Execute(c.Request.Context(), account.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.respondWithSession(c, http.StatusOK, user)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	user, err := h.register.Execute(c.Request.Context(), account.Registration{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		RepeatPassword: req.RepeatPassword,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.respondWithSession(c, http.StatusCreated, user)
}

func (h *AuthHandler) Google(c *gin.Context) {
	user, err := h.google.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.respondWithSession(c, http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context()); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) respondWithSession(c *gin.Context, status int, user models.User) {
	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Error interno.")
		return
	}

	c.JSON(status, gin.H{
		"user":  user,
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(user.ID, 10),
		"exp": time.Now().Add(tokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
