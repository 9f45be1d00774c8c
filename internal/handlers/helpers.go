package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-marketplace/internal/httperr"
	"github.com/BruksfildServices01/petcare-marketplace/internal/middleware"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
)

// paramID parses the :id path parameter, answering 400 when it is not a
// number.
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return id, true
}

// sessionUser is the owner filter for routes behind SessionAuth.
func sessionUser(c *gin.Context) *models.User {
	return &models.User{ID: middleware.UserID(c)}
}
