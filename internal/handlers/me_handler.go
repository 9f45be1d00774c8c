package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-marketplace/internal/httperr"
	"github.com/BruksfildServices01/petcare-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
)

type MeHandler struct {
	holder *state.Holder
}

func NewMeHandler(holder *state.Holder) *MeHandler {
	return &MeHandler{holder: holder}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user := h.holder.Current().User
	if user == nil {
		httperr.LoginRequired(c)
		return
	}

	httpresp.OK(c, gin.H{"user": user})
}
