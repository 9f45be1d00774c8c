package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-marketplace/internal/derive"
	"github.com/BruksfildServices01/petcare-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
	"github.com/BruksfildServices01/petcare-marketplace/internal/state"
)

// ProviderHandler serves the walker and pet-sitter catalogs.
type ProviderHandler struct {
	holder *state.Holder
}

func NewProviderHandler(holder *state.Holder) *ProviderHandler {
	return &ProviderHandler{holder: holder}
}

func (h *ProviderHandler) ListWalkers(c *gin.Context) {
	h.list(c, h.holder.Current().Walkers)
}

func (h *ProviderHandler) WalkerLocations(c *gin.Context) {
	httpresp.List(c, derive.DistinctLocations(h.holder.Current().Walkers))
}

func (h *ProviderHandler) ListPetSitters(c *gin.Context) {
	h.list(c, h.holder.Current().PetSitters)
}

func (h *ProviderHandler) PetSitterLocations(c *gin.Context) {
	httpresp.List(c, derive.DistinctLocations(h.holder.Current().PetSitters))
}

func (h *ProviderHandler) Favorites(c *gin.Context) {
	httpresp.List(c, h.holder.Current().Favorites)
}

func (h *ProviderHandler) list(c *gin.Context, providers []models.Provider) {
	httpresp.List(c, derive.FilterProviders(
		providers,
		c.Query("query"),
		c.Query("location"),
	))
}
