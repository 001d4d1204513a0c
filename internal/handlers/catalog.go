package handlers

import (
	"net/http"

	"github.com/UgurucanDuman/Autonova/internal/catalog"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct{}

func NewCatalogHandler() (*CatalogHandler, error) {
	return &CatalogHandler{}, nil
}

func (h *CatalogHandler) Brands(w http.ResponseWriter, r *http.Request) {
	RespondSuccessJSON(w, r, http.StatusOK, "Car brands", catalog.Brands())
}

// Models returns the model list for one brand; unknown brands yield an
// empty list, not an error.
func (h *CatalogHandler) Models(w http.ResponseWriter, r *http.Request) {
	brand := chi.URLParam(r, "brand")
	RespondSuccessJSON(w, r, http.StatusOK, "Car models", catalog.ModelsFor(brand))
}

func (h *CatalogHandler) Options(w http.ResponseWriter, r *http.Request) {
	RespondSuccessJSON(w, r, http.StatusOK, "Listing form options", map[string]any{
		"colors":       catalog.Colors(),
		"engine_sizes": catalog.EngineSizes(),
		"powers":       catalog.EnginePowers(),
		"body_types":   catalog.BodyTypes(),
		"currencies":   catalog.Currencies(),
		"conditions":   catalog.Conditions(),
		"door_counts":  catalog.DoorCounts(),
		"features":     catalog.Features(),
	})
}
