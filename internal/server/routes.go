package server

import (
	"encoding/json"
	"net/http"
	"time"

	appmiddleware "github.com/UgurucanDuman/Autonova/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes(mux *chi.Mux) {
	auth := appmiddleware.AuthMiddleware(s.Deps.Services.AuthService)

	mux.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthCheck)

		// public catalog + rates
		r.Get("/catalog/brands", s.Deps.CatalogHandler.Brands)
		r.Get("/catalog/brands/{brand}/models", s.Deps.CatalogHandler.Models)
		r.Get("/catalog/options", s.Deps.CatalogHandler.Options)
		r.Get("/rates", s.Deps.RateHandler.Rates)
		r.Get("/rates/approx", s.Deps.RateHandler.Approx)

		// seller draft wizard
		r.Route("/listings/drafts", func(r chi.Router) {
			r.Use(auth)
			r.Post("/", s.Deps.DraftHandler.OpenDraft)
			r.Route("/{draftId}", func(r chi.Router) {
				r.Get("/", s.Deps.DraftHandler.GetDraft)
				r.Delete("/", s.Deps.DraftHandler.DiscardDraft)
				r.Patch("/fields", s.Deps.DraftHandler.SetField)
				r.Post("/features", s.Deps.DraftHandler.ToggleFeature)
				r.Post("/flags", s.Deps.DraftHandler.SetFlag)
				r.Post("/dropdowns", s.Deps.DraftHandler.ToggleDropdown)
				r.Post("/photos", s.Deps.DraftHandler.UploadPhotos)
				r.Delete("/photos/{index}", s.Deps.DraftHandler.RemovePhoto)
				r.Post("/next", s.Deps.DraftHandler.Next)
				r.Post("/back", s.Deps.DraftHandler.Back)
				r.Post("/submit", s.Deps.DraftHandler.Submit)
			})
		})

		// admin verification review
		r.Route("/admin/verifications", func(r chi.Router) {
			r.Use(auth, appmiddleware.AdminOnly)
			r.Get("/", s.Deps.VerificationHandler.List)
			r.Get("/live", s.Deps.VerificationHandler.Live)
			r.Post("/{userId}/resend", s.Deps.VerificationHandler.Resend)
			r.Post("/{userId}/confirm", s.Deps.VerificationHandler.Confirm)
		})
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"message": "ok",
		"time":    time.Now().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	json.NewEncoder(w).Encode(resp)

}
