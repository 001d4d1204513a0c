package handlers

import (
	"net/http"
	"strconv"

	"github.com/UgurucanDuman/Autonova/internal/service"
)

type RateHandler struct {
	svc service.RateServicer
}

func NewRateHandler(svc service.RateServicer) (*RateHandler, error) {
	return &RateHandler{
		svc: svc,
	}, nil
}

// Rates returns the cached TRY-relative rate snapshot.
func (h *RateHandler) Rates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.svc.Rates(r.Context())
	if err != nil {
		RespondErrorJSON(w, r, http.StatusBadGateway, ErrRatesUnavailable.Error(), "exchange rates unavailable", nil)
		return
	}
	RespondSuccessJSON(w, r, http.StatusOK, "Exchange rates", rates)
}

// Approx converts amount+currency to an informational TRY figure.
func (h *RateHandler) Approx(w http.ResponseWriter, r *http.Request) {
	currency := r.URL.Query().Get("currency")
	amount, err := strconv.Atoi(r.URL.Query().Get("amount"))
	if err != nil || currency == "" {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrMissingParam.Error(), "amount and currency query parameters required", nil)
		return
	}

	try, err := h.svc.ApproxTRY(r.Context(), amount, currency)
	if err != nil {
		RespondErrorJSON(w, r, http.StatusBadGateway, ErrRatesUnavailable.Error(), "exchange rates unavailable", nil)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Approximate TRY value", map[string]any{
		"amount":   amount,
		"currency": currency,
		"try":      try,
	})
}
