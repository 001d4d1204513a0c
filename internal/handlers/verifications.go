package handlers

import (
	"errors"
	"net/http"

	"github.com/UgurucanDuman/Autonova/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const userParamKey string = "userId"

type VerificationHandler struct {
	svc service.VerificationServicer
	hub *LiveHub
}

func NewVerificationHandler(svc service.VerificationServicer, hub *LiveHub) (*VerificationHandler, error) {
	return &VerificationHandler{
		svc: svc,
		hub: hub,
	}, nil
}

// List returns the pending verification records, newest first,
// optionally filtered by the search query over email and user name.
// A fresh load backs every request; the search itself runs over the
// loaded snapshot.
func (h *VerificationHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.Load(r.Context()); err != nil {
		RespondErrorJSON(w, r, http.StatusBadGateway, ErrVerificationsLoad.Error(), "Email doğrulamaları yüklenemedi", nil)
		return
	}

	records := h.svc.Filter(r.URL.Query().Get("search"))
	RespondSuccessJSON(w, r, http.StatusOK, "Verification records", records)
}

// Resend asks the verification sender to issue a fresh code, forwarding
// the admin's bearer token.
func (h *VerificationHandler) Resend(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, userParamKey))
	if err != nil {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrMissingParam.Error(), "user id must be a valid uuid", nil)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrMissingParam.Error(), "email query parameter required", nil)
		return
	}

	if err := h.svc.Resend(r.Context(), userID, email, BearerToken(r)); err != nil {
		if errors.Is(err, service.ErrRecordBusy) {
			RespondErrorJSON(w, r, http.StatusConflict, ErrRecordBusy.Error(), "an action is already running for this record", nil)
			return
		}
		RespondErrorJSON(w, r, http.StatusBadGateway, ErrResendFailed.Error(), "Doğrulama e-postası gönderilemedi", nil)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Doğrulama e-postası yeniden gönderildi", struct{}{})
}

// Confirm manually verifies the user's email and removes the pending
// record. A failure after the confirm step leaves the record visible on
// the next reload.
func (h *VerificationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, userParamKey))
	if err != nil {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrMissingParam.Error(), "user id must be a valid uuid", nil)
		return
	}

	if err := h.svc.ManualVerify(r.Context(), userID); err != nil {
		if errors.Is(err, service.ErrRecordBusy) {
			RespondErrorJSON(w, r, http.StatusConflict, ErrRecordBusy.Error(), "an action is already running for this record", nil)
			return
		}
		RespondErrorJSON(w, r, http.StatusBadGateway, ErrVerifyFailed.Error(), "E-posta doğrulanamadı", nil)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "E-posta manuel olarak doğrulandı", struct{}{})
}

// Live upgrades to a websocket feed of verification-set refreshes.
func (h *VerificationHandler) Live(w http.ResponseWriter, r *http.Request) {
	h.hub.Serve(w, r)
}
