package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/UgurucanDuman/Autonova/internal/draft"
	"github.com/UgurucanDuman/Autonova/internal/model"
	"github.com/UgurucanDuman/Autonova/internal/service"
	"github.com/UgurucanDuman/Autonova/pkg/validator"
	"github.com/go-chi/chi/v5"
	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const draftParamKey string = "draftId"

type DraftHandler struct {
	svc service.ListingServicer
}

func NewDraftHandler(svc service.ListingServicer) (*DraftHandler, error) {
	return &DraftHandler{
		svc: svc,
	}, nil
}

func (h *DraftHandler) session(w http.ResponseWriter, r *http.Request) *draft.Session {
	claims := GetUserClaims(r.Context())
	if claims == nil {
		RespondErrorJSON(w, r, http.StatusUnauthorized, ErrAuthFailed.Error(), "user claims not found in context", nil)
		return nil
	}

	id, err := uuid.Parse(chi.URLParam(r, draftParamKey))
	if err != nil {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrMissingParam.Error(), "draft id must be a valid uuid", nil)
		return nil
	}

	session, err := h.svc.GetDraft(id, claims.UserID)
	if err != nil {
		RespondErrorJSON(w, r, http.StatusNotFound, ErrDraftNotFound.Error(), "draft session not found", nil)
		return nil
	}
	return session
}

// OpenDraft starts a new listing draft session for the seller, after
// the listing-limit check.
func (h *DraftHandler) OpenDraft(w http.ResponseWriter, r *http.Request) {
	claims := GetUserClaims(r.Context())
	if claims == nil {
		RespondErrorJSON(w, r, http.StatusUnauthorized, ErrAuthFailed.Error(), "user claims not found in context", nil)
		return
	}

	session, err := h.svc.OpenDraft(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrListingLimit) {
			RespondErrorJSON(w, r, http.StatusForbidden, ErrListingLimit.Error(), "listing allowance used up, buy extra slots to continue", nil)
			return
		}
		RespondErrorJSON(w, r, http.StatusInternalServerError, ErrInternalServer.Error(), "could not open draft", nil)
		return
	}

	RespondSuccessJSON(w, r, http.StatusCreated, "Draft session opened", session.Snapshot())
}

func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	if session == nil {
		return
	}
	RespondSuccessJSON(w, r, http.StatusOK, "Draft state", session.Snapshot())
}

func (h *DraftHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	if session == nil {
		return
	}
	h.svc.DiscardDraft(session.ID)
	RespondSuccessJSON(w, r, http.StatusOK, "Draft discarded", struct{}{})
}

// SetField applies a single field edit: numeric fields are reformatted,
// a brand edit refreshes the model list, and the field's validation
// error is cleared.
func (h *DraftHandler) SetField(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	if session == nil {
		return
	}

	var req model.SetFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrInvalidJson.Error(), "invalid json format", nil)
		return
	}
	if err := validator.GetValidator().Struct(req); err != nil {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrInvalidRequest.Error(), "Input validation failed", validationDetails(err))
		return
	}

	if err := session.SetField(req.Name, req.Value); err != nil {
		RespondErrorJSON(w, r, http.StatusUnprocessableEntity, ErrDraftField.Error(), err.Error(), []model.ErrorDetails{
			{Field: req.Name, Issue: err.Error()},
		})
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Field updated", session.Snapshot())
}

func (h *DraftHandler) ToggleFeature(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	if session == nil {
		return
	}

	var req model.ToggleFeatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrInvalidJson.Error(), "invalid json format", nil)
		return
	}
	if err := validator.GetValidator().Struct(req); err != nil {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrInvalidRequest.Error(), "Input validation failed", validationDetails(err))
		return
	}

	if err := session.ToggleFeature(req.Feature); err != nil {
		RespondErrorJSON(w, r, http.StatusUnprocessableEntity, ErrDraftField.Error(), "unknown feature", nil)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Feature toggled", session.Snapshot())
}

func (h *DraftHandler) SetFlag(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	if session == nil {
		return
	}

	var req model.SetFlagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrInvalidJson.Error(), "invalid json format", nil)
		return
	}
	if err := validator.GetValidator().Struct(req); err != nil {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrInvalidRequest.Error(), "Input validation failed", validationDetails(err))
		return
	}

	if err := session.SetFlag(req.Name, req.Value); err != nil {
		RespondErrorJSON(w, r, http.StatusUnprocessableEntity, ErrDraftField.Error(), "unknown flag", nil)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Flag updated", session.Snapshot())
}

// ToggleDropdown flips the transient open state of the currency or
// color selector; opening one closes the other.
func (h *DraftHandler) ToggleDropdown(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	if session == nil {
		return
	}

	var req model.ToggleDropdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrInvalidJson.Error(), "invalid json format", nil)
		return
	}
	if err := validator.GetValidator().Struct(req); err != nil {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrInvalidRequest.Error(), "Input validation failed", validationDetails(err))
		return
	}

	if err := session.ToggleDropdown(req.Name); err != nil {
		RespondErrorJSON(w, r, http.StatusUnprocessableEntity, ErrDraftField.Error(), "unknown dropdown", nil)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Dropdown toggled", session.Snapshot())
}

// UploadPhotos accepts multipart files, validates them (count, size,
// minimum dimensions) and attaches the survivors to the draft in order.
func (h *DraftHandler) UploadPhotos(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	if session == nil {
		return
	}

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrInvalidForm.Error(), "expected multipart form data", nil)
		return
	}

	files := r.MultipartForm.File["photos"]
	if len(files) == 0 {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrMissingFiles.Error(), "no photos in form field 'photos'", nil)
		return
	}

	incoming := make([]model.Photo, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			RespondErrorJSON(w, r, http.StatusBadRequest, ErrFileRead.Error(), fmt.Sprintf("could not open %s", fh.Filename), nil)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			RespondErrorJSON(w, r, http.StatusBadRequest, ErrFileRead.Error(), fmt.Sprintf("could not read %s", fh.Filename), nil)
			return
		}
		incoming = append(incoming, model.Photo{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	accepted, rejected := service.ValidatePhotos(session.Snapshot().PhotoCount, incoming)
	if len(accepted) > 0 {
		if err := session.AddPhotos(accepted); err != nil {
			RespondErrorJSON(w, r, http.StatusUnprocessableEntity, ErrUploadFailed.Error(), err.Error(), nil)
			return
		}
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Photos processed", map[string]any{
		"accepted": len(accepted),
		"rejected": rejected,
		"state":    session.Snapshot(),
	})
}

func (h *DraftHandler) RemovePhoto(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	if session == nil {
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		RespondErrorJSON(w, r, http.StatusBadRequest, ErrMissingParam.Error(), "photo index must be an integer", nil)
		return
	}

	if err := session.RemovePhoto(index); err != nil {
		RespondErrorJSON(w, r, http.StatusNotFound, ErrMissingParam.Error(), "no photo at that index", nil)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Photo removed", session.Snapshot())
}

// Next advances the wizard. Leaving the photos step without a photo is
// refused and the position stays put.
func (h *DraftHandler) Next(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	if session == nil {
		return
	}

	if err := session.Next(); err != nil {
		if errors.Is(err, draft.ErrNoPhotos) {
			RespondErrorJSON(w, r, http.StatusUnprocessableEntity, ErrPhotosRequired.Error(), "En az bir araç fotoğrafı yüklemelisiniz", nil)
			return
		}
		RespondErrorJSON(w, r, http.StatusUnprocessableEntity, ErrDraftStep.Error(), err.Error(), nil)
		return
	}

	RespondSuccessJSON(w, r, http.StatusOK, "Step advanced", session.Snapshot())
}

func (h *DraftHandler) Back(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	if session == nil {
		return
	}

	session.Back()
	RespondSuccessJSON(w, r, http.StatusOK, "Step retreated", session.Snapshot())
}

// Submit runs the final pipeline. Validation failures route the wizard
// back to the offending step and annotate the fields; the draft stays
// intact for retry either way.
func (h *DraftHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session := h.session(w, r)
	if session == nil {
		return
	}
	claims := GetUserClaims(r.Context())

	listingID, err := h.svc.Submit(r.Context(), session.ID, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDraftInvalid):
			snap := session.Snapshot()
			details := make([]model.ErrorDetails, 0, len(snap.Errors))
			for field, msg := range snap.Errors {
				details = append(details, model.ErrorDetails{Field: field, Issue: msg})
			}
			RespondErrorJSON(w, r, http.StatusUnprocessableEntity, ErrInvalidRequest.Error(), "İlan bilgileri eksik", details)
		case errors.Is(err, service.ErrSubmitInFlight):
			RespondErrorJSON(w, r, http.StatusConflict, ErrSubmitFailed.Error(), "submission already in progress", nil)
		default:
			RespondErrorJSON(w, r, http.StatusInternalServerError, ErrSubmitFailed.Error(), err.Error(), nil)
		}
		return
	}

	RespondSuccessJSON(w, r, http.StatusCreated, "İlan başarıyla oluşturuldu", map[string]string{
		"listing_id": listingID.String(),
	})
}

func validationDetails(err error) []model.ErrorDetails {
	var details []model.ErrorDetails
	if validErrs, ok := err.(playgroundvalidator.ValidationErrors); ok {
		for _, vErr := range validErrs {
			details = append(details, model.ErrorDetails{
				Field: vErr.Field(),
				Issue: fmt.Sprintf("failed on tag '%s' with param '%s'", vErr.Tag(), vErr.Param()),
			})
		}
	}
	return details
}
