package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/UgurucanDuman/Autonova/internal/model"
	"github.com/UgurucanDuman/Autonova/pkg/config"
	"github.com/google/uuid"
)

var requestIDKey = "X-Request-ID"

func writeJson(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to write json response", "status", status, "error", err)
	}
}

func GetUserClaims(ctx context.Context) *config.UserClaims {
	claims, ok := ctx.Value(config.UserClaimKey).(*config.UserClaims)
	if !ok {
		return nil
	}
	return claims
}

// BearerToken extracts the raw bearer token from the request, empty
// when absent or malformed.
func BearerToken(r *http.Request) string {
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

func RespondSuccessJSON[T any](w http.ResponseWriter, r *http.Request, status int, message string, data T) {

	// fetch request ID , if not found generate new UUID
	reqID := r.Header.Get(requestIDKey)
	if reqID == "" {
		reqID = uuid.NewString()
	}

	// This ensures the client gets the ID whether they sent it or we created it.
	w.Header().Set(requestIDKey, reqID)

	payload := model.APIResponse[T]{
		Status:  "success",
		Message: message,
		Metadata: model.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: reqID,
		},
		Data:  data,
		Error: nil,
	}
	writeJson(w, status, payload)
}

func RespondErrorJSON(w http.ResponseWriter, r *http.Request, status int, code string, message string, details []model.ErrorDetails) {
	// fetch request ID , if not found generate new UUID
	reqID := r.Header.Get(requestIDKey)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	// This ensures the client gets the ID whether they sent it or we created it.
	w.Header().Set(requestIDKey, reqID)

	payload := model.APIResponse[any]{
		Status: "error",
		Metadata: model.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: reqID,
		},
		Error: &model.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	writeJson(w, status, payload)
}
