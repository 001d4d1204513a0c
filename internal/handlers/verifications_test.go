package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/UgurucanDuman/Autonova/internal/model"
	"github.com/UgurucanDuman/Autonova/internal/service"
	"github.com/UgurucanDuman/Autonova/pkg/config"
	"github.com/UgurucanDuman/Autonova/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerificationService struct {
	records   []model.Verification
	loadErr   error
	resendErr error
	verifyErr error

	lastTerm   string
	lastToken  string
	lastEmail  string
	lastUserID uuid.UUID
}

func (s *stubVerificationService) Load(_ context.Context) ([]model.Verification, error) {
	return s.records, s.loadErr
}

func (s *stubVerificationService) Filter(term string) []model.Verification {
	s.lastTerm = term
	return s.records
}

func (s *stubVerificationService) Resend(_ context.Context, userID uuid.UUID, email, token string) error {
	s.lastUserID = userID
	s.lastEmail = email
	s.lastToken = token
	return s.resendErr
}

func (s *stubVerificationService) ManualVerify(_ context.Context, userID uuid.UUID) error {
	s.lastUserID = userID
	return s.verifyErr
}

func (s *stubVerificationService) Run(_ context.Context) {}

func verificationRouter(t *testing.T, svc service.VerificationServicer) *chi.Mux {
	t.Helper()
	h, err := NewVerificationHandler(svc, NewLiveHub(logger.NewLogger()))
	require.NoError(t, err)

	mux := chi.NewMux()
	mux.Route("/admin/verifications", func(r chi.Router) {
		r.Use(withClaims(uuid.New(), config.RoleAdmin))
		r.Get("/", h.List)
		r.Post("/{userId}/resend", h.Resend)
		r.Post("/{userId}/confirm", h.Confirm)
	})
	return mux
}

func TestListLoadsAndFilters(t *testing.T) {
	svc := &stubVerificationService{records: []model.Verification{
		{ID: uuid.New(), Email: "ada@example.com"},
	}}
	mux := verificationRouter(t, svc)

	rec := doJSON(t, mux, http.MethodGet, "/admin/verifications/?search=ada", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "ada", svc.lastTerm)

	var records []model.Verification
	require.NoError(t, json.Unmarshal(env.Data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "ada@example.com", records[0].Email)
}

func TestListSurfacesLoadFailure(t *testing.T) {
	svc := &stubVerificationService{loadErr: errors.New("db gone")}
	mux := verificationRouter(t, svc)

	rec := doJSON(t, mux, http.MethodGet, "/admin/verifications/", nil)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VERIFICATIONS_LOAD_FAILED", env.Error.Code)
	assert.Equal(t, "Email doğrulamaları yüklenemedi", env.Error.Message)
}

func TestResendForwardsBearerToken(t *testing.T) {
	svc := &stubVerificationService{}
	mux := verificationRouter(t, svc)
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodPost,
		"/admin/verifications/"+userID.String()+"/resend?email=ada%40example.com", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, svc.lastUserID)
	assert.Equal(t, "ada@example.com", svc.lastEmail)
	assert.Equal(t, "admin-token", svc.lastToken)
	assert.Equal(t, "Doğrulama e-postası yeniden gönderildi", decodeEnvelope(t, rec).Message)
}

func TestResendRequiresEmail(t *testing.T) {
	mux := verificationRouter(t, &stubVerificationService{})

	rec := doJSON(t, mux, http.MethodPost, "/admin/verifications/"+uuid.NewString()+"/resend", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_PARAM", decodeEnvelope(t, rec).Error.Code)
}

func TestResendBusyRecordConflicts(t *testing.T) {
	svc := &stubVerificationService{resendErr: service.ErrRecordBusy}
	mux := verificationRouter(t, svc)

	rec := doJSON(t, mux, http.MethodPost,
		"/admin/verifications/"+uuid.NewString()+"/resend?email=a%40b.com", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "RECORD_BUSY", decodeEnvelope(t, rec).Error.Code)
}

func TestResendFailureIsTurkishMessage(t *testing.T) {
	svc := &stubVerificationService{resendErr: service.ErrResendFailed}
	mux := verificationRouter(t, svc)

	rec := doJSON(t, mux, http.MethodPost,
		"/admin/verifications/"+uuid.NewString()+"/resend?email=a%40b.com", nil)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Doğrulama e-postası gönderilemedi", decodeEnvelope(t, rec).Error.Message)
}

func TestConfirmSuccess(t *testing.T) {
	svc := &stubVerificationService{}
	mux := verificationRouter(t, svc)
	userID := uuid.New()

	rec := doJSON(t, mux, http.MethodPost, "/admin/verifications/"+userID.String()+"/confirm", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, svc.lastUserID)
	assert.Equal(t, "E-posta manuel olarak doğrulandı", decodeEnvelope(t, rec).Message)
}

func TestConfirmFailure(t *testing.T) {
	svc := &stubVerificationService{verifyErr: service.ErrVerifyFailed}
	mux := verificationRouter(t, svc)

	rec := doJSON(t, mux, http.MethodPost, "/admin/verifications/"+uuid.NewString()+"/confirm", nil)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "E-posta doğrulanamadı", decodeEnvelope(t, rec).Error.Message)
}

func TestConfirmRejectsBadUserID(t *testing.T) {
	mux := verificationRouter(t, &stubVerificationService{})

	rec := doJSON(t, mux, http.MethodPost, "/admin/verifications/not-a-uuid/confirm", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_PARAM", decodeEnvelope(t, rec).Error.Code)
}
