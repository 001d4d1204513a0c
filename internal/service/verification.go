package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/UgurucanDuman/Autonova/internal/feed"
	"github.com/UgurucanDuman/Autonova/internal/model"
	"github.com/UgurucanDuman/Autonova/internal/repository"
	"github.com/UgurucanDuman/Autonova/pkg/logger"
	"github.com/UgurucanDuman/Autonova/pkg/utils"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type VerificationServicer interface {
	Load(ctx context.Context) ([]model.Verification, error)
	Filter(term string) []model.Verification
	Resend(ctx context.Context, userID uuid.UUID, email, bearerToken string) error
	ManualVerify(ctx context.Context, userID uuid.UUID) error
	Run(ctx context.Context)
}

// Broadcaster receives the refreshed record set after every reload;
// the websocket hub implements it.
type Broadcaster interface {
	BroadcastVerifications(records []model.Verification)
}

type VerificationService struct {
	repo     repository.IVerificationrepo
	users    repository.IUserrepo
	listener *feed.Listener
	hub      Broadcaster
	client   *resty.Client
	log      *logger.Logger

	verifyEmailURL string

	mu       sync.RWMutex
	snapshot []model.Verification

	busyMu sync.Mutex
	busy   map[uuid.UUID]bool // user IDs with an action in flight
}

func NewVerificationService(
	repo repository.IVerificationrepo,
	users repository.IUserrepo,
	listener *feed.Listener,
	hub Broadcaster,
	log *logger.Logger,
) *VerificationService {
	client := resty.New().
		SetTimeout(20 * time.Second).
		SetHeader("User-Agent", "Autonova/1.0")

	return &VerificationService{
		repo:           repo,
		users:          users,
		listener:       listener,
		hub:            hub,
		client:         client,
		log:            log.Named("verifications"),
		verifyEmailURL: utils.GetEnv("VERIFY_EMAIL_URL", "http://localhost:9999/functions/v1/verify-email"),
		snapshot:       []model.Verification{},
		busy:           make(map[uuid.UUID]bool),
	}
}

// Load fetches the full joined record set, newest first, and replaces
// the in-memory snapshot. The snapshot is always authoritative; there
// is no incremental reconciliation.
func (vs *VerificationService) Load(ctx context.Context) ([]model.Verification, error) {
	records, err := vs.repo.ListWithUsers(ctx)
	if err != nil {
		vs.log.Errorw("load failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrVerificationsLoad, err)
	}

	vs.mu.Lock()
	vs.snapshot = records
	vs.mu.Unlock()

	if vs.hub != nil {
		vs.hub.BroadcastVerifications(records)
	}
	return records, nil
}

// Filter matches term case-insensitively against the record email and
// the user display name, over the already-loaded snapshot only.
func (vs *VerificationService) Filter(term string) []model.Verification {
	vs.mu.RLock()
	defer vs.mu.RUnlock()

	if term == "" {
		out := make([]model.Verification, len(vs.snapshot))
		copy(out, vs.snapshot)
		return out
	}

	needle := strings.ToLower(term)
	out := []model.Verification{}
	for _, v := range vs.snapshot {
		if strings.Contains(strings.ToLower(v.Email), needle) ||
			strings.Contains(strings.ToLower(v.UserFullName), needle) {
			out = append(out, v)
		}
	}
	return out
}

// Run consumes the change feed until ctx is cancelled. Every
// notification triggers a full reload rather than a patch.
func (vs *VerificationService) Run(ctx context.Context) {
	id, ch := vs.listener.Subscribe()
	defer vs.listener.Unsubscribe(id)

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			if _, err := vs.Load(ctx); err != nil {
				vs.log.Warnw("reload after change notification failed", "error", err)
			}
		}
	}
}

func (vs *VerificationService) acquire(userID uuid.UUID) bool {
	vs.busyMu.Lock()
	defer vs.busyMu.Unlock()

	if vs.busy[userID] {
		return false
	}
	vs.busy[userID] = true
	return true
}

func (vs *VerificationService) release(userID uuid.UUID) {
	vs.busyMu.Lock()
	delete(vs.busy, userID)
	vs.busyMu.Unlock()
}

// Resend asks the verification sender to issue a fresh code to the
// user's email, forwarding the admin's bearer token. A second action on
// the same record is rejected while one is in flight.
func (vs *VerificationService) Resend(ctx context.Context, userID uuid.UUID, email, bearerToken string) error {
	if !vs.acquire(userID) {
		return ErrRecordBusy
	}
	defer vs.release(userID)

	resp, err := vs.client.R().
		SetContext(ctx).
		SetAuthToken(bearerToken).
		SetBody(map[string]string{
			"userId": userID.String(),
			"email":  email,
			"action": "send",
		}).
		Post(vs.verifyEmailURL)
	if err != nil {
		vs.log.Errorw("resend request failed", "user", userID, "error", err)
		return fmt.Errorf("%w: %v", ErrResendFailed, err)
	}
	if resp.IsError() {
		// the sender's response body is the user-facing message
		body := strings.TrimSpace(resp.String())
		if body == "" {
			return ErrResendFailed
		}
		vs.log.Warnw("resend rejected", "user", userID, "status", resp.StatusCode())
		return fmt.Errorf("%w: %s", ErrResendFailed, body)
	}

	vs.log.Infow("verification email resent", "user", userID, "email", email)
	return nil
}

// ManualVerify confirms the user's email, deletes the pending record
// and reloads the list. Either external call failing aborts the
// sequence and leaves the record in place. When the confirm succeeds
// but the delete fails the user stays confirmed with a stale record
// still visible; that window is logged, not compensated.
func (vs *VerificationService) ManualVerify(ctx context.Context, userID uuid.UUID) error {
	if !vs.acquire(userID) {
		return ErrRecordBusy
	}
	defer vs.release(userID)

	if err := vs.users.ConfirmEmail(ctx, userID); err != nil {
		vs.log.Errorw("manual confirm failed", "user", userID, "error", err)
		return fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}

	if err := vs.repo.DeleteByUserID(ctx, userID); err != nil {
		vs.log.Warnw("email confirmed but record delete failed", "user", userID, "error", err)
		return fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}

	if _, err := vs.Load(ctx); err != nil && !errors.Is(err, context.Canceled) {
		vs.log.Warnw("reload after manual verify failed", "user", userID, "error", err)
	}

	vs.log.Infow("email manually verified", "user", userID)
	return nil
}
