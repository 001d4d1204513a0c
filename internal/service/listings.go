package service

import (
	"context"
	"fmt"
	"path"
	"sync"

	"github.com/UgurucanDuman/Autonova/internal/draft"
	"github.com/UgurucanDuman/Autonova/internal/repository"
	"github.com/UgurucanDuman/Autonova/internal/storage"
	"github.com/UgurucanDuman/Autonova/pkg/logger"
	"github.com/UgurucanDuman/Autonova/pkg/utils"
	"github.com/google/uuid"
)

type ListingServicer interface {
	OpenDraft(ctx context.Context, userID uuid.UUID) (*draft.Session, error)
	GetDraft(sessionID, userID uuid.UUID) (*draft.Session, error)
	Submit(ctx context.Context, sessionID, userID uuid.UUID) (uuid.UUID, error)
	DiscardDraft(sessionID uuid.UUID)
}

type ListingService struct {
	listings repository.IListingrepo
	storage  storage.Storager
	drafts   *draft.Store
	log      *logger.Logger

	// listings each user may hold before needing extra allowance
	limit int

	mu       sync.Mutex
	inFlight map[uuid.UUID]bool // session IDs with a submit running
}

func NewListingService(listings repository.IListingrepo, s storage.Storager, drafts *draft.Store, log *logger.Logger) *ListingService {
	return &ListingService{
		listings: listings,
		storage:  s,
		drafts:   drafts,
		log:      log.Named("listings"),
		limit:    utils.GetIntEnv("LISTING_LIMIT", 3),
		inFlight: make(map[uuid.UUID]bool),
	}
}

// OpenDraft starts a new wizard session after checking the seller has
// room under their listing allowance.
func (ls *ListingService) OpenDraft(ctx context.Context, userID uuid.UUID) (*draft.Session, error) {
	count, err := ls.listings.CountActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing limit check: %w", err)
	}
	if count >= ls.limit {
		return nil, ErrListingLimit
	}
	return ls.drafts.Open(userID), nil
}

func (ls *ListingService) GetDraft(sessionID, userID uuid.UUID) (*draft.Session, error) {
	return ls.drafts.Get(sessionID, userID)
}

func (ls *ListingService) DiscardDraft(sessionID uuid.UUID) {
	ls.drafts.Close(sessionID)
}

// Submit runs the final pipeline: validate the draft, upload the photo
// set in order, insert the listing row and retire the session. Any
// failure leaves the draft and wizard position untouched so the seller
// can retry without re-entering data.
func (ls *ListingService) Submit(ctx context.Context, sessionID, userID uuid.UUID) (uuid.UUID, error) {
	session, err := ls.drafts.Get(sessionID, userID)
	if err != nil {
		return uuid.Nil, err
	}

	ls.mu.Lock()
	if ls.inFlight[sessionID] {
		ls.mu.Unlock()
		return uuid.Nil, ErrSubmitInFlight
	}
	ls.inFlight[sessionID] = true
	ls.mu.Unlock()

	defer func() {
		ls.mu.Lock()
		delete(ls.inFlight, sessionID)
		ls.mu.Unlock()
	}()

	if !session.Validate() {
		return uuid.Nil, ErrDraftInvalid
	}

	record := session.Record()
	photos := session.PhotoList()

	listingKey := uuid.NewString()
	imageKeys := make([]string, 0, len(photos))
	for i, p := range photos {
		key := fmt.Sprintf("%s/%d-%s", listingKey, i, path.Base(p.Filename))
		if err := ls.storage.SavePhoto(ctx, storage.ListingPhotoBucket, key, p.ContentType, p.Data); err != nil {
			ls.log.Errorw("photo upload failed", "session", sessionID, "key", key, "error", err)
			return uuid.Nil, fmt.Errorf("photo upload: %w", err)
		}
		imageKeys = append(imageKeys, key)
	}
	record.ImageKeys = imageKeys

	id, err := ls.listings.Insert(ctx, record)
	if err != nil {
		ls.log.Errorw("listing insert failed", "session", sessionID, "error", err)
		return uuid.Nil, fmt.Errorf("create listing: %w", err)
	}

	ls.drafts.Close(sessionID)
	ls.log.Infow("listing created", "listing", id, "user", userID, "photos", len(imageKeys))
	return id, nil
}
