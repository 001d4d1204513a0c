package service

import (
	"github.com/UgurucanDuman/Autonova/internal/cache"
	"github.com/UgurucanDuman/Autonova/internal/draft"
	"github.com/UgurucanDuman/Autonova/internal/feed"
	"github.com/UgurucanDuman/Autonova/internal/repository"
	"github.com/UgurucanDuman/Autonova/internal/storage"
	"github.com/UgurucanDuman/Autonova/pkg/logger"
)

type Services struct {
	AuthService         AuthServicer
	ListingService      ListingServicer
	VerificationService VerificationServicer
	RateService         RateServicer
}

func NewServices(
	users repository.IUserrepo,
	listings repository.IListingrepo,
	verifications repository.IVerificationrepo,
	s storage.Storager,
	c cache.Cacher,
	listener *feed.Listener,
	hub Broadcaster,
	drafts *draft.Store,
	log *logger.Logger,
) (*Services, error) {
	authService, err := NewAuthService()
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:         authService,
		ListingService:      NewListingService(listings, s, drafts, log),
		VerificationService: NewVerificationService(verifications, users, listener, hub, log),
		RateService:         NewRateService(c, log),
	}, nil
}
