package dependency

import (
	"context"
	"log/slog"

	"github.com/UgurucanDuman/Autonova/internal/cache"
	"github.com/UgurucanDuman/Autonova/internal/draft"
	"github.com/UgurucanDuman/Autonova/internal/feed"
	"github.com/UgurucanDuman/Autonova/internal/handlers"
	"github.com/UgurucanDuman/Autonova/internal/repository"
	"github.com/UgurucanDuman/Autonova/internal/service"
	"github.com/UgurucanDuman/Autonova/internal/storage"
	"github.com/UgurucanDuman/Autonova/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds all the intialized instances required by the application.
type Dependencies struct {
	Services            *service.Services
	Pool                *pgxpool.Pool
	Cache               cache.Cacher
	Listener            *feed.Listener
	Hub                 *handlers.LiveHub
	Drafts              *draft.Store
	DraftHandler        *handlers.DraftHandler
	VerificationHandler *handlers.VerificationHandler
	CatalogHandler      *handlers.CatalogHandler
	RateHandler         *handlers.RateHandler
	Log                 *logger.Logger
}

// NewDependencies connects to DB, and wires up all services
func NewDependencies(ctx context.Context, dbDsn string) (*Dependencies, error) {
	log := logger.NewLogger()

	pool, err := pgxpool.New(ctx, dbDsn)
	if err != nil {
		slog.Error("[DB] connection failed -> ", "error", err.Error())
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		slog.Error("[DB] ping failed -> ", "error", err.Error())
		return nil, err
	}

	store, err := storage.NewMinioStorage()
	if err != nil {
		slog.Error("[Storage] failed to initialize -> ", "error", err.Error())
		return nil, err
	}

	redisCache, err := cache.NewRedisClient(ctx)
	if err != nil {
		slog.Error("[Cache] failed to initialized ->", "error", err.Error())
		return nil, err
	}
	slog.Info("[Cache] connected")

	userRepo := repository.NewUserrepo(pool)
	listingRepo := repository.NewListingrepo(pool)
	verificationRepo := repository.NewVerificationrepo(pool)

	listener := feed.NewListener(pool, log)
	hub := handlers.NewLiveHub(log)
	drafts := draft.NewStore()

	services, err := service.NewServices(userRepo, listingRepo, verificationRepo, store, redisCache, listener, hub, drafts, log)
	if err != nil {
		slog.Error("[Service] failed to initialized -> ", "error", err.Error())
		return nil, err
	}

	draftHandler, err := handlers.NewDraftHandler(services.ListingService)
	if err != nil {
		slog.Error("[Draft Handler] failed to initialized -> ", "error", err.Error())
		return nil, err
	}

	verificationHandler, err := handlers.NewVerificationHandler(services.VerificationService, hub)
	if err != nil {
		slog.Error("[Verification Handler] failed to initialized -> ", "error", err.Error())
		return nil, err
	}

	catalogHandler, err := handlers.NewCatalogHandler()
	if err != nil {
		return nil, err
	}

	rateHandler, err := handlers.NewRateHandler(services.RateService)
	if err != nil {
		return nil, err
	}

	return &Dependencies{
		Services:            services,
		Pool:                pool,
		Cache:               redisCache,
		Listener:            listener,
		Hub:                 hub,
		Drafts:              drafts,
		DraftHandler:        draftHandler,
		VerificationHandler: verificationHandler,
		CatalogHandler:      catalogHandler,
		RateHandler:         rateHandler,
		Log:                 log,
	}, nil
}

// Close releases the shared resources.
func (d *Dependencies) Close() {
	if d.Cache != nil {
		_ = d.Cache.Close()
	}
	if d.Pool != nil {
		d.Pool.Close()
	}
}
