package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/UgurucanDuman/Autonova/internal/dependency"
	"github.com/UgurucanDuman/Autonova/pkg/logger"
	"github.com/UgurucanDuman/Autonova/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/joho/godotenv/autoload"
	"github.com/robfig/cron/v3"
)

type Server struct {
	HTTPServer *http.Server
	Deps       *dependency.Dependencies
	Logger     *logger.Logger
	cron       *cron.Cron
}

func New() (*Server, error) {
	mux := chi.NewMux()
	host := utils.GetEnv("SERVER_HOST", "0.0.0.0")
	port := utils.GetEnv("SERVER_PORT", "8080")
	dbDsn := utils.GetEnv("DB_DSN", "")

	serverAddr := fmt.Sprintf("%s:%s", host, port)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	deps, err := dependency.NewDependencies(ctx, dbDsn)
	if err != nil {
		return nil, err
	}

	serv := &Server{
		HTTPServer: &http.Server{
			Addr:         serverAddr,
			Handler:      mux,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Deps:   deps,
		Logger: deps.Log,
		cron:   cron.New(),
	}

	mux.Use(middleware.Logger)
	mux.Use(middleware.Recoverer)

	serv.Routes(mux)
	return serv, nil
}

func (s *Server) Run() error {
	s.Logger.Infof("[SERVER] running at -> " + s.HTTPServer.Addr)
	// Create context that listens for the interrupt signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// change feed + live verification reloads
	go s.Deps.Listener.Run(ctx)
	go s.Deps.Services.VerificationService.Run(ctx)

	// scheduled exchange-rate refresh; first snapshot is fetched lazily
	if _, err := s.cron.AddFunc("@hourly", func() {
		refreshCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Deps.Services.RateService.Refresh(refreshCtx); err != nil {
			s.Logger.Warnf("[RATES] scheduled refresh failed -> %v", err)
		}
	}); err != nil {
		return err
	}
	s.cron.Start()

	// Run Server in the background
	go func() {
		if err := s.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Fatal("[SERVER] failed to serve -> " + err.Error())
		}
	}()

	// Listen for the interrupt signal
	<-ctx.Done()

	// create shutdown context with 30 - sec timeout
	shutCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	<-s.cron.Stop().Done()

	// Trigger graceful shutdown
	if err := s.HTTPServer.Shutdown(shutCtx); err != nil {
		s.Logger.Error("[SERVER] shutdown failed -> " + err.Error())
		return err
	}

	s.Deps.Close()
	return nil
}
