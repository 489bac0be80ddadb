package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/mailer"
	"portfolio_backend/internal/repository"
	"portfolio_backend/internal/repository/db"
	"portfolio_backend/internal/server"
	"portfolio_backend/internal/service"
	"portfolio_backend/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)

	// block until the database container is reachable and migrated;
	// exhausting the retry bound is fatal
	pool, err := db.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatalw("failed to init postgres", "err", err)
	}
	defer func() {
		if cerr := pool.Close(); cerr != nil {
			log.Errorw("failed to close postgres", "err", cerr)
		}
	}()

	store, err := storage.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalw("failed to init upload storage", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(pool)
	tokens := service.NewTokenManager(cfg.JWTSecret)
	mail := mailer.NewSMTPMailer(cfg, log)
	services := service.NewService(repos, tokens, mail, cfg, log)
	apiHandler := handlers.NewHandler(services, store, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
	log.Infow("server starting", "port", port)
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
