// Package server assembles the HTTP server: middleware stack, routes,
// event listeners, seed data, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/tattvam/app/models"
	"github.com/shashiranjanraj/tattvam/app/routes"
	"github.com/shashiranjanraj/tattvam/app/store"
	"github.com/shashiranjanraj/tattvam/config"
	"github.com/shashiranjanraj/tattvam/database/seeders"
	"github.com/shashiranjanraj/tattvam/pkg/event"
	"github.com/shashiranjanraj/tattvam/pkg/logger"
	"github.com/shashiranjanraj/tattvam/pkg/metrics"
	"github.com/shashiranjanraj/tattvam/pkg/middleware"
	"github.com/shashiranjanraj/tattvam/pkg/reqid"
	"github.com/shashiranjanraj/tattvam/pkg/router"
)

const shutdownTimeout = 10 * time.Second

// New builds the full router for the given store. Exposed separately
// from Run so tests can drive the complete stack through httptest.
func New(s *store.Store) *router.Router {
	r := router.New()

	corsOpts := middleware.DefaultCORSOptions()
	corsOpts.AllowedOrigins = config.CORSOrigins()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(corsOpts),
		middleware.RateLimit(config.RateLimit(), config.RateWindow()),
	)

	routes.RegisterAPI(r, s)
	return r
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then
// drains in-flight requests. Fails fast when required configuration
// (the JWT secret) is missing.
func Run() error {
	if err := config.Validate(); err != nil {
		return err
	}

	s := store.New()
	registerListeners()

	if err := seeders.RunAll(s); err != nil {
		return err
	}

	r := New(s)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	event.Flush()
	logger.Info("server stopped")
	return nil
}

// registerListeners hooks the domain events up to logging. More
// interesting consumers (mail, webhooks) would attach here too.
func registerListeners() {
	event.Listen("user.registered", func(payload interface{}) {
		if u, ok := payload.(models.User); ok {
			logger.Info("user registered", "user_id", u.ID, "email", u.Email)
		}
	})

	event.Listen("order.created", func(payload interface{}) {
		if o, ok := payload.(models.Order); ok {
			logger.Info("order created", "order_id", o.ID, "user_id", o.UserID, "total", o.TotalAmount)
		}
	})
}
