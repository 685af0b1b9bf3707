// Package devserver is an in-memory implementation of the logistics backend
// used for local development and end-to-end tests of the client.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"logistica/internal/middleware"
	"logistica/internal/rate_limiter"
	"logistica/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	loginLimit      = 10
	loginWindow     = 5 * time.Minute
	shutdownTimeout = 5 * time.Second
	version         = "1.0.0"
)

type Options struct {
	JWTSecret string
	// TrustedProxies may set X-Forwarded-For and X-Real-IP. Forwarding
	// headers from any other peer are ignored.
	TrustedProxies []string
	// Seed fills the store with demo data.
	Seed bool
}

type Server struct {
	Store   *MemoryStore
	router  *gin.Engine
	limiter *rate_limiter.RateLimiter
	health  *middleware.Health
	log     *zap.Logger
}

func New(opts Options, log *zap.Logger) (*Server, error) {
	store := NewMemoryStore()
	if opts.Seed {
		if err := Seed(store); err != nil {
			return nil, fmt.Errorf("seed store: %w", err)
		}
	}

	s := &Server{
		Store:   store,
		limiter: rate_limiter.NewRateLimiter(loginLimit, loginWindow),
		health:  middleware.NewHealth(version),
		log:     log,
	}

	tokens := security.NewTokens(opts.JWTSecret)
	if !tokens.Enabled() {
		log.Warn("JWT_SECRET is not set, tokens are disabled")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	if err := router.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	router.Use(middleware.RecoveryMiddleware(log), middleware.RequestLogger(log))
	router.GET("/health", s.health.Handler())

	NewAuthHandler(store, tokens, s.limiter, log).RegisterRoutes(router)
	NewUsersHandler(store, tokens).RegisterRoutes(router)
	NewCatalogHandler(store).RegisterRoutes(router)
	NewMovementHandler(store, store, log).RegisterRoutes(router)

	s.router = router
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.limiter.Run(ctx, time.Minute)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Development backend listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.health.SetStatus("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
