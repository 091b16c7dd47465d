package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/offline-pay/token-ledger/internal/adapter"
	"github.com/offline-pay/token-ledger/internal/api/middleware"
	"github.com/offline-pay/token-ledger/internal/api/rest"
	"github.com/offline-pay/token-ledger/internal/api/shared/executor"
	"github.com/offline-pay/token-ledger/internal/logger"
	"github.com/offline-pay/token-ledger/internal/ratelimit"
	"github.com/offline-pay/token-ledger/internal/reconciler"
	"github.com/offline-pay/token-ledger/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Auth         middleware.AuthConfig
	RateLimit    ratelimit.Config // zero RequestsPerSecond disables throttling
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	reconciler reconciler.Reconciler
	base64     adapter.Base64
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, store store.Store, reconciler reconciler.Reconciler, base64 adapter.Base64) *Server {
	return &Server{
		config:     cfg,
		store:      store,
		reconciler: reconciler,
		base64:     base64,
	}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() (*gin.Engine, error) {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	var limiter ratelimit.Limiter
	if s.config.RateLimit.RequestsPerSecond > 0 {
		var err error
		limiter, err = ratelimit.NewLimiter(s.config.RateLimit, adapter.NewClock())
		if err != nil {
			return nil, fmt.Errorf("failed to create rate limiter: %w", err)
		}
	}

	exec := executor.NewExecutor(s.store, s.reconciler, s.base64)
	restHandler := rest.NewHandler(exec)
	rest.SetupRoutes(router, restHandler, s.config.Auth, limiter)

	return router, nil
}

// Start initializes and starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	router, err := s.Router()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	logger.InfoCtx(ctx, "Starting ledger API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.InfoCtx(ctx, "Shutting down ledger API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
