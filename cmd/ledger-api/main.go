package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"

	"github.com/offline-pay/token-ledger/internal/adapter"
	"github.com/offline-pay/token-ledger/internal/api/middleware"
	"github.com/offline-pay/token-ledger/internal/api/server"
	"github.com/offline-pay/token-ledger/internal/config"
	"github.com/offline-pay/token-ledger/internal/logger"
	"github.com/offline-pay/token-ledger/internal/messaging"
	"github.com/offline-pay/token-ledger/internal/provenance"
	"github.com/offline-pay/token-ledger/internal/providers/jetstream"
	"github.com/offline-pay/token-ledger/internal/ratelimit"
	"github.com/offline-pay/token-ledger/internal/reconciler"
	"github.com/offline-pay/token-ledger/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	migrate    = flag.Bool("migrate", false, "Run schema migrations on startup")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadLedgerAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "ledger-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting token ledger API", zap.String("driver", cfg.Database.Driver))

	// Connect to database
	logLevel := gormlogger.Warn
	if cfg.Debug {
		logLevel = gormlogger.Info
	}
	db, err := store.Open(cfg.Database.Driver, cfg.Database.DSN(), logLevel)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	pool, err := store.ConfigureConnectionPool(db, store.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", pool.MaxOpenConns),
		zap.Int("max_idle_conns", pool.MaxIdleConns),
	)

	if *migrate {
		if err := store.Migrate(db); err != nil {
			logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Database schema migrated")
	}

	// Initialize store
	dataStore := store.NewSQLStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()
	base64Adapter := adapter.NewBase64()
	clock := adapter.NewClock()

	// Connect the event publisher
	publisher := messaging.NewNopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS url not configured, ledger events will not be published")
	}
	defer publisher.Close()

	// Initialize provenance verifier
	verifier := provenance.NewVerifier(dataStore, jsonAdapter, jcsAdapter, provenance.Config{
		WorkerPoolSize: cfg.Provenance.WorkerPoolSize,
	})
	defer verifier.Close()

	// Initialize reconciler
	ledger := reconciler.NewReconciler(reconciler.Config{
		MaxAttempts:     cfg.Reconciler.MaxAttempts,
		InitialInterval: cfg.Reconciler.InitialInterval,
		MaxInterval:     cfg.Reconciler.MaxInterval,
	}, dataStore, verifier, publisher, clock)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
		RateLimit: ratelimit.Config{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			IdleTTL:           cfg.RateLimit.IdleTTL,
		},
	}

	srv := server.New(serverConfig, dataStore, ledger, base64Adapter)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Shutdown with a fresh context since ctx is canceled
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("message", "Server forced to shutdown"))
	}

	logger.Info("Ledger API server stopped")
}
