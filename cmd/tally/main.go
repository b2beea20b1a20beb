package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tally/internal/amqp"
	"tally/internal/config"
	apphttp "tally/internal/http"
	"tally/internal/ledger"
	"tally/internal/log"
	"tally/internal/storage"
	mem "tally/internal/storage/memory"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}

	// Choose data backend (default: sqlite).
	var (
		users ledger.UserStore
		txs   ledger.TransactionStore
	)

	switch cfg.DataBackend {
	case "memory":
		store := mem.New()
		seedDemoUsers(store)
		users, txs = store, store
		logger.Info("Initialized memory backend", "backend", cfg.DataBackend)
	default:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite repository", log.FieldError, err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer repo.Close()
		users, txs = repo, repo
		logger.Info("Initialized SQLite backend", "backend", cfg.DataBackend, "path", cfg.SQLiteDBPath)
	}

	// The AMQP publisher feeds the export worker. Recording transactions
	// works without it, so a broker that is down only disables export.
	var publisher ledger.RecordedPublisher
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("AMQP unavailable, export events disabled", log.FieldError, err)
		} else {
			defer client.Close()
			publisher = client
			logger.Info("AMQP publisher initialized", "exchange", cfg.AMQPExchange)
		}
	}

	resolver := ledger.NewIdentityResolver(users)
	service := ledger.NewService(txs, publisher)
	srv := apphttp.NewServer(":"+cfg.Port, resolver, service)

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", log.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting tally server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", log.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

// seedDemoUsers makes the memory backend usable out of the box. The bearer
// token is the user id, so these are the tokens to call the API with.
func seedDemoUsers(store *mem.Store) {
	store.SeedUser(ledger.UserRecord{
		ID:       "demo-treasurer",
		Email:    "treasurer@example.org",
		TenantID: "demo-tenant",
		Role:     "treasurer",
	})
	store.SeedUser(ledger.UserRecord{
		ID:       "demo-viewer",
		Email:    "viewer@example.org",
		TenantID: "demo-tenant",
		Role:     "viewer",
	})
}
