package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/avquote/backend/internal/config"
	"github.com/avquote/backend/internal/db"
	"github.com/avquote/backend/internal/logging"
	"github.com/avquote/backend/internal/server"
	"github.com/avquote/backend/internal/services"
	"github.com/avquote/backend/internal/shelf"
	"github.com/avquote/backend/internal/store"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")

func main() {
	flag.Parse()
	_ = godotenv.Load()
	cfg := config.Load()
	logging.Setup(cfg.Env)

	if *migrateOnlyFlag {
		if _, err := db.ConnectAndMigrate(cfg.DatabaseDSN); err != nil {
			logging.Fatal("migrate-only failed", "error", err)
		}
		slog.Info("migrations completed; exiting as requested")
		return
	}

	st, err := openStore(cfg)
	if err != nil {
		logging.Fatal("store init failed", "driver", cfg.StoreDriver, "error", err)
	}

	var shelfClient *shelf.Client
	if client, err := shelf.New(cfg.ShelfURL, cfg.ShelfAPIKey); err == nil {
		shelfClient = client
	} else {
		slog.Warn("remote asset backend not configured; equipment serves the local collection and booking is disabled", "error", err)
	}

	handler := server.New(server.Options{
		Store:           st,
		Shelf:           shelfClient,
		Notifier:        services.NewNotifier(),
		FallbackWebhook: cfg.WebhookURL,
	})

	slog.Info("starting server", "env", cfg.Env, "port", cfg.Port, "store", cfg.StoreDriver)
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: handler}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("error during shutdown", "error", err)
	}
	slog.Info("server gracefully stopped")
}

func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverFile:
		return store.NewFileStore(cfg.DataDir)
	case config.DriverSqlite, config.DriverPostgres:
		conn, err := db.ConnectAndMigrate(cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return store.NewGormStore(conn), nil
	default:
		return nil, errors.New("unknown STORE_DRIVER " + cfg.StoreDriver)
	}
}
