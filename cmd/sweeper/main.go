// The sweeper zeroes expired point batches on a fixed interval. It can run
// alongside the API and alongside another sweeper: the sweep claims batches
// with row locks and conditional updates, so overlap is harmless.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/brandloop/loyalty/internal/config"
	"github.com/brandloop/loyalty/internal/database"
	"github.com/brandloop/loyalty/internal/expiry"
	expiryStore "github.com/brandloop/loyalty/internal/expiry/store"
	"github.com/brandloop/loyalty/internal/ledger"
	ledgerStore "github.com/brandloop/loyalty/internal/ledger/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ledgerService := ledger.NewService(ledgerStore.New(db), expiry.NewService(expiryStore.New(db)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting sweeper", "interval", cfg.Sweeper.Interval)

	sweep(ctx, ledgerService)

	ticker := time.NewTicker(cfg.Sweeper.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("sweeper stopping")
			return
		case <-ticker.C:
			sweep(ctx, ledgerService)
		}
	}
}

func sweep(ctx context.Context, svc *ledger.Service) {
	expired, err := svc.ExpireBatches(ctx, time.Now())
	if err != nil {
		slog.Error("expiry sweep failed", "error", err)
		return
	}

	if expired > 0 {
		slog.Info("expired point batches", "count", expired)
	}
}
