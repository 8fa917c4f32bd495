package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/brandloop/loyalty/internal/challenge"
	challengeStore "github.com/brandloop/loyalty/internal/challenge/store"
	"github.com/brandloop/loyalty/internal/config"
	"github.com/brandloop/loyalty/internal/customer"
	customerStore "github.com/brandloop/loyalty/internal/customer/store"
	"github.com/brandloop/loyalty/internal/database"
	"github.com/brandloop/loyalty/internal/expiry"
	expiryStore "github.com/brandloop/loyalty/internal/expiry/store"
	loyaltyHttp "github.com/brandloop/loyalty/internal/http"
	challengeHandler "github.com/brandloop/loyalty/internal/http/challenge"
	customerHandler "github.com/brandloop/loyalty/internal/http/customer"
	expiryHandler "github.com/brandloop/loyalty/internal/http/expiry"
	orderHandler "github.com/brandloop/loyalty/internal/http/order"
	pointsHandler "github.com/brandloop/loyalty/internal/http/points"
	pricingHandler "github.com/brandloop/loyalty/internal/http/pricing"
	rewardHandler "github.com/brandloop/loyalty/internal/http/reward"
	tierHandler "github.com/brandloop/loyalty/internal/http/tier"
	"github.com/brandloop/loyalty/internal/ledger"
	ledgerStore "github.com/brandloop/loyalty/internal/ledger/store"
	"github.com/brandloop/loyalty/internal/loyalty"
	"github.com/brandloop/loyalty/internal/notify"
	"github.com/brandloop/loyalty/internal/pricing"
	pricingStore "github.com/brandloop/loyalty/internal/pricing/store"
	"github.com/brandloop/loyalty/internal/reward"
	rewardStore "github.com/brandloop/loyalty/internal/reward/store"
	"github.com/brandloop/loyalty/internal/shopify"
	"github.com/brandloop/loyalty/internal/tier"
	tierStore "github.com/brandloop/loyalty/internal/tier/store"
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

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	logger := slog.Default()

	var (
		expiryService    = expiry.NewService(expiryStore.New(db))
		ledgerService    = ledger.NewService(ledgerStore.New(db), expiryService)
		pricingService   = pricing.NewService(pricingStore.New(db))
		challengeService = challenge.NewService(challengeStore.New(db), ledgerService)
		tierService      = tier.NewService(tierStore.New(db))
		customerService  = customer.NewService(customerStore.New(db))
		rewardService    = reward.NewService(rewardStore.New(db), ledgerService, tierService)
		loyaltyService   = loyalty.NewService(
			ledgerService, pricingService, challengeService, tierService,
			notify.NewLogDispatcher(logger), logger,
		)
		shopifyService = shopify.NewService(
			shopify.NewClient(cfg.Shopify.Domain, cfg.Shopify.Token),
			loyaltyService,
		)
	)

	var (
		ordersH     = orderHandler.NewHandler(loyaltyService, shopifyService)
		pointsH     = pointsHandler.NewHandler(loyaltyService, ledgerService)
		challengesH = challengeHandler.NewHandler(challengeService)
		tiersH      = tierHandler.NewHandler(tierService)
		pricingH    = pricingHandler.NewHandler(pricingService)
		expiryH     = expiryHandler.NewHandler(expiryService)
		customersH  = customerHandler.NewHandler(customerService, loyaltyService)
		rewardsH    = rewardHandler.NewHandler(rewardService)
	)

	router := loyaltyHttp.New(ordersH, pointsH, challengesH, tiersH, pricingH, expiryH, customersH, rewardsH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
