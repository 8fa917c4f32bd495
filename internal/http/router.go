package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/brandloop/loyalty/internal/http/challenge"
	"github.com/brandloop/loyalty/internal/http/customer"
	"github.com/brandloop/loyalty/internal/http/expiry"
	"github.com/brandloop/loyalty/internal/http/order"
	"github.com/brandloop/loyalty/internal/http/points"
	"github.com/brandloop/loyalty/internal/http/pricing"
	"github.com/brandloop/loyalty/internal/http/reward"
	"github.com/brandloop/loyalty/internal/http/tier"
)

func New(
	ordersV1 *order.Handler,
	pointsV1 *points.Handler,
	challengesV1 *challenge.Handler,
	tiersV1 *tier.Handler,
	pricingV1 *pricing.Handler,
	expiryV1 *expiry.Handler,
	customersV1 *customer.Handler,
	rewardsV1 *reward.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			ordersV1.Routes(r)
		})

		r.Route("/points", pointsV1.Routes)

		r.Route("/challenges", func(r chi.Router) {
			challengesV1.Routes(r)
		})

		r.Route("/tiers", func(r chi.Router) {
			tiersV1.Routes(r)
		})

		r.Route("/pricing", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			pricingV1.Routes(r)
		})

		r.Route("/expiry-defaults", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			expiryV1.Routes(r)
		})

		r.Route("/customers", customersV1.Routes)

		r.Route("/rewards", func(r chi.Router) {
			rewardsV1.Routes(r)
		})
	})

	return router
}
