package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/patrimonio/wealth-backend/internal/api/handlers"
	custommiddleware "github.com/patrimonio/wealth-backend/internal/api/middleware"
	"github.com/patrimonio/wealth-backend/internal/config"
	"github.com/patrimonio/wealth-backend/internal/service"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	System      *service.SystemService
	Assets      *service.AssetService
	Holdings    *service.HoldingService
	Securities  *service.SecurityService
	Quotes      *service.QuoteService
	Transaction *service.TransactionService
	Portfolio   *service.PortfolioService
	Forecast    *service.ForecastService
	Snapshots   *service.SnapshotService
	Plans       *service.PlanService
	Settings    *service.SettingsService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/assets", func(r chi.Router) {
			assetHandler := handlers.NewAssetHandler(svc.Assets)
			holdingHandler := handlers.NewHoldingHandler(svc.Holdings)
			r.Get("/", assetHandler.ListAssets)
			r.Post("/", assetHandler.CreateAsset)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", assetHandler.GetAsset)
				r.Put("/", assetHandler.UpdateAsset)
				r.Delete("/", assetHandler.DeleteAsset)
				r.Get("/holdings", holdingHandler.HoldingsPerAsset)
			})
		})

		r.Route("/holdings", func(r chi.Router) {
			holdingHandler := handlers.NewHoldingHandler(svc.Holdings)
			r.Post("/", holdingHandler.CreateHolding)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", holdingHandler.UpdateHolding)
				r.Delete("/", holdingHandler.DeleteHolding)
			})
		})

		r.Route("/securities", func(r chi.Router) {
			securityHandler := handlers.NewSecurityHandler(svc.Securities, svc.Quotes)
			r.Get("/", securityHandler.ListSecurities)
			r.Post("/", securityHandler.CreateSecurity)
			r.Post("/refresh", securityHandler.RefreshQuotes)
		})

		r.Route("/transactions", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(svc.Transaction)
			r.Get("/", transactionHandler.ListTransactions)
			r.Post("/", transactionHandler.CreateTransaction)
			r.Get("/ledger", transactionHandler.Ledger)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio, svc.Forecast, svc.Snapshots)
			r.Get("/summary", portfolioHandler.Summary)
			r.Get("/forecast", portfolioHandler.Forecast)
			r.Get("/history", portfolioHandler.History)
			r.Post("/snapshot", portfolioHandler.CaptureSnapshot)
		})

		r.Route("/plans", func(r chi.Router) {
			planHandler := handlers.NewPlanHandler(svc.Plans)
			r.Get("/", planHandler.ListPlans)
			r.Post("/", planHandler.CreatePlan)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", planHandler.GetPlan)
				r.Put("/", planHandler.UpdatePlan)
				r.Delete("/", planHandler.DeletePlan)
				r.Get("/comparison", planHandler.ComparePlan)
			})
		})

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(svc.Settings)
			r.Get("/{key}", settingsHandler.GetSetting)
			r.Put("/{key}", settingsHandler.SetSetting)
		})
	})

	return r
}
