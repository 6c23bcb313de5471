package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/handlers"
	custommiddleware "github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api/middleware"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/config"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	profileService *service.ProfileService,
	holdingService *service.HoldingService,
	goalService *service.GoalService,
	advisorService *service.AdvisorService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/profile", func(r chi.Router) {
			profileHandler := handlers.NewProfileHandler(profileService)
			r.Get("/", profileHandler.GetProfile)
			r.Put("/", profileHandler.SaveProfile)
		})

		r.Route("/holding", func(r chi.Router) {
			holdingHandler := handlers.NewHoldingHandler(holdingService)
			r.Get("/", holdingHandler.Holdings)
			r.Post("/", holdingHandler.CreateHolding)
			r.Post("/bulk-delete", holdingHandler.DeleteHoldings)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", holdingHandler.GetHolding)
				r.Put("/", holdingHandler.UpdateHolding)
				r.Delete("/", holdingHandler.DeleteHolding)
			})
		})

		r.Route("/goal", func(r chi.Router) {
			goalHandler := handlers.NewGoalHandler(goalService)
			r.Get("/", goalHandler.Goals)
			r.Post("/", goalHandler.CreateGoal)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", goalHandler.GetGoal)
				r.Put("/", goalHandler.UpdateGoal)
				r.Delete("/", goalHandler.DeleteGoal)
			})
		})

		r.Route("/advisor", func(r chi.Router) {
			advisorHandler := handlers.NewAdvisorHandler(advisorService)
			r.Get("/analysis", advisorHandler.Analysis)
			r.Get("/health", advisorHandler.Health)
			r.Get("/allocation", advisorHandler.Allocation)
			r.Route("/recommendations", func(r chi.Router) {
				r.Get("/", advisorHandler.Recommendations)
				r.Post("/refresh", advisorHandler.RefreshRecommendations)
				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Put("/status", advisorHandler.UpdateRecommendationStatus)
				})
			})
		})
	})

	return r
}
