// Package server exposes the application over a JSON REST API.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ayushhh101/meal-optimizer-backend/internal/auth"
	"github.com/ayushhh101/meal-optimizer-backend/internal/config"
	"github.com/ayushhh101/meal-optimizer-backend/internal/metrics"
	"github.com/ayushhh101/meal-optimizer-backend/internal/planner"
	"github.com/ayushhh101/meal-optimizer-backend/internal/user"
)

// Server wires handlers to the application services.
type Server struct {
	cfg     *config.Config
	auths   *auth.Service
	tokens  *auth.TokenManager
	users   *user.Repository
	planner *planner.Service
	metrics *metrics.Store
}

// New creates a Server.
func New(cfg *config.Config, auths *auth.Service, tokens *auth.TokenManager, users *user.Repository, plannerSvc *planner.Service, metricsStore *metrics.Store) *Server {
	return &Server{
		cfg:     cfg,
		auths:   auths,
		tokens:  tokens,
		users:   users,
		planner: plannerSvc,
		metrics: metricsStore,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP, middleware.RequestID, middleware.Logger, middleware.Recoverer)
	r.Use(s.corsMiddleware)

	r.Get("/api/health", s.handleHealth)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.With(s.requireAuth).Get("/me", s.handleMe)
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handleUpdateProfile)
		r.Get("/preferences", s.handleGetPreferences)
		r.Put("/preferences", s.handleUpdatePreferences)
		r.Put("/budget", s.handleUpdateBudget)
		r.Delete("/account", s.handleDeactivateAccount)
	})

	r.Route("/api/meal-plans", func(r chi.Router) {
		r.Use(s.requireAuth)
		// Generation may wait on the upstream agent for up to the
		// configured timeout; everything else is fast.
		r.With(middleware.Timeout(s.cfg.AIAgentTimeout+10*time.Second)).
			Post("/weekly/generate", s.handleGenerateWeekly)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(10 * time.Second))
			r.Get("/weekly", s.handleListWeekly)
			r.Get("/weekly/current", s.handleCurrentWeek)
			r.Delete("/weekly/{planID}", s.handleDeleteWeekly)
			r.Get("/today", s.handleTodayMeals)
			r.Get("/today/grocery-list", s.handleTodayGroceryList)
			r.Patch("/weekly/meals/completion", s.handleToggleCompletion)
		})
		r.With(middleware.Timeout(s.cfg.AIAgentTimeout+10*time.Second)).
			Post("/insights", s.handleInsights)
	})

	return r
}
