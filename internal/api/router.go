package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"scamguard/internal/api/handlers"
	apimiddleware "scamguard/internal/api/middleware"
	"scamguard/internal/config"
	"scamguard/internal/infrastructure/cache"
	"scamguard/pkg/logger"
)

// Router holds dependencies for the API router
type Router struct {
	config   config.Config
	handlers *handlers.Handlers
	cache    *cache.RedisCache
	logger   *logger.Logger
}

// NewRouter creates a new Router instance
func NewRouter(cfg config.Config, h *handlers.Handlers, c *cache.RedisCache, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		handlers: h,
		cache:    c,
		logger:   log.WithComponent("router"),
	}
}

// Setup sets up the Chi router with all routes and middleware
func (r *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Core middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(apimiddleware.Logger(r.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.config.CORS.AllowedOrigins,
		AllowedMethods:   r.config.CORS.AllowedMethods,
		AllowedHeaders:   r.config.CORS.AllowedHeaders,
		AllowCredentials: r.config.CORS.AllowCredentials,
		MaxAge:           r.config.CORS.MaxAge,
	}))

	// Rate limiting
	if r.config.RateLimit.Enabled && r.cache != nil {
		router.Use(apimiddleware.RateLimiter(r.cache, r.config.RateLimit))
	}

	// Health checks
	router.Get("/health", r.handlers.Health.Check)
	router.Get("/ready", r.handlers.Health.Ready)

	// API v1 routes
	router.Route("/api/v1", func(api chi.Router) {
		// Classification endpoints
		api.Route("/classify", func(classify chi.Router) {
			classify.Post("/phone", r.handlers.Phone.Classify)
			classify.Post("/url", r.handlers.URL.Classify)
			classify.Post("/text", r.handlers.Text.Classify)
		})

		// User reports
		api.Route("/report", func(report chi.Router) {
			report.Post("/domain", r.handlers.Report.Domain)
			report.Post("/phone", r.handlers.Report.Phone)
		})

		// Reference tables
		api.Get("/reference", r.handlers.Reference.Get)

		// Phishing-awareness quiz
		api.Route("/quiz", func(quiz chi.Router) {
			quiz.Get("/", r.handlers.Quiz.Session)
			quiz.Post("/score", r.handlers.Quiz.Score)
		})

		// Stats
		api.Get("/stats", r.handlers.Stats.Get)
	})

	return router
}
