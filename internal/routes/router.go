package routes

import (
	"net/http"
	"time"

	"naebak/content-service/internal/api"
	"naebak/content-service/internal/common"
	"naebak/content-service/internal/config"
	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/logging"
	"naebak/content-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func RegisterRoutes(deps *api.Dependencies, cfg *config.Config) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, deps.Metrics)

	// global middleware
	r.Use(chimiddleware.StripSlashes)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID", "X-Response-Time"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	r.Use(limiter.Middleware)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		common.RespondError(w, time.Now(), constants.GetErrorMessage(constants.ErrCodeNotFound), nil, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		common.RespondError(w, time.Now(), constants.ErrMsgMethodNotAllowed, nil, http.StatusMethodNotAllowed)
	})

	logging.Info("Router initialized with metrics and logging middleware")
	// health check
	r.Get("/health", api.HealthCheckHandler(deps.Repo.Statistics, deps.UpSince))

	RegisterAPIRoutes(r, deps)

	// Profile pages are also reachable at the site root.
	r.Get("/{slug}", api.GetRepresentativeHandler(deps))

	return r
}
