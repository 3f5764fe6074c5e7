package handlers

import (
	"net/http"
	"time"

	"botscope/internal/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterOptions struct {
	Origins       []string
	ReviewLimiter *middleware.RateLimiter
	SubmitReview  http.HandlerFunc
	// Registry gets the HTTP metrics; nil disables /metrics.
	Registry *prometheus.Registry
}

func (s *Server) Routes(opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(s.Log))
	r.Use(middleware.CORS(opts.Origins))
	if opts.Registry != nil {
		r.Use(middleware.NewMetrics(opts.Registry).Instrument)
	}
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.Health)
	if opts.Registry != nil {
		gatherers := prometheus.Gatherers{opts.Registry, prometheus.DefaultGatherer}
		r.Handle("/metrics", promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{}))
	}

	registerRoutes := func(api chi.Router) {
		api.Get("/bots", s.GetBots)
		api.Get("/bots/facets", s.GetBotFacets)
		api.Get("/bots/{id}", s.GetBot)
		if opts.SubmitReview != nil {
			if opts.ReviewLimiter != nil {
				api.With(opts.ReviewLimiter.Middleware).Post("/reviews", opts.SubmitReview)
			} else {
				api.Post("/reviews", opts.SubmitReview)
			}
		}
	}

	// /api is kept as an alias of /api/v1 for the first frontend build.
	r.Route("/api/v1", registerRoutes)
	r.Route("/api", registerRoutes)

	return r
}
