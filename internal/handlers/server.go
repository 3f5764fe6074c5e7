package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"botscope/internal/cache"
	"botscope/internal/catalog"
	"botscope/internal/middleware"
	"botscope/internal/validation"
)

// Server serves the public listing endpoints.
type Server struct {
	Catalog  *catalog.Service
	Val      *validation.Validator
	Log      *slog.Logger
	Cache    cache.Cache
	CacheTTL time.Duration
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}
