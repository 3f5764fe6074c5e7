package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"botscope/internal/metrics"
	"botscope/internal/transport"
)

// Health reports ok once the catalog can be loaded.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	entries, version, err := s.Catalog.Entries(ctx)
	if err != nil {
		s.logWithRequest(r).Error("health: catalog error", slog.String("error", err.Error()))
		transport.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	metrics.CatalogEntries.Set(float64(len(entries)))

	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"entries": len(entries),
		"version": version,
	})
}
