package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"botscope/internal/catalog"
	"botscope/internal/httpx"
	"botscope/internal/listing"
	"botscope/internal/metrics"
	"botscope/internal/transport"

	"github.com/go-chi/chi/v5"
)

const nothingFound = "nothing found"

type listFilter struct {
	Query     string      `json:"query"`
	MinRating int         `json:"min_rating"`
	Language  string      `json:"language"`
	Tab       listing.Tab `json:"tab"`
	Compact   bool        `json:"compact"`
}

type listResponse struct {
	Items   []catalog.BotEntry `json:"items"`
	Count   int                `json:"count"`
	Total   int                `json:"total"`
	Filter  listFilter         `json:"filter"`
	Empty   bool               `json:"empty"`
	Message string             `json:"message,omitempty"`
	Version string             `json:"version"`
}

// GetBots applies the query string to a fresh view-model and returns the derived list.
// Query params: q, min_rating, lang, tab, compact.
func (s *Server) GetBots(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	values := r.URL.Query()

	raw := catalog.ListQuery{
		Query:     values.Get("q"),
		MinRating: strings.TrimSpace(values.Get("min_rating")),
		Language:  strings.TrimSpace(values.Get("lang")),
		Tab:       strings.TrimSpace(values.Get("tab")),
		Compact:   strings.ToLower(strings.TrimSpace(values.Get("compact"))),
	}
	if err := s.Val.Struct(raw); err != nil {
		log.Warn("bots list: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(s.Val.ValidationErrors(err)))
		return
	}

	tab, err := listing.ParseTab(raw.Tab)
	if err != nil {
		log.Warn("bots list: unknown tab", slog.String("tab", raw.Tab))
		transport.WriteError(w, http.StatusBadRequest, listing.ErrUnknownTab.Error(), nil)
		return
	}

	minRating, err := httpx.QueryInt(values, "min_rating", catalog.MinRating)
	if err != nil {
		log.Warn("bots list: invalid min_rating")
		transport.WriteError(w, http.StatusBadRequest, "invalid min_rating", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entries, version, err := s.Catalog.Entries(ctx)
	if err != nil {
		log.Error("bots list: catalog error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "catalog unavailable", nil)
		return
	}

	vm := listing.New(entries, version)
	vm.SetQueryText(raw.Query)
	vm.SetMinRating(minRating)
	vm.SetLanguageFilter(raw.Language)
	if err := vm.SetActiveTab(tab); err != nil {
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	vm.SetCompactLayout(httpx.QueryBool(values, "compact"))
	state := vm.State()
	metrics.ListingRequestsTotal.WithLabelValues(state.ActiveTab.String()).Inc()

	key := listingCacheKey(vm.Version(), state)
	cached, ok, err := s.Cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.ListingCacheTotal.WithLabelValues("error").Inc()
		log.Warn("bots list: cache read failed", slog.String("error", err.Error()))
	case ok && json.Valid(cached):
		metrics.ListingCacheTotal.WithLabelValues("hit").Inc()
		log.Debug("bots list: cache hit")
		transport.WriteRaw(w, http.StatusOK, cached, "HIT")
		return
	case ok:
		metrics.ListingCacheTotal.WithLabelValues("error").Inc()
		log.Warn("bots list: dropping unreadable cache entry")
		if err := s.Cache.Delete(ctx, key); err != nil {
			log.Warn("bots list: cache delete failed", slog.String("error", err.Error()))
		}
	default:
		metrics.ListingCacheTotal.WithLabelValues("miss").Inc()
	}

	items := vm.Derive()
	resp := listResponse{
		Items: items,
		Count: len(items),
		Total: vm.Len(),
		Filter: listFilter{
			Query:     state.QueryText,
			MinRating: state.MinRating,
			Language:  state.LanguageFilter,
			Tab:       state.ActiveTab,
			Compact:   state.CompactLayout,
		},
		Empty:   len(items) == 0,
		Version: vm.Version(),
	}
	if resp.Empty {
		resp.Message = nothingFound
		metrics.ListingEmptyTotal.Inc()
	}

	payload, err := encodeJSON(resp)
	if err != nil {
		log.Error("bots list: encode error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "encode error", nil)
		return
	}
	if err := s.Cache.Set(ctx, key, payload, s.CacheTTL); err != nil {
		log.Warn("bots list: cache write failed", slog.String("error", err.Error()))
	}

	log.Info("bots list: ok", slog.String("tab", state.ActiveTab.String()), slog.Int("count", len(items)))
	transport.WriteRaw(w, http.StatusOK, payload, "MISS")
}

func (s *Server) GetBotFacets(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	facets, err := s.Catalog.Facets(ctx)
	if err != nil {
		log.Error("bots facets: catalog error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "catalog unavailable", nil)
		return
	}
	facets.Tabs = make([]string, 0, len(listing.Tabs))
	for _, tab := range listing.Tabs {
		facets.Tabs = append(facets.Tabs, tab.String())
	}

	log.Info("bots facets: ok", slog.Int("languages", len(facets.Languages)), slog.Int("tags", len(facets.Tags)))
	transport.WriteJSON(w, http.StatusOK, facets)
}

func (s *Server) GetBot(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("bots get: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entry, err := s.Catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			log.Warn("bots get: not found", slog.String("bot_id", id))
			transport.WriteError(w, http.StatusNotFound, "bot not found", nil)
			return
		}
		log.Error("bots get: catalog error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "catalog unavailable", nil)
		return
	}

	log.Info("bots get: ok", slog.String("bot_id", entry.ID))
	transport.WriteJSON(w, http.StatusOK, entry)
}
