package reviews

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"botscope/internal/httpx"
	"botscope/internal/metrics"
	"botscope/internal/middleware"
	"botscope/internal/transport"
	"botscope/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req SubmitRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("reviews submit: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("reviews submit: validation error")
		metrics.ReviewSubmissionsTotal.WithLabelValues("invalid").Inc()
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	review, err := h.service.Submit(ctx, req.Form())
	if err != nil {
		if errors.Is(err, ErrIncomplete) {
			log.Warn("reviews submit: incomplete form")
			metrics.ReviewSubmissionsTotal.WithLabelValues("invalid").Inc()
			transport.WriteError(w, http.StatusBadRequest, "form incomplete", nil)
			return
		}
		log.Error("reviews submit: delivery error", slog.String("error", err.Error()))
		metrics.ReviewSubmissionsTotal.WithLabelValues("failed").Inc()
		transport.WriteError(w, http.StatusBadGateway, "review delivery failed", nil)
		return
	}

	metrics.ReviewSubmissionsTotal.WithLabelValues("accepted").Inc()
	log.Info("reviews submit: ok", slog.String("review_id", review.ID), slog.Int("rating", review.Rating))
	transport.WriteJSON(w, http.StatusAccepted, map[string]interface{}{
		"status": "accepted",
		"review": review,
	})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
