package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/climaplus/climaplus/internal/handler/dto"
	"github.com/climaplus/climaplus/internal/metrics"
)

// WeatherProvider fetches raw weather JSON for a city.
type WeatherProvider interface {
	Current(ctx context.Context, city string) (json.RawMessage, error)
}

// WeatherHandler proxies weather lookups to the upstream provider.
type WeatherHandler struct {
	provider WeatherProvider
	logger   *slog.Logger
	metrics  metrics.Recorder
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(provider WeatherProvider, logger *slog.Logger, recorder metrics.Recorder) *WeatherHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &WeatherHandler{
		provider: provider,
		logger:   logger,
		metrics:  recorder,
	}
}

// Current handles GET /api/weather?city=Name.
// The provider body is relayed verbatim on success. Every failure,
// including a missing city parameter, collapses to a 500 with a generic
// body; the upstream detail goes to the log only.
func (h *WeatherHandler) Current(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	body, err := h.provider.Current(r.Context(), city)
	if err != nil {
		h.logger.Error("weather_fetch_failed",
			"city", city,
			"error", err,
		)
		h.metrics.IncWeatherRequest("error")
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to fetch weather"})
		return
	}

	h.metrics.IncWeatherRequest("success")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
