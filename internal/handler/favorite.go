package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/climaplus/climaplus/internal/handler/dto"
	"github.com/climaplus/climaplus/internal/service"
)

// FavoriteProvider defines the favorites operations required by FavoriteHandler.
type FavoriteProvider interface {
	List(ctx context.Context, userID int64) ([]string, error)
	Add(ctx context.Context, userID int64, city string) error
	Remove(ctx context.Context, userID int64, city string) error
}

// FavoriteHandler handles HTTP requests for favorite cities.
type FavoriteHandler struct {
	svc    FavoriteProvider
	logger *slog.Logger
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(svc FavoriteProvider, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/favorites?userId=N.
// Responds with an ordered array of city names, newest first.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "userId is required"})
		return
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "userId is required"})
		return
	}

	cities, err := h.svc.List(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cities)
}

// Add handles POST /api/favorites.
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeFavorite(w, r)
	if !ok {
		return
	}

	if err := h.svc.Add(r.Context(), req.UserID, req.City); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("favorite_added",
		"user_id", req.UserID,
		"city", req.City,
	)

	writeJSON(w, http.StatusCreated, dto.MessageResponse{Message: "favorite saved"})
}

// Remove handles DELETE /api/favorites.
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeFavorite(w, r)
	if !ok {
		return
	}

	if err := h.svc.Remove(r.Context(), req.UserID, req.City); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("favorite_removed",
		"user_id", req.UserID,
		"city", req.City,
	)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "favorite removed"})
}

// decodeFavorite parses the shared add/remove request body.
func (h *FavoriteHandler) decodeFavorite(w http.ResponseWriter, r *http.Request) (dto.FavoriteRequest, bool) {
	var req dto.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "userId and city are required"})
		return req, false
	}
	return req, true
}

// handleServiceError maps favorites service errors to HTTP responses.
func (h *FavoriteHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingUserID):
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "userId is required"})
	case errors.Is(err, service.ErrMissingCity):
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "userId and city are required"})
	case errors.Is(err, service.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
	case errors.Is(err, service.ErrFavoriteNotFound):
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "favorite not found"})
	default:
		h.logger.Error("favorites_error", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
