package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/climaplus/climaplus/internal/handler/dto"
	"github.com/climaplus/climaplus/internal/model"
	"github.com/climaplus/climaplus/internal/service"
)

// AuthProvider defines the auth operations required by AuthHandler.
type AuthProvider interface {
	Register(ctx context.Context, input service.RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (*service.SessionInfo, error)
}

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	svc    AuthProvider
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc AuthProvider, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		logger: logger,
	}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeRegisterError(w, http.StatusBadRequest, "all fields required")
		return
	}

	user, err := h.svc.Register(r.Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		h.handleRegisterError(w, err)
		return
	}

	h.logger.Info("user_registered",
		"user_id", user.ID,
		"email", user.Email,
	)

	writeJSON(w, http.StatusCreated, dto.RegisterResponse{
		Success: true,
		User:    user.Public(),
	})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// A body that cannot be parsed is a client error, not an
		// authentication failure.
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	session, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same status and body for unknown email and wrong
			// password: the response must not reveal which one failed.
			writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid credentials"})
			return
		}
		h.logger.Error("login_failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	h.logger.Info("user_logged_in", "user_id", session.UserID)

	writeJSON(w, http.StatusOK, session)
}

// handleRegisterError maps registration errors to HTTP responses.
func (h *AuthHandler) handleRegisterError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		h.writeRegisterError(w, http.StatusBadRequest, "all fields required")
	case errors.Is(err, service.ErrInvalidEmail):
		h.writeRegisterError(w, http.StatusBadRequest, "invalid email format")
	case errors.Is(err, service.ErrPasswordTooShort):
		h.writeRegisterError(w, http.StatusBadRequest, "password too short")
	case errors.Is(err, service.ErrEmailExists):
		h.writeRegisterError(w, http.StatusConflict, "email already registered")
	default:
		h.logger.Error("registration_failed", "error", err)
		h.writeRegisterError(w, http.StatusInternalServerError, "internal server error")
	}
}

// writeRegisterError writes a registration error response.
func (h *AuthHandler) writeRegisterError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.RegisterErrorResponse{
		Success: false,
		Error:   message,
	})
}
