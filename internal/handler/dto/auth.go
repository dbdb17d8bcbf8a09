// Package dto defines request and response shapes for the HTTP API.
package dto

import "github.com/climaplus/climaplus/internal/model"

// RegisterRequest is the POST /api/register payload.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// RegisterResponse is the successful registration body.
type RegisterResponse struct {
	Success bool             `json:"success"`
	User    model.PublicUser `json:"user"`
}

// RegisterErrorResponse is the failed registration body.
type RegisterErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// LoginRequest is the POST /api/login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
