package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkazantsev/authgate/internal/apperr"
	"github.com/mkazantsev/authgate/internal/logger"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// Auth handles HTTP endpoints for registration and login.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user and returns a session token.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("Auth handler: malformed registration body", "error", err.Error())
		writeError(w, h.logger, apperr.NewInvalidInput("invalid request body"))
		return
	}

	h.logger.Debug("Auth handler: processing registration request", "email", req.Email)

	token, err := h.authService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		writeError(w, h.logger, err)
		return
	}

	h.logger.Info("Auth handler: registration completed", "email", req.Email)

	writeJSON(w, h.logger, http.StatusCreated, tokenResponse{Token: token})
}

// Login verifies credentials and returns a session token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("Auth handler: malformed login body", "error", err.Error())
		writeError(w, h.logger, apperr.NewInvalidInput("invalid request body"))
		return
	}

	h.logger.Debug("Auth handler: processing login request", "email", req.Email)

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		writeError(w, h.logger, err)
		return
	}

	h.logger.Info("Auth handler: login completed", "email", req.Email)

	writeJSON(w, h.logger, http.StatusOK, tokenResponse{Token: token})
}
