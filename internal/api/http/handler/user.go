package handler

import (
	"context"
	"net/http"

	"github.com/mkazantsev/authgate/internal/apperr"
	"github.com/mkazantsev/authgate/internal/logger"
	"github.com/mkazantsev/authgate/internal/model"
)

// IdentityService resolves an authenticated subject to its user.
type IdentityService interface {
	Resolve(ctx context.Context, subject string) (model.User, error)
}

// User handles HTTP endpoints for the authenticated user's profile.
type User struct {
	identityService IdentityService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(identityService IdentityService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		identityService: identityService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

type profileResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Profile returns the profile of the authenticated user.
func (h *User) Profile(w http.ResponseWriter, r *http.Request) {
	subject, ok := h.contextManager.GetSubjectFromContext(r.Context())
	if !ok {
		h.logger.Error("User handler: subject missing from request context")
		writeError(w, h.logger, apperr.NewUnauthorized("unauthorized"))
		return
	}

	h.logger.Debug("User handler: processing profile request", "subject", subject)

	user, err := h.identityService.Resolve(r.Context(), subject)
	if err != nil {
		h.logger.Error("User handler: profile resolution failed",
			"subject", subject,
			"error", err.Error())
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, profileResponse{
		Email: user.Email,
		Name:  user.Name,
	})
}
