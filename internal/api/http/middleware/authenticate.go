package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mkazantsev/authgate/internal/apperr"
	"github.com/mkazantsev/authgate/internal/logger"
	"github.com/mkazantsev/authgate/internal/model"
)

// Authenticate validates bearer tokens and injects the subject into the
// request context.
type Authenticate struct {
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager model.TokenManager, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenManager: tokenManager, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and passes the
// request on with the subject set in its context.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Debug("Authenticate middleware: missing authorization header",
				"path", r.URL.Path)
			writeError(w, m.logger, apperr.NewInvalidInput("missing authorization header"))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, err := m.tokenManager.Parse(tokenString)
		if err != nil {
			m.logger.Debug("Authenticate middleware: invalid authorization token",
				"path", r.URL.Path,
				"error", err.Error())
			writeError(w, m.logger, apperr.NewToken("invalid authorization token", err))
			return
		}

		ctx := m.contextManager.SetSubjectToContext(r.Context(), subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	status, message := apperr.Translate(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(map[string]string{"message": message}); encErr != nil {
		log.Error("middleware: failed to encode response", "error", encErr.Error())
	}
}
