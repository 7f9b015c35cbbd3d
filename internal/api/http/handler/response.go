package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mkazantsev/authgate/internal/apperr"
	"github.com/mkazantsev/authgate/internal/logger"
)

// messageResponse is the uniform JSON failure body.
type messageResponse struct {
	Message string `json:"message"`
}

// tokenResponse carries an issued session token.
type tokenResponse struct {
	Token string `json:"token"`
}

func writeJSON(w http.ResponseWriter, log *logger.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("handler: failed to encode response", "error", err.Error())
	}
}

// writeError translates any error into the uniform status/message body.
func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	status, message := apperr.Translate(err)
	writeJSON(w, log, status, messageResponse{Message: message})
}
