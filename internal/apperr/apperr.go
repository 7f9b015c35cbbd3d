// Package apperr defines the typed error that crosses the API boundary.
// Every failure in the core is reduced to exactly one Error carrying a
// symbolic kind, a message, and an HTTP status hint. Handlers translate it
// with the rules in Translate; internal causes stay attached for logging
// via Unwrap but are never serialized to clients.
package apperr

import "net/http"

// Error kinds. These are symbolic categories, not free text.
const (
	KindInvalidInput  = "invalid_input"
	KindConflict      = "conflict"
	KindUnauthorized  = "unauthorized"
	KindNotFound      = "not_found"
	KindToken         = "token"
	KindHash          = "hash"
	KindStore         = "store"
	KindSerialization = "serialization"
	KindSystemTime    = "system_time"
	KindInternal      = "internal"
)

// Error is an API-facing error with a transport-status hint.
type Error struct {
	Kind    string
	Message string
	Status  int
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewInvalidInput reports a client-correctable request problem.
func NewInvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message, Status: http.StatusBadRequest}
}

// NewConflict reports a duplicate identity key.
func NewConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message, Status: http.StatusConflict}
}

// NewUnauthorized reports a failed credential or token check.
func NewUnauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message, Status: http.StatusUnauthorized}
}

// NewNotFound reports an absent record. Handlers fold this into an
// unauthorized response before it leaves the process.
func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, Status: http.StatusNotFound}
}

// NewToken reports an invalid, malformed, or expired token.
func NewToken(message string, cause error) *Error {
	return &Error{Kind: KindToken, Message: message, Status: http.StatusUnauthorized, cause: cause}
}

// NewInternal reports a server-side failure of the given kind (hash, store,
// serialization, system_time, internal). The cause is kept for logs only.
func NewInternal(kind string, cause error) *Error {
	return &Error{Kind: kind, Message: "internal server error", Status: http.StatusInternalServerError, cause: cause}
}

// Translate maps any error to the transport status and the caller-safe
// message for the response body. Not-found is reported as unauthorized so
// that lookups cannot be used to enumerate identities, and server-side
// kinds never leak their cause text.
func Translate(err error) (int, string) {
	apiErr, ok := err.(*Error)
	if !ok {
		return http.StatusInternalServerError, "internal server error"
	}

	switch {
	case apiErr.Kind == KindNotFound:
		return http.StatusUnauthorized, "unauthorized"
	case apiErr.Status >= http.StatusInternalServerError:
		return apiErr.Status, "internal server error"
	default:
		return apiErr.Status, apiErr.Message
	}
}
