package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		kind   string
		status int
	}{
		{name: "invalid input", err: NewInvalidInput("too short"), kind: KindInvalidInput, status: http.StatusBadRequest},
		{name: "conflict", err: NewConflict("taken"), kind: KindConflict, status: http.StatusConflict},
		{name: "unauthorized", err: NewUnauthorized("nope"), kind: KindUnauthorized, status: http.StatusUnauthorized},
		{name: "not found", err: NewNotFound("gone"), kind: KindNotFound, status: http.StatusNotFound},
		{name: "token", err: NewToken("expired", nil), kind: KindToken, status: http.StatusUnauthorized},
		{name: "internal store", err: NewInternal(KindStore, assert.AnError), kind: KindStore, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.status, tt.err.Status)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("driver: connection refused")
	err := NewInternal(KindStore, cause)

	require.ErrorIs(t, err, cause)
	// The driver text stays out of the client-facing message.
	assert.Equal(t, "internal server error", err.Message)
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "invalid input passes through", err: NewInvalidInput("too short"), wantStatus: http.StatusBadRequest, wantBody: "too short"},
		{name: "conflict passes through", err: NewConflict("email already registered"), wantStatus: http.StatusConflict, wantBody: "email already registered"},
		{name: "unauthorized passes through", err: NewUnauthorized("invalid email or password"), wantStatus: http.StatusUnauthorized, wantBody: "invalid email or password"},
		{name: "not found folds to unauthorized", err: NewNotFound("identity not found"), wantStatus: http.StatusUnauthorized, wantBody: "unauthorized"},
		{name: "internal hides cause", err: NewInternal(KindStore, errors.New("pq: secret dsn")), wantStatus: http.StatusInternalServerError, wantBody: "internal server error"},
		{name: "plain error is internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantBody: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := Translate(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
