package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkazantsev/authgate/internal/testutil"
)

func TestLogging_Handle(t *testing.T) {
	t.Parallel()

	lg := testutil.MakeNoopLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	m := NewLogging(lg)

	req := httptest.NewRequest(http.MethodGet, "/public/login", nil)
	rec := httptest.NewRecorder()

	m.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)

	requestID := rec.Header().Get("X-Request-Id")
	require.NotEmpty(t, requestID)
	_, err := uuid.Parse(requestID)
	assert.NoError(t, err)
}

func TestLogging_Handle_UniqueRequestIDs(t *testing.T) {
	t.Parallel()

	lg := testutil.MakeNoopLogger()
	m := NewLogging(lg)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	ids := make(map[string]struct{})
	for range 5 {
		rec := httptest.NewRecorder()
		m.Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		ids[rec.Header().Get("X-Request-Id")] = struct{}{}
	}

	assert.Len(t, ids, 5)
}
