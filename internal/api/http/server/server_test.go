package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkazantsev/authgate/internal/mocks"
)

func TestHTTPServer_Address(t *testing.T) {
	t.Parallel()

	s := NewHTTPServer(http.NewServeMux(), ":8080")
	assert.Equal(t, ":8080", s.Address())
}

func TestHTTPServer_Start_ListenError(t *testing.T) {
	t.Parallel()

	s := NewHTTPServer(http.NewServeMux(), ":8080")
	sec := &mocks.SecurityLayer{}
	sec.On("Listen", "tcp", ":8080").Return(nil, assert.AnError)

	err := s.Start(sec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestHTTPServer_StartAndStop(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := NewHTTPServer(mux, ln.Addr().String())
	sec := &mocks.SecurityLayer{}
	sec.On("Listen", "tcp", ln.Addr().String()).Return(ln, nil)

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start(sec) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		var getErr error
		resp, getErr = http.Get(fmt.Sprintf("http://%s/healthz", s.Address()))
		return getErr == nil
	}, 2*time.Second, 20*time.Millisecond)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, s.Stop(context.Background()))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop in time")
	}
}
