package qrz

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	apperrors "qrzlookup/cli/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTP_LoginSendsCredentials(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/xml/current/", r.URL.Path)
		assert.Equal(t, "n0call", r.URL.Query().Get("username"))
		assert.Equal(t, "p&ss word", r.URL.Query().Get("password"))
		w.Header().Set("Content-Type", "text/xml")
		_, _ = io.WriteString(w, loginOK)
	}))
	defer srv.Close()

	api := New(srv.URL+"/xml/current/", time.Second, discardLogger())
	env, err := api.Login(context.Background(), "n0call", "p&ss word")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", env.Session.Key)
	assert.EqualValues(t, 1, calls.Load())
}

func TestHTTP_LookupSendsSessionKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ABC123", r.URL.Query().Get("s"))
		assert.Equal(t, "W1AW", r.URL.Query().Get("callsign"))
		_, _ = io.WriteString(w, lookupW1AW)
	}))
	defer srv.Close()

	api := New(srv.URL, time.Second, discardLogger())
	env, err := api.Lookup(context.Background(), "ABC123", "W1AW")
	require.NoError(t, err)
	require.NotNil(t, env.Callsign)
	assert.Equal(t, "W1AW", env.Callsign.Call)
}

func TestHTTP_BadStatusIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second, discardLogger()).Login(context.Background(), "u", "p")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Transport))
	assert.Contains(t, err.Error(), "503")
}

func TestHTTP_UnreachableIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, time.Second, discardLogger()).Lookup(context.Background(), "k", "W1AW")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Transport))
}

func TestHTTP_GarbageBodyIsProtocolError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>oops</html>")
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second, discardLogger()).Login(context.Background(), "u", "p")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Protocol))
}

func TestHTTP_TimeoutIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := New(srv.URL, 50*time.Millisecond, discardLogger()).Login(context.Background(), "u", "p")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Transport))
}

func TestNew_DefaultTimeout(t *testing.T) {
	h := New("http://example.invalid", 0, nil).(*HTTP)
	assert.Equal(t, DefaultTimeout, h.client.Timeout)
}
