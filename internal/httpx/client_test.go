package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shoplens/shoplens/internal/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, attempts int) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second, attempts, time.Millisecond, logging.NewDefault())
}

func TestGetJSONDecodesBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NotEmpty(t, r.URL.Query().Get("_t"), "cache-busting param expected")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD"}`))
	}, 3)

	var out struct {
		Base string `json:"base"`
	}
	require.NoError(t, c.GetJSON(context.Background(), "/latest/USD", &out))
	require.Equal(t, "USD", out.Base)
}

func TestGetJSONRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}, 3)

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, c.GetJSON(context.Background(), "/flaky", &out))
	require.True(t, out.OK)
	require.Equal(t, int32(3), calls.Load())
}

func TestGetJSONRetryAttemptsAreCapped(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}, 2)

	var out any
	err := c.GetJSON(context.Background(), "/down", &out)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusInternalServerError, statusErr.Status)
	require.Equal(t, int32(3), calls.Load(), "first try plus two retries")
}

func TestGetJSONDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}, 3)

	var out any
	err := c.GetJSON(context.Background(), "/missing", &out)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusNotFound, statusErr.Status)
	require.Equal(t, int32(1), calls.Load())
}
