package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/assignbox/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	const origin = "http://localhost:5173"

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusTeapot)
	})
	h := httpx.Chain(next, httpx.CORS(origin))

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		reached = false
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	preflight := func(from, method string) *http.Request {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/user/login", nil)
		req.Header.Set("Origin", from)
		req.Header.Set("Access-Control-Request-Method", method)
		return req
	}

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/user/login", nil)
		req.Header.Set("Origin", origin)
		rr := serve(req)

		require.True(t, reached)
		require.Equal(t, http.StatusTeapot, rr.Code)
		require.Equal(t, origin, rr.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
		require.Contains(t, rr.Header().Values("Vary"), "Origin")
	})

	t.Run("preflight", func(t *testing.T) {
		rr := serve(preflight(origin, http.MethodPost))

		require.False(t, reached)
		require.Equal(t, http.StatusNoContent, rr.Code)
		require.Equal(t, origin, rr.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
		require.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
		require.Equal(t, "600", rr.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("preflight with a method not allowed", func(t *testing.T) {
		rr := serve(preflight(origin, http.MethodDelete))

		require.False(t, reached)
		require.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
		require.Empty(t, rr.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("preflight from a foreign origin", func(t *testing.T) {
		rr := serve(preflight("http://evil.example", http.MethodPost))

		require.False(t, reached)
		require.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Origin", "http://evil.example")
		rr := serve(req)

		require.True(t, reached)
		require.Equal(t, http.StatusTeapot, rr.Code)
		require.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestCORSDisabled(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := httpx.Chain(next, httpx.CORS(""))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
