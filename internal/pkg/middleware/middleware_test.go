package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestValidateAPIKey(t *testing.T) {
	mw := NewAPIKeyMiddleware(&models.APIKeyConfig{Scheduler: "scheduler-key"})

	tests := []struct {
		name         string
		apiKey       string
		allowed      []string
		expectedCode int
	}{
		{name: "missing key", apiKey: "", allowed: []string{"deadline-scheduler"}, expectedCode: http.StatusUnauthorized},
		{name: "wrong key", apiKey: "nope", allowed: []string{"deadline-scheduler"}, expectedCode: http.StatusUnauthorized},
		{name: "valid key", apiKey: "scheduler-key", allowed: []string{"deadline-scheduler"}, expectedCode: http.StatusOK},
		{name: "valid key for other service", apiKey: "scheduler-key", allowed: []string{"admin-service"}, expectedCode: http.StatusUnauthorized},
		{name: "unconfigured service never matches empty key", apiKey: "", allowed: []string{"admin-service"}, expectedCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/internal/bookings/b-1/check-deadlines", nil)
			if tt.apiKey != "" {
				req.Header.Set(APIKeyHeader, tt.apiKey)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := mw.ValidateAPIKey(tt.allowed...)(okHandler)(c)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRequestID, "abc")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, RequestIDMiddleware()(okHandler)(c))
		assert.Equal(t, "abc", rec.Header().Get(echo.HeaderXRequestID))
		assert.Equal(t, "abc", c.Get("request_id"))
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, RequestIDMiddleware()(okHandler)(c))
		assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
	})
}

func TestRateLimiterMiddleware(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	e := echo.New()
	limiter := IPRateLimiter(2, time.Minute, client)

	call := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/v1/bookings")
		require.NoError(t, limiter(okHandler)(c))
		return rec
	}

	assert.Equal(t, http.StatusOK, call().Code)
	rec := call()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = call()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	mr.FastForward(2 * time.Minute)
	assert.Equal(t, http.StatusOK, call().Code)
}

func TestRateLimiterFailsOpen(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, IPRateLimiter(1, time.Minute, client)(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
