package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(ctx context.Context) error {
	return f.err
}

type fakeConn bool

func (f fakeConn) IsConnected() bool {
	return bool(f)
}

func newService(pgErr error, natsUp bool) *HealthService {
	svc := NewHealthService(logger.NewNopLogger())
	svc.AddChecker("postgres", NewPostgresHealthChecker(fakePinger{err: pgErr}))
	svc.AddChecker("redis", NewRedisHealthChecker(fakePinger{}))
	svc.AddChecker("nats", NewNATSHealthChecker(fakeConn(natsUp)))
	return svc
}

func TestCheckAllHealth(t *testing.T) {
	t.Run("all healthy", func(t *testing.T) {
		resp := newService(nil, true).CheckAllHealth(context.Background())
		assert.Equal(t, "healthy", resp.Status)
		assert.Len(t, resp.Dependencies, 3)
		for name, dep := range resp.Dependencies {
			assert.Equal(t, "healthy", dep.Status, name)
		}
	})

	t.Run("postgres down", func(t *testing.T) {
		resp := newService(errors.New("connection refused"), true).CheckAllHealth(context.Background())
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "unhealthy", resp.Dependencies["postgres"].Status)
		assert.Equal(t, "connection refused", resp.Dependencies["postgres"].Error)
		assert.Equal(t, "healthy", resp.Dependencies["redis"].Status)
	})

	t.Run("nats disconnected", func(t *testing.T) {
		resp := newService(nil, false).CheckAllHealth(context.Background())
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "NATS not connected", resp.Dependencies["nats"].Error)
	})

	t.Run("nil clients are skipped", func(t *testing.T) {
		svc := NewHealthService(logger.NewNopLogger())
		svc.AddChecker("postgres", NewPostgresHealthChecker(nil))
		svc.AddChecker("nats", NewNATSHealthChecker(nil))
		assert.Equal(t, "healthy", svc.CheckAllHealth(context.Background()).Status)
	})
}

func TestRegisterEnhancedHealthEndpoints(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		svc          *HealthService
		expectedCode int
		expectedKey  string
		expectedVal  string
	}{
		{name: "basic", path: "/health", svc: newService(nil, true), expectedCode: http.StatusOK, expectedKey: "status", expectedVal: "ok"},
		{name: "live", path: "/health/live", svc: newService(errors.New("down"), true), expectedCode: http.StatusOK, expectedKey: "status", expectedVal: "alive"},
		{name: "ready", path: "/health/ready", svc: newService(nil, true), expectedCode: http.StatusOK, expectedKey: "status", expectedVal: "ready"},
		{name: "not ready", path: "/health/ready", svc: newService(errors.New("down"), true), expectedCode: http.StatusServiceUnavailable, expectedKey: "status", expectedVal: "unhealthy"},
		{name: "detailed", path: "/health/detailed", svc: newService(nil, true), expectedCode: http.StatusOK, expectedKey: "version", expectedVal: "1.2.3"},
		{name: "detailed unhealthy", path: "/health/detailed", svc: newService(nil, false), expectedCode: http.StatusServiceUnavailable, expectedKey: "status", expectedVal: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			RegisterEnhancedHealthEndpoints(e, "bookings-service", "1.2.3", tt.svc)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedVal, body[tt.expectedKey])
			assert.Equal(t, "bookings-service", body["service"])
		})
	}
}
