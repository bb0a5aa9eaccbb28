package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/comparepco/comparepco/internal/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGracefulServer(t *testing.T) {
	e := echo.New()

	gs := NewGracefulServer(e, logger.NewNopLogger(), 8080, 0)
	assert.Equal(t, defaultShutdownTimeout, gs.shutdownTimeout)

	gs = NewGracefulServer(e, logger.NewNopLogger(), 8080, 5*time.Second)
	assert.Equal(t, 5*time.Second, gs.shutdownTimeout)
}

func TestGracefulServerServe(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	gs := NewGracefulServer(e, logger.NewNopLogger(), 0, time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- gs.Serve(ctx) }()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://%s/ping", e.ListenerAddr().String()))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestGracefulServerListenError(t *testing.T) {
	first := echo.New()
	first.HideBanner = true
	first.HidePort = true
	go func() { _ = first.Start(":0") }()
	require.Eventually(t, func() bool { return first.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)
	defer first.Close()

	p := first.ListenerAddr().(*net.TCPAddr).Port

	second := echo.New()
	second.HideBanner = true
	second.HidePort = true
	gs := NewGracefulServer(second, logger.NewNopLogger(), p, time.Second)
	assert.Error(t, gs.Serve(context.Background()))
}

func TestShutdownManager(t *testing.T) {
	t.Run("runs in registration order", func(t *testing.T) {
		sm := NewShutdownManager(logger.NewNopLogger())
		var order []string
		sm.Register(func(ctx context.Context) error { order = append(order, "nats"); return nil })
		sm.Register(func(ctx context.Context) error { order = append(order, "redis"); return nil })
		sm.Register(func(ctx context.Context) error { order = append(order, "postgres"); return nil })

		assert.NoError(t, sm.Shutdown(context.Background()))
		assert.Equal(t, []string{"nats", "redis", "postgres"}, order)
	})

	t.Run("failures do not stop later components", func(t *testing.T) {
		sm := NewShutdownManager(logger.NewNopLogger())
		called := 0
		sm.Register(func(ctx context.Context) error { called++; return fmt.Errorf("drain timeout") })
		sm.Register(func(ctx context.Context) error { called++; return nil })

		assert.NoError(t, sm.Shutdown(context.Background()))
		assert.Equal(t, 2, called)
	})

	t.Run("nil functions are ignored", func(t *testing.T) {
		sm := NewShutdownManager(logger.NewNopLogger())
		sm.Register(nil)
		assert.NoError(t, sm.Shutdown(context.Background()))
	})

	t.Run("concurrent registration", func(t *testing.T) {
		sm := NewShutdownManager(logger.NewNopLogger())
		var wg sync.WaitGroup
		var mu sync.Mutex
		called := 0
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sm.Register(func(ctx context.Context) error {
					mu.Lock()
					called++
					mu.Unlock()
					return nil
				})
			}()
		}
		wg.Wait()

		assert.NoError(t, sm.Shutdown(context.Background()))
		assert.Equal(t, 10, called)
	})
}
