package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownClosesInReverseOrder(t *testing.T) {
	sm := NewShutdownManager(0)

	var order []string
	sm.RegisterCloser(CloserFunc(func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	}))
	sm.RegisterCloser(CloserFunc(func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	}))

	require.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, []string{"second", "first"}, order)
	assert.True(t, sm.IsShuttingDown())
}

func TestShutdownRunsOnce(t *testing.T) {
	sm := NewShutdownManager(0)

	calls := 0
	sm.RegisterCloser(CloserFunc(func(ctx context.Context) error {
		calls++
		return errors.New("boom")
	}))

	err := sm.Shutdown(context.Background())
	assert.Error(t, err)

	// The second call is a no-op and reports no error.
	require.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestShutdownMiddlewareRejectsDuringShutdown(t *testing.T) {
	sm := NewShutdownManager(0)
	handler := ShutdownMiddleware(sm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, sm.Shutdown(context.Background()))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestShutdownPassesTimeoutContextToClosers(t *testing.T) {
	sm := NewShutdownManager(5 * time.Second)

	var deadline time.Time
	var hasDeadline bool
	sm.RegisterCloser(CloserFunc(func(ctx context.Context) error {
		deadline, hasDeadline = ctx.Deadline()
		return nil
	}))

	before := time.Now()
	require.NoError(t, sm.Shutdown(context.Background()))
	require.True(t, hasDeadline, "closer context carries the shutdown deadline")
	assert.WithinDuration(t, before.Add(5*time.Second), deadline, time.Second)
}

func TestShutdownChCloses(t *testing.T) {
	sm := NewShutdownManager(0)

	select {
	case <-sm.ShutdownCh():
		t.Fatal("channel closed before shutdown")
	default:
	}

	require.NoError(t, sm.Shutdown(context.Background()))

	select {
	case <-sm.ShutdownCh():
	default:
		t.Fatal("channel not closed after shutdown")
	}
}
