package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// fakeServer blocks in Start until Shutdown, or fails immediately with startErr.
type fakeServer struct {
	startErr    error
	shutdownErr error
	stopped     chan struct{}
	shutdowns   atomic.Int32
}

func newFakeServer() *fakeServer {
	return &fakeServer{stopped: make(chan struct{})}
}

func (s *fakeServer) Start(ctx context.Context) error {
	if s.startErr != nil {
		return s.startErr
	}
	<-s.stopped
	return nil
}

func (s *fakeServer) Shutdown(ctx context.Context) error {
	if s.shutdowns.Add(1) == 1 {
		close(s.stopped)
	}
	return s.shutdownErr
}

func TestServe(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("stops-on-context-cancel", func(t *testing.T) {
		api, metrics := newFakeServer(), newFakeServer()
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() { done <- serve(ctx, logger, time.Second, api, metrics) }()
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not return after cancel")
		}
		assert.Equal(t, int32(1), api.shutdowns.Load())
		assert.Equal(t, int32(1), metrics.shutdowns.Load())
	})

	t.Run("start-failure-shuts-down-the-rest", func(t *testing.T) {
		api := newFakeServer()
		metrics := newFakeServer()
		metrics.startErr = errors.New("address already in use")

		err := serve(context.Background(), logger, time.Second, api, metrics)

		require.ErrorContains(t, err, "address already in use")
		assert.Equal(t, int32(1), api.shutdowns.Load())
	})

	t.Run("shutdown-errors-are-returned", func(t *testing.T) {
		api := newFakeServer()
		api.shutdownErr = errors.New("deadline exceeded")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := serve(ctx, logger, time.Second, api)

		require.ErrorContains(t, err, "deadline exceeded")
	})
}
