package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	closed       chan struct{}
	once         sync.Once
	shutdownDone atomic.Bool
	listenErr    error
}

func newFakeServer() *fakeServer {
	return &fakeServer{closed: make(chan struct{})}
}

func (s *fakeServer) ListenAndServe() error {
	if s.listenErr != nil {
		return s.listenErr
	}
	<-s.closed
	return http.ErrServerClosed
}

func (s *fakeServer) Shutdown(context.Context) error {
	s.once.Do(func() { close(s.closed) })
	// in-flight handlers still publishing
	time.Sleep(30 * time.Millisecond)
	s.shutdownDone.Store(true)
	return nil
}

type fakeWorker struct {
	server            *fakeServer
	stoppedAfterClose atomic.Bool
	stopped           chan struct{}
}

func (w *fakeWorker) Run(ctx context.Context) error {
	defer close(w.stopped)
	<-ctx.Done()
	w.stoppedAfterClose.Store(w.server.shutdownDone.Load())
	return ctx.Err()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServeStopsWorkerAfterShutdown(t *testing.T) {
	srv := newFakeServer()
	worker := &fakeWorker{server: srv, stopped: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, worker, discardLogger()) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return")
	}
	<-worker.stopped
	assert.True(t, worker.stoppedAfterClose.Load(), "worker stopped before the server finished shutting down")
}

func TestServeStopsWorkerWhenServerFails(t *testing.T) {
	srv := newFakeServer()
	srv.listenErr = errors.New("address in use")
	worker := &fakeWorker{server: srv, stopped: make(chan struct{})}

	err := serve(context.Background(), srv, worker, discardLogger())
	require.ErrorContains(t, err, "address in use")

	<-worker.stopped
	assert.True(t, worker.stoppedAfterClose.Load())
}
