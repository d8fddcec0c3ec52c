package audit

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *memorySink) Emit(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func (s *memorySink) snapshot() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublisherDropsWhenFull(t *testing.T) {
	p := NewPublisher(2, discardLogger())
	ctx := context.Background()

	for range 3 {
		require.NoError(t, p.Emit(ctx, Event{Action: ActionDraftSaved, AccountID: "ACC1"}))
	}

	assert.Equal(t, int64(1), p.Dropped())
	assert.Len(t, p.Inbox(), 2)
}

func TestWorkerDeliversAndDrains(t *testing.T) {
	p := NewPublisher(8, discardLogger())
	sink := &memorySink{}
	w := NewWorker(sink, p.Inbox(), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, p.Emit(context.Background(), Event{Action: ActionSubmitted, AccountID: "ACC1"}))
	assert.Eventually(t, func() bool { return len(sink.snapshot()) == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}

	// events queued after shutdown are flushed by the next drain
	require.NoError(t, p.Emit(context.Background(), Event{Action: ActionDraftDeleted, AccountID: "ACC2"}))
	w.drain()
	events := sink.snapshot()
	require.Len(t, events, 2)
	assert.Equal(t, ActionDraftDeleted, events[1].Action)
}

func TestWorkerLogsSinkFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	sink := &memorySink{err: errors.New("broker down")}
	inbox := make(chan Event, 1)
	inbox <- Event{ID: "e1", Action: ActionSubmitted}

	NewWorker(sink, inbox, logger).drain()

	assert.Contains(t, buf.String(), "audit sink failed")
	assert.Contains(t, buf.String(), "broker down")
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := sink.Emit(context.Background(), Event{
		Action:    ActionPartiallyPersisted,
		Category:  CategoryCompliance,
		AccountID: "ACC1",
		Sections:  map[string]string{"nominees": "ok", "poas": "failed"},
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"action":"nomination_partially_persisted"`)
	assert.Contains(t, buf.String(), `"poas":"failed"`)
}
