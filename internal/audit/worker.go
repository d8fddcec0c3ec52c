package audit

import (
	"context"
	"log/slog"
	"time"
)

// Worker drains queued events into a sink. Sink failures are logged and the
// event is dropped; auditing never fails a submission after the fact.
type Worker struct {
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{sink: sink, inbox: inbox, logger: logger}
}

// Run processes events until ctx is cancelled, then flushes what is already
// queued with a short grace period.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		case ev := <-w.inbox:
			w.emit(ctx, ev)
		}
	}
}

func (w *Worker) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		select {
		case ev := <-w.inbox:
			w.emit(ctx, ev)
		default:
			return
		}
	}
}

func (w *Worker) emit(ctx context.Context, ev Event) {
	if err := w.sink.Emit(ctx, ev); err != nil {
		w.logger.ErrorContext(ctx, "audit sink failed",
			"id", ev.ID,
			"action", ev.Action,
			"account_id", ev.AccountID,
			"error", err,
		)
	}
}
