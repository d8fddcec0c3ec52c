package audit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Sink persists or forwards one event.
type Sink interface {
	Emit(ctx context.Context, ev Event) error
}

// LogSink writes events to the structured log. It is used when no broker is
// configured.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(ctx context.Context, ev Event) error {
	s.logger.InfoContext(ctx, "audit",
		"id", ev.ID,
		"category", ev.Category,
		"action", ev.Action,
		"account_id", ev.AccountID,
		"submission_id", ev.SubmissionID,
		"operator_id", ev.OperatorID,
		"request_id", ev.RequestID,
		"client", ev.Client,
		"sections", ev.Sections,
		"reason", ev.Reason,
	)
	return nil
}

// Publisher enriches events and hands them to a bounded queue drained by a
// Worker. Emit never blocks; when the queue is full the event is dropped and
// counted.
type Publisher struct {
	queue   chan Event
	logger  *slog.Logger
	dropped atomic.Int64
}

// NewPublisher creates a publisher with a queue of the given capacity.
func NewPublisher(capacity int, logger *slog.Logger) *Publisher {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Publisher{queue: make(chan Event, capacity), logger: logger}
}

// Emit enriches ev from ctx and enqueues it.
func (p *Publisher) Emit(ctx context.Context, ev Event) error {
	ev = Enrich(ctx, ev)
	select {
	case p.queue <- ev:
	default:
		p.dropped.Add(1)
		p.logger.WarnContext(ctx, "audit queue full, event dropped",
			"action", ev.Action,
			"account_id", ev.AccountID,
			"request_id", ev.RequestID,
		)
	}
	return nil
}

// Dropped returns the number of events dropped because the queue was full.
func (p *Publisher) Dropped() int64 { return p.dropped.Load() }

// Inbox exposes the queue to a Worker.
func (p *Publisher) Inbox() <-chan Event { return p.queue }
