package notify

import (
	"context"
	"log/slog"
)

// Worker consumes events from the publisher's inbox and delivers them to
// the sink. Delivery failures are logged and swallowed; the operational log
// is best-effort by design.
type Worker struct {
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{sink: sink, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-w.inbox:
			if w.sink == nil {
				continue
			}
			if err := w.sink.Send(ctx, ev); err != nil {
				w.logger.WarnContext(ctx, "operational log delivery failed",
					"error", err, "level", string(ev.Level))
			}
		}
	}
}
