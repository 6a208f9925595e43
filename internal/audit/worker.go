package audit

import (
	"context"
	"log/slog"
)

// Worker drains verdict events from a channel and hands them to the
// publisher. Publish failures are logged and skipped so a flaky broker
// never blocks comparison requests behind a full inbox.
type Worker struct {
	publisher Publisher
	inbox     <-chan Event
	logger    *slog.Logger
}

func NewWorker(publisher Publisher, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{publisher: publisher, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.publisher.Publish(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "audit publish failed",
					"error", err,
					"run_id", event.RunID,
					"directive_label", event.DirectiveLabel,
				)
			}
		}
	}
}
