package audit

import "context"

// Publisher delivers verdict events to a durable sink.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close()
}
