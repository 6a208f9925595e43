package aircraft

import "context"

// Store persists named fleets.
//
// Error contract mirrors the directive store: Get returns a wrapped
// sentinel.ErrNotFound for unknown names, Save upserts, infrastructure
// failures come back wrapped with operation context.
type Store interface {
	Save(ctx context.Context, fleet Fleet) error
	Get(ctx context.Context, name string) (*Fleet, error)
	List(ctx context.Context) ([]Fleet, error)
	Delete(ctx context.Context, name string) error
}
