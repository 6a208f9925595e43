package directive

import "context"

// Store persists directive records.
//
// Error contract:
//   - Get returns sentinel.ErrNotFound (wrapped) when the label is unknown
//   - Save upserts; it never conflicts
//   - List returns records in first-saved order, the order comparison
//     columns follow when no explicit label selection is given
//   - infrastructure failures are returned wrapped with operation context
type Store interface {
	Save(ctx context.Context, record Record) error
	Get(ctx context.Context, label string) (*Record, error)
	List(ctx context.Context) ([]Record, error)
	Delete(ctx context.Context, label string) error
}
