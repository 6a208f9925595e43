// Package directive is the registry of extracted directives. The extraction
// collaborator writes validated directive documents here under a label; the
// comparison service reads them back as an ordered set.
package directive

import (
	"time"

	"adcheck/internal/domain"
)

// Record is one stored directive with its registry metadata. Label is the
// registry key and becomes the verdict column name in comparison tables.
type Record struct {
	Label     string           `json:"label"`
	Directive domain.Directive `json:"directive"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
