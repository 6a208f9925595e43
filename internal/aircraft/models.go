package aircraft

import (
	"time"

	"adcheck/internal/domain"
)

// Fleet is a named, ordered collection of aircraft records as uploaded by
// an operator. Comparison jobs reference fleets by name. Columns and Cells
// hold the source table verbatim so comparison results reproduce it.
type Fleet struct {
	Name      string                  `json:"name"`
	Columns   []string                `json:"columns,omitempty"`
	Cells     [][]string              `json:"cells,omitempty"`
	Records   []domain.AircraftRecord `json:"records"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// Table returns the fleet as a comparison input. A fleet stored without
// source cells falls back to cells rendered from the typed records.
func (f *Fleet) Table() *domain.FleetTable {
	if len(f.Cells) == 0 {
		return domain.NewFleetTable(f.Records)
	}
	return &domain.FleetTable{Columns: f.Columns, Cells: f.Cells, Records: f.Records}
}
