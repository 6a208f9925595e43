package handler

import (
	"strings"

	"adcheck/internal/comparison"
	"adcheck/internal/domain"
	dErrors "adcheck/pkg/domain-errors"
)

// Output formats for a comparison run.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// InlineRecord is one aircraft row submitted directly in the request body.
// Modifications arrive as the raw comma-separated column text, exactly as
// in a fleet CSV.
type InlineRecord struct {
	AircraftModel        string `json:"aircraft_model"`
	MSN                  int    `json:"msn"`
	ModificationsApplied string `json:"modifications_applied"`
}

// RunComparisonRequest is the body of POST /comparisons. Exactly one of
// fleet_name and records selects the aircraft; an empty directive_labels
// list runs against every registered directive.
type RunComparisonRequest struct {
	FleetName       string         `json:"fleet_name,omitempty"`
	Records         []InlineRecord `json:"records,omitempty"`
	DirectiveLabels []string       `json:"directive_labels,omitempty"`
	Format          string         `json:"format,omitempty"`
}

// Validate performs structural checks. Fleet selection rules live in the
// comparison service.
func (r *RunComparisonRequest) Validate() error {
	switch r.Format {
	case "", FormatJSON, FormatCSV:
	default:
		return dErrors.Newf(dErrors.CodeValidation, "format %q is not supported", r.Format)
	}
	for i, record := range r.Records {
		if strings.TrimSpace(record.AircraftModel) == "" {
			return dErrors.Newf(dErrors.CodeValidation, "records[%d]: aircraft_model is required", i)
		}
	}
	return nil
}

// ToRunRequest converts the body to the service request, classifying the
// inline modification text.
func (r *RunComparisonRequest) ToRunRequest() comparison.RunRequest {
	records := make([]domain.AircraftRecord, len(r.Records))
	for i, inline := range r.Records {
		records[i] = domain.AircraftRecord{
			Model:                strings.TrimSpace(inline.AircraftModel),
			MSN:                  inline.MSN,
			ModificationsApplied: domain.ParseAppliedIdentifiers(inline.ModificationsApplied),
		}
	}
	if len(records) == 0 {
		records = nil
	}
	return comparison.RunRequest{
		FleetName:       r.FleetName,
		Records:         records,
		DirectiveLabels: r.DirectiveLabels,
	}
}
