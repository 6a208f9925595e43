// Package audit records one event per applicability verdict so operators
// can reconstruct which directive was checked against which airframe, and
// when. Events are emitted from domain logic and fanned out to a sink by a
// background worker.
package audit

import (
	"time"

	"github.com/google/uuid"

	"adcheck/internal/domain"
)

// Event is one (aircraft, directive) verdict from a comparison run.
type Event struct {
	ID             uuid.UUID      `json:"id"`
	RunID          uuid.UUID      `json:"run_id"`
	Timestamp      time.Time      `json:"timestamp"`
	DirectiveLabel string         `json:"directive_label"`
	ADNumber       string         `json:"ad_number"`
	AircraftModel  string         `json:"aircraft_model"`
	MSN            int            `json:"msn"`
	Verdict        domain.Verdict `json:"verdict"`
	Subject        string         `json:"subject,omitempty"`
	RequestID      string         `json:"request_id,omitempty"`
}
