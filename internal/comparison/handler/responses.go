package handler

import (
	"github.com/google/uuid"

	"adcheck/internal/comparison"
)

// RunComparisonResponse is the JSON body of a completed comparison run.
type RunComparisonResponse struct {
	RunID   uuid.UUID  `json:"run_id"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// FromResult converts a service result to its response shape.
func FromResult(result *comparison.RunResult) RunComparisonResponse {
	return RunComparisonResponse{
		RunID:   result.RunID,
		Columns: result.Table.Columns,
		Rows:    result.Table.Rows,
	}
}
