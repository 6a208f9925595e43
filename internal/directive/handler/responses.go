package handler

import (
	"time"

	"adcheck/internal/directive"
	"adcheck/internal/domain"
)

// DirectiveResponse is the registry's view of one stored directive.
type DirectiveResponse struct {
	Label     string           `json:"label"`
	ADNumber  string           `json:"ad_number"`
	Models    []string         `json:"models,omitempty"`
	Directive domain.Directive `json:"directive"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ListResponse is the body of GET /directives.
type ListResponse struct {
	Directives []DirectiveResponse `json:"directives"`
}

// FromRecord converts a stored record to its response shape.
func FromRecord(record *directive.Record) DirectiveResponse {
	return DirectiveResponse{
		Label:     record.Label,
		ADNumber:  record.Directive.ADNumber,
		Models:    record.Directive.Models,
		Directive: record.Directive,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}
