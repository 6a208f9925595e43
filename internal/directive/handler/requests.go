package handler

import (
	"strings"

	"adcheck/internal/domain"
	dErrors "adcheck/pkg/domain-errors"
)

// SaveDirectiveRequest is the HTTP request body for PUT /directives/{label}:
// one extracted directive document.
type SaveDirectiveRequest struct {
	domain.Directive
}

// Validate performs structural checks only. Cross-field invariants of the
// extraction (terminating-action consistency, group references) are the
// extraction collaborator's responsibility.
func (r *SaveDirectiveRequest) Validate() error {
	if strings.TrimSpace(r.ADNumber) == "" {
		return dErrors.New(dErrors.CodeValidation, "ad_number is required")
	}
	for _, requirement := range r.Requirements {
		if strings.TrimSpace(requirement.ParagraphID) == "" {
			return dErrors.New(dErrors.CodeValidation, "requirement paragraph_id is required")
		}
	}
	return nil
}
