package directive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"adcheck/internal/batch"
	"adcheck/internal/directive/metrics"
	"adcheck/internal/domain"
	dErrors "adcheck/pkg/domain-errors"
	"adcheck/pkg/platform/sentinel"
	"adcheck/pkg/requestcontext"
)

// Service exposes registry operations over a Store. Validation here is
// structural only (label and AD number present); cross-field business
// validation of extractions is the extraction collaborator's job.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs a directive registry service.
func NewService(store Store, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{store: store, logger: logger, metrics: m}
}

// Save upserts a directive under label. CreatedAt is preserved across
// updates.
func (s *Service) Save(ctx context.Context, label string, d domain.Directive) (*Record, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "directive label is required")
	}
	if strings.TrimSpace(d.ADNumber) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "ad_number is required")
	}

	now := requestcontext.Now(ctx)
	record := Record{Label: label, Directive: d, CreatedAt: now, UpdatedAt: now}
	if existing, err := s.store.Get(ctx, label); err == nil {
		record.CreatedAt = existing.CreatedAt
	}

	if err := s.store.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("save directive %q: %w", label, err)
	}
	s.metrics.RecordSaved()
	s.logger.InfoContext(ctx, "directive saved",
		"label", label,
		"ad_number", d.ADNumber,
		"models", len(d.Models),
	)
	return &record, nil
}

// Get returns the directive stored under label.
func (s *Service) Get(ctx context.Context, label string) (*Record, error) {
	record, err := s.store.Get(ctx, label)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "directive %q not found", label)
		}
		return nil, fmt.Errorf("get directive %q: %w", label, err)
	}
	return record, nil
}

// List returns all stored directives in registry order.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list directives: %w", err)
	}
	return records, nil
}

// Delete removes the directive stored under label.
func (s *Service) Delete(ctx context.Context, label string) error {
	if err := s.store.Delete(ctx, label); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Newf(dErrors.CodeNotFound, "directive %q not found", label)
		}
		return fmt.Errorf("delete directive %q: %w", label, err)
	}
	return nil
}

// DirectiveSet assembles the ordered mapping a batch comparison consumes.
// With no labels given, every stored directive is included in registry
// order; otherwise the given label order is preserved.
func (s *Service) DirectiveSet(ctx context.Context, labels []string) (*batch.DirectiveSet, error) {
	set := batch.NewDirectiveSet()

	if len(labels) == 0 {
		records, err := s.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, record := range records {
			if err := set.Add(record.Label, record.Directive); err != nil {
				return nil, err
			}
		}
		return set, nil
	}

	for _, label := range labels {
		record, err := s.Get(ctx, label)
		if err != nil {
			return nil, err
		}
		if err := set.Add(record.Label, record.Directive); err != nil {
			return nil, dErrors.Wrap(dErrors.CodeValidation, "directive labels must be unique", err)
		}
	}
	return set, nil
}
