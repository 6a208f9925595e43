package aircraft

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	dErrors "adcheck/pkg/domain-errors"
	"adcheck/pkg/platform/sentinel"
	"adcheck/pkg/requestcontext"
)

// Service exposes fleet operations over a Store. Upload parses the raw CSV
// before anything touches the store, so a bad row never clobbers a stored
// fleet.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs a fleet service.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Upload parses a fleet table and upserts it under name. CreatedAt is
// preserved across re-uploads.
func (s *Service) Upload(ctx context.Context, name string, table io.Reader) (*Fleet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "fleet name is required")
	}

	parsed, err := ParseCSV(table)
	if err != nil {
		return nil, err
	}
	if len(parsed.Records) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "fleet table has no aircraft rows")
	}

	now := requestcontext.Now(ctx)
	fleet := Fleet{
		Name:      name,
		Columns:   parsed.Columns,
		Cells:     parsed.Cells,
		Records:   parsed.Records,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing, err := s.store.Get(ctx, name); err == nil {
		fleet.CreatedAt = existing.CreatedAt
	}

	if err := s.store.Save(ctx, fleet); err != nil {
		return nil, fmt.Errorf("save fleet %q: %w", name, err)
	}
	s.logger.InfoContext(ctx, "fleet uploaded",
		"name", name,
		"records", len(parsed.Records),
	)
	return &fleet, nil
}

// Get returns a stored fleet by name.
func (s *Service) Get(ctx context.Context, name string) (*Fleet, error) {
	fleet, err := s.store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(dErrors.CodeNotFound, fmt.Sprintf("fleet %q not found", name), err)
		}
		return nil, fmt.Errorf("get fleet %q: %w", name, err)
	}
	return fleet, nil
}

// List returns every stored fleet ordered by name.
func (s *Service) List(ctx context.Context) ([]Fleet, error) {
	fleets, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fleets: %w", err)
	}
	return fleets, nil
}

// Delete removes a stored fleet.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.store.Delete(ctx, name); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Wrap(dErrors.CodeNotFound, fmt.Sprintf("fleet %q not found", name), err)
		}
		return fmt.Errorf("delete fleet %q: %w", name, err)
	}
	s.logger.InfoContext(ctx, "fleet deleted", "name", name)
	return nil
}
