// Package comparison orchestrates a full applicability run: it resolves
// the fleet and the directive set, hands them to the batch comparator, and
// emits one audit event per verdict.
package comparison

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"adcheck/internal/aircraft"
	"adcheck/internal/audit"
	"adcheck/internal/batch"
	"adcheck/internal/domain"
	dErrors "adcheck/pkg/domain-errors"
	"adcheck/pkg/platform/sentinel"
	"adcheck/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks DirectiveProvider,FleetStore

// DirectiveProvider resolves labels into an ordered directive set. A nil
// label slice means every registered directive in registry order.
type DirectiveProvider interface {
	DirectiveSet(ctx context.Context, labels []string) (*batch.DirectiveSet, error)
}

// FleetStore loads stored fleets by name.
type FleetStore interface {
	Get(ctx context.Context, name string) (*aircraft.Fleet, error)
}

// RunRequest selects the fleet and directives for one comparison run.
// Exactly one of FleetName and Records must be set.
type RunRequest struct {
	FleetName       string
	Records         []domain.AircraftRecord
	DirectiveLabels []string
}

// RunResult is a completed comparison run.
type RunResult struct {
	RunID uuid.UUID          `json:"run_id"`
	Table *batch.ResultTable `json:"table"`
}

// Service runs comparisons and feeds the audit inbox. The inbox send never
// blocks: when the audit worker falls behind, events are dropped and
// counted in the log rather than stalling the request path.
type Service struct {
	directives DirectiveProvider
	fleets     FleetStore
	comparator *batch.Comparator
	inbox      chan<- audit.Event
	tracer     trace.Tracer
	logger     *slog.Logger
}

func NewService(
	directives DirectiveProvider,
	fleets FleetStore,
	comparator *batch.Comparator,
	inbox chan<- audit.Event,
	tracer trace.Tracer,
	logger *slog.Logger,
) *Service {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("comparison")
	}
	return &Service{
		directives: directives,
		fleets:     fleets,
		comparator: comparator,
		inbox:      inbox,
		tracer:     tracer,
		logger:     logger,
	}
}

// Run resolves the request, evaluates every (record, directive) pair and
// returns the results table tagged with a fresh run ID.
func (s *Service) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	ctx, span := s.tracer.Start(ctx, "comparison.run")
	defer span.End()

	fleet, err := s.resolveFleet(ctx, req)
	if err != nil {
		return nil, err
	}

	set, err := s.directives.DirectiveSet(ctx, req.DirectiveLabels)
	if err != nil {
		return nil, err
	}

	runID := uuid.New()
	span.SetAttributes(
		attribute.String("run_id", runID.String()),
		attribute.Int("records", len(fleet.Records)),
		attribute.Int("directives", set.Len()),
	)

	table, err := s.comparator.Compare(ctx, fleet, set)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "comparison run failed", err)
	}

	s.emitAuditEvents(ctx, runID, fleet.Records, set, table)

	s.logger.InfoContext(ctx, "comparison run completed",
		"run_id", runID,
		"records", len(fleet.Records),
		"directives", set.Len(),
	)

	return &RunResult{RunID: runID, Table: table}, nil
}

func (s *Service) resolveFleet(ctx context.Context, req RunRequest) (*domain.FleetTable, error) {
	switch {
	case req.FleetName != "" && len(req.Records) > 0:
		return nil, dErrors.New(dErrors.CodeValidation, "provide either a fleet name or inline records, not both")
	case req.FleetName != "":
		fleet, err := s.fleets.Get(ctx, req.FleetName)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil, dErrors.Wrap(dErrors.CodeNotFound, fmt.Sprintf("fleet %q not found", req.FleetName), err)
			}
			return nil, err
		}
		return fleet.Table(), nil
	case len(req.Records) > 0:
		return domain.NewFleetTable(req.Records), nil
	default:
		return nil, dErrors.New(dErrors.CodeValidation, "a fleet name or inline records are required")
	}
}

func (s *Service) emitAuditEvents(ctx context.Context, runID uuid.UUID, records []domain.AircraftRecord, set *batch.DirectiveSet, table *batch.ResultTable) {
	if s.inbox == nil {
		return
	}

	labels := set.Labels()
	now := requestcontext.Now(ctx)
	subject := requestcontext.Subject(ctx)
	requestID := requestcontext.RequestID(ctx)

	dropped := 0
	for i, record := range records {
		for j, label := range labels {
			directive, _ := set.Get(label)
			event := audit.Event{
				ID:             uuid.New(),
				RunID:          runID,
				Timestamp:      now,
				DirectiveLabel: label,
				ADNumber:       directive.ADNumber,
				AircraftModel:  record.Model,
				MSN:            record.MSN,
				Verdict:        table.Verdicts[i][j],
				Subject:        subject,
				RequestID:      requestID,
			}
			select {
			case s.inbox <- event:
			default:
				dropped++
			}
		}
	}
	if dropped > 0 {
		s.logger.WarnContext(ctx, "audit inbox full, events dropped",
			"run_id", runID,
			"dropped", dropped,
		)
	}
}
