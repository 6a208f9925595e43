// Package batch runs the applicability engine across an ordered fleet and
// an ordered set of labeled directives, producing the results table handed
// to the reporting collaborator.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"adcheck/internal/applicability"
	"adcheck/internal/applicability/metrics"
	"adcheck/internal/domain"
)

// DirectiveSet is an ordered mapping from label to directive. Column order
// in the results table follows insertion order.
type DirectiveSet struct {
	labels  []string
	byLabel map[string]domain.Directive
}

// NewDirectiveSet constructs an empty ordered directive mapping.
func NewDirectiveSet() *DirectiveSet {
	return &DirectiveSet{byLabel: make(map[string]domain.Directive)}
}

// Add appends a labeled directive. Duplicate labels are rejected so column
// names stay unambiguous.
func (s *DirectiveSet) Add(label string, d domain.Directive) error {
	if _, exists := s.byLabel[label]; exists {
		return fmt.Errorf("duplicate directive label %q", label)
	}
	s.labels = append(s.labels, label)
	s.byLabel[label] = d
	return nil
}

// Labels returns the labels in insertion order.
func (s *DirectiveSet) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Get returns the directive stored under label.
func (s *DirectiveSet) Get(label string) (domain.Directive, bool) {
	d, ok := s.byLabel[label]
	return d, ok
}

// Len returns the number of directives in the set.
func (s *DirectiveSet) Len() int { return len(s.labels) }

// Comparator evaluates every (record, directive) pair and assembles the
// results table. Evaluations of distinct records run in parallel; the
// table is reassembled by index so parallelism never shows in the output
// ordering.
type Comparator struct {
	engine  *applicability.Engine
	metrics *metrics.Metrics
	workers int
}

// NewComparator constructs a comparator. A nil metrics is allowed and
// disables instrumentation.
func NewComparator(engine *applicability.Engine, m *metrics.Metrics) *Comparator {
	return &Comparator{
		engine:  engine,
		metrics: m,
		workers: runtime.GOMAXPROCS(0),
	}
}

// Compare evaluates the fleet's records (in input order) against every
// directive (in set order). The output table keeps the source columns and
// cells verbatim, in order, and appends one verdict column per directive
// label. Exactly one cell is produced per (record, directive) pair.
func (c *Comparator) Compare(ctx context.Context, fleet *domain.FleetTable, directives *DirectiveSet) (*ResultTable, error) {
	start := time.Now()
	labels := directives.Labels()
	records := fleet.Records

	verdicts := make([][]domain.Verdict, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, record := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := make([]domain.Verdict, len(labels))
			for j, label := range labels {
				directive, _ := directives.Get(label)
				row[j] = c.engine.Evaluate(record, directive)
			}
			verdicts[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch comparison: %w", err)
	}

	for _, row := range verdicts {
		for _, v := range row {
			c.metrics.IncrementVerdict(string(v))
		}
	}
	c.metrics.ObserveComparisonDuration(time.Since(start))

	return newResultTable(fleet, labels, verdicts), nil
}
