package applicability

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"adcheck/internal/domain"
)

type EngineSuite struct {
	suite.Suite
	engine *Engine
}

func (s *EngineSuite) SetupTest() {
	s.engine = NewEngine()
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func intp(v int) *int    { return &v }
func boolp(v bool) *bool { return &v }

func record(model string, msn int, applied ...string) domain.AircraftRecord {
	rec := domain.AircraftRecord{Model: model, MSN: msn}
	for _, text := range applied {
		rec.ModificationsApplied = append(rec.ModificationsApplied, domain.ClassifyIdentifier(text))
	}
	return rec
}

func (s *EngineSuite) TestModelMatch() {
	s.Run("record model matches as substring of directive model", func() {
		d := domain.Directive{ADNumber: "2025-0254", Models: []string{"A320-211", "A320-212"}}
		s.Equal(domain.VerdictAffected, s.engine.Evaluate(record("A320", 100), d))
	})

	s.Run("substring test is directional", func() {
		d := domain.Directive{ADNumber: "2025-0254", Models: []string{"A320-211"}}
		s.Equal(domain.VerdictNotApplicable, s.engine.Evaluate(record("A320-999", 100), d))
	})

	s.Run("different type is not applicable regardless of other fields", func() {
		d := domain.Directive{
			ADNumber:       "2025-0254",
			Models:         []string{"A320-211"},
			MSNConstraints: []domain.MSNConstraint{{All: boolp(true)}},
		}
		s.Equal(domain.VerdictNotApplicable, s.engine.Evaluate(record("B737", 100), d))
	})

	s.Run("absent model list is not applicable", func() {
		d := domain.Directive{ADNumber: "2025-0254"}
		s.Equal(domain.VerdictNotApplicable, s.engine.Evaluate(record("A320", 100), d))
	})
}

func (s *EngineSuite) TestSerialNumberMatch() {
	base := func(constraints ...domain.MSNConstraint) domain.Directive {
		return domain.Directive{
			ADNumber:       "2025-0254",
			Models:         []string{"A320-211"},
			MSNConstraints: constraints,
		}
	}

	s.Run("absent constraint list passes every serial", func() {
		s.Equal(domain.VerdictAffected, s.engine.Evaluate(record("A320-211", 99999), base()))
	})

	s.Run("all constraint matches every serial", func() {
		d := base(domain.MSNConstraint{All: boolp(true)})
		s.Equal(domain.VerdictAffected, s.engine.Evaluate(record("A320-211", 1), d))
		s.Equal(domain.VerdictAffected, s.engine.Evaluate(record("A320-211", 99999), d))
	})

	s.Run("inclusive range boundaries", func() {
		d := base(domain.MSNConstraint{Range: &domain.NumericRange{
			Start: intp(100), End: intp(500), InclusiveStart: true, InclusiveEnd: true,
		}})
		s.Equal(domain.VerdictAffected, s.engine.Evaluate(record("A320-211", 500), d))
		s.Equal(domain.VerdictNotApplicable, s.engine.Evaluate(record("A320-211", 501), d))
	})

	s.Run("exclusive end boundary", func() {
		d := base(domain.MSNConstraint{Range: &domain.NumericRange{
			Start: intp(100), End: intp(500), InclusiveStart: true, InclusiveEnd: false,
		}})
		s.Equal(domain.VerdictNotApplicable, s.engine.Evaluate(record("A320-211", 500), d))
		s.Equal(domain.VerdictAffected, s.engine.Evaluate(record("A320-211", 499), d))
	})

	// The original system's behavior for a half-bounded range was undefined
	// (it compared against an absent bound). We resolve the open question by
	// treating an absent side as unconstrained, and never consulting its
	// inclusive flag.
	s.Run("absent lower bound is unconstrained", func() {
		d := base(domain.MSNConstraint{Range: &domain.NumericRange{
			End: intp(500), InclusiveStart: false, InclusiveEnd: true,
		}})
		s.Equal(domain.VerdictAffected, s.engine.Evaluate(record("A320-211", 1), d))
		s.Equal(domain.VerdictNotApplicable, s.engine.Evaluate(record("A320-211", 501), d))
	})

	s.Run("absent upper bound is unconstrained", func() {
		d := base(domain.MSNConstraint{Range: &domain.NumericRange{
			Start: intp(100), InclusiveStart: true, InclusiveEnd: false,
		}})
		s.Equal(domain.VerdictAffected, s.engine.Evaluate(record("A320-211", 1000000), d))
		s.Equal(domain.VerdictNotApplicable, s.engine.Evaluate(record("A320-211", 99), d))
	})

	s.Run("specific serial membership", func() {
		d := base(domain.MSNConstraint{SpecificMSNs: []int{364, 385}})
		s.Equal(domain.VerdictAffected, s.engine.Evaluate(record("A320-211", 385), d))
		s.Equal(domain.VerdictNotApplicable, s.engine.Evaluate(record("A320-211", 386), d))
	})

	s.Run("first matching constraint wins over later overlapping ones", func() {
		d := base(
			domain.MSNConstraint{Range: &domain.NumericRange{Start: intp(100), End: intp(200), InclusiveStart: true, InclusiveEnd: true}, Excluded: true},
			domain.MSNConstraint{All: boolp(true), Excluded: false},
		)
		s.Equal(domain.VerdictNotApplicable, s.engine.Evaluate(record("A320-211", 150), d))
		s.Equal(domain.VerdictAffected, s.engine.Evaluate(record("A320-211", 250), d))
	})

	s.Run("all wins over range on a mixed instance", func() {
		d := base(domain.MSNConstraint{
			All:   boolp(true),
			Range: &domain.NumericRange{Start: intp(100), End: intp(200), InclusiveStart: true, InclusiveEnd: true},
		})
		s.Equal(domain.VerdictAffected, s.engine.Evaluate(record("A320-211", 9999), d))
	})

	s.Run("exhausted list with no match is not applicable", func() {
		d := base(domain.MSNConstraint{SpecificMSNs: []int{1, 2, 3}})
		s.Equal(domain.VerdictNotApplicable, s.engine.Evaluate(record("A320-211", 4), d))
	})
}

func (s *EngineSuite) TestExclusionCheck() {
	base := domain.Directive{
		ADNumber: "2025-0254",
		Models:   []string{"A320-211"},
	}

	s.Run("no applied identifiers means affected", func() {
		d := base
		d.ModificationConstraints = []domain.ModificationConstraint{
			{ModificationID: "mod 24591", Embodied: boolp(true), Excluded: true},
		}
		s.Equal(domain.VerdictAffected, s.engine.Evaluate(record("A320-211", 100), d))
	})

	s.Run("embodied excluded modification means not affected", func() {
		d := base
		d.ModificationConstraints = []domain.ModificationConstraint{
			{ModificationID: "mod 24591", Embodied: boolp(true), Excluded: true},
		}
		s.Equal(domain.VerdictNotAffected, s.engine.Evaluate(record("A320-211", 100, "mod 24591"), d))
	})

	s.Run("unrelated modification leaves aircraft affected", func() {
		d := base
		d.ModificationConstraints = []domain.ModificationConstraint{
			{ModificationID: "mod 24591", Excluded: true},
		}
		s.Equal(domain.VerdictAffected, s.engine.Evaluate(record("A320-211", 100, "mod 24592"), d))
	})

	s.Run("word boundary prevents prefix collisions", func() {
		d := base
		d.ModificationConstraints = []domain.ModificationConstraint{
			{ModificationID: "mod 1234", Excluded: true},
		}
		s.Equal(domain.VerdictAffected, s.engine.Evaluate(record("A320-211", 100, "mod 12345"), d))
	})

	s.Run("service bulletin identifiers route to the SB constraint list", func() {
		d := base
		d.SBConstraints = []domain.ServiceBulletinConstraint{
			{SBIdentifier: "A320-57-1089", Incorporated: boolp(true), Excluded: true},
		}
		s.Equal(domain.VerdictNotAffected, s.engine.Evaluate(record("A320-211", 100, "A320-57-1089"), d))
	})

	s.Run("non-excluded constraint match keeps aircraft affected", func() {
		d := base
		d.SBConstraints = []domain.ServiceBulletinConstraint{
			{SBIdentifier: "A320-57-1089", Incorporated: boolp(true), Excluded: false},
		}
		s.Equal(domain.VerdictAffected, s.engine.Evaluate(record("A320-211", 100, "A320-57-1089"), d))
	})

	s.Run("first matching constraint in list order decides", func() {
		d := base
		d.ModificationConstraints = []domain.ModificationConstraint{
			{ModificationID: "mod 24591", Excluded: false},
			{ModificationID: "mod 24591", Excluded: true},
		}
		s.Equal(domain.VerdictAffected, s.engine.Evaluate(record("A320-211", 100, "mod 24591"), d))
	})

	s.Run("exclusion short-circuits remaining identifiers", func() {
		sink := &recordingSink{}
		engine := NewEngineWithSink(sink)
		d := base
		d.ModificationConstraints = []domain.ModificationConstraint{
			{ModificationID: "mod 24591", Excluded: true},
		}
		rec := record("A320-211", 100, "mod 24591", "A320-57-1089")
		s.Equal(domain.VerdictNotAffected, engine.Evaluate(rec, d))

		last := sink.events[len(sink.events)-1]
		s.Equal(StepExclusion, last.Step)
		s.Equal("mod 24591", last.Detail)
	})
}

func (s *EngineSuite) TestEndToEndScenarios() {
	s.Run("all serials affected", func() {
		d := domain.Directive{
			ADNumber:       "2025-0254",
			Models:         []string{"A320-211"},
			MSNConstraints: []domain.MSNConstraint{{All: boolp(true)}},
		}
		s.Equal(domain.LabelAffected, s.engine.Evaluate(record("A320-211", 100), d).Label())
	})

	s.Run("serial outside range not applicable", func() {
		d := domain.Directive{
			ADNumber: "2025-0254",
			Models:   []string{"A320-211"},
			MSNConstraints: []domain.MSNConstraint{{
				Range: &domain.NumericRange{Start: intp(100), End: intp(500), InclusiveStart: true, InclusiveEnd: true},
			}},
		}
		s.Equal(domain.LabelNotApplicable, s.engine.Evaluate(record("A320-211", 501), d).Label())
	})

	s.Run("excluded production modification not affected", func() {
		d := domain.Directive{
			ADNumber: "2025-0254",
			Models:   []string{"A320-211"},
			ModificationConstraints: []domain.ModificationConstraint{
				{ModificationID: "mod 24591", Embodied: boolp(true), Excluded: true},
			},
		}
		s.Equal(domain.LabelNotAffected, s.engine.Evaluate(record("A320-211", 100, "mod 24591"), d).Label())
		s.Equal(domain.LabelAffected, s.engine.Evaluate(record("A320-211", 100, "mod 24592"), d).Label())
	})
}

// recordingSink captures events for assertions.
type recordingSink struct {
	events []Event
}

func (r *recordingSink) Observe(e Event) { r.events = append(r.events, e) }

func TestWholeWordMatch(t *testing.T) {
	cases := []struct {
		text       string
		identifier string
		want       bool
	}{
		{"mod 24591", "mod 24591", true},
		{"mod 24591 embodied in production", "mod 24591", true},
		{"mod 12345", "mod 1234", false},
		{"A320-57-1089", "A320-57-1089", true},
		{"SB A320-57-1089 Revision 04", "A320-57-1089", true},
		{"A320-57-10891", "A320-57-1089", false},
	}
	engine := NewEngine()
	// Two passes: the second exercises the cached patterns.
	for range 2 {
		for _, tc := range cases {
			if got := engine.wholeWordPattern(tc.identifier).MatchString(tc.text); got != tc.want {
				t.Errorf("whole-word match of %q against %q = %v, want %v", tc.identifier, tc.text, got, tc.want)
			}
		}
	}
}
