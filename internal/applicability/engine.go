// Package applicability decides whether an aircraft falls under an
// airworthiness directive's scope. The engine is a pure function over
// in-memory values: no I/O, no globals, only an internal pattern cache.
// Observability is an injected event sink so evaluation stays
// deterministic and testable.
package applicability

import (
	"regexp"
	"strings"
	"sync"

	"adcheck/internal/domain"
)

// Step names the evaluation stage that produced an event.
type Step string

const (
	StepModel     Step = "model"
	StepSerial    Step = "serial_number"
	StepExclusion Step = "exclusion"
)

// Event is one structured observation emitted during an evaluation.
type Event struct {
	ADNumber string
	Model    string
	MSN      int
	Step     Step
	Passed   bool
	Detail   string
}

// EventSink receives evaluation events. Implementations must not block;
// the engine calls them synchronously.
type EventSink interface {
	Observe(Event)
}

// Engine evaluates aircraft records against directives. The rules are kept
// centralized here so the decision path stays auditable and testable. The
// pattern cache memoizes compiled whole-word patterns per constraint
// identifier; it is safe for the concurrent batch workers.
type Engine struct {
	sink     EventSink
	patterns sync.Map // identifier -> *regexp.Regexp
}

// NewEngine constructs an engine without observability.
func NewEngine() *Engine {
	return &Engine{}
}

// NewEngineWithSink constructs an engine that reports each decision step
// to the given sink.
func NewEngineWithSink(sink EventSink) *Engine {
	return &Engine{sink: sink}
}

// Evaluate reduces one (aircraft, directive) pair to a verdict. The rule
// chain is strictly ordered and fail-fast:
//
//  1. Model match: the record's model must be a substring of at least one
//     directive model string. No match means the directive was written for
//     a different type entirely.
//  2. Serial-number match: constraints are consulted in list order and the
//     first matching constraint decides; an empty list passes everything.
//  3. Exclusion check: each applied modification or service bulletin is
//     looked up in the directive's corresponding constraint list; the first
//     whole-word match decides, and an excluded match stops the evaluation.
//
// The function is total: it never fails for well-typed inputs.
func (e *Engine) Evaluate(record domain.AircraftRecord, directive domain.Directive) domain.Verdict {
	if !e.modelMatches(record, directive) {
		return domain.VerdictNotApplicable
	}
	if !e.serialMatches(record, directive) {
		return domain.VerdictNotApplicable
	}
	if e.excludedByApplied(record, directive) {
		return domain.VerdictNotAffected
	}
	e.observe(record, directive, StepExclusion, true, "no exclusion matched")
	return domain.VerdictAffected
}

// modelMatches applies the directional substring test: record model
// "A320" matches directive model "A320-211", never the other way around.
func (e *Engine) modelMatches(record domain.AircraftRecord, directive domain.Directive) bool {
	for _, m := range directive.Models {
		if strings.Contains(m, record.Model) {
			e.observe(record, directive, StepModel, true, m)
			return true
		}
	}
	e.observe(record, directive, StepModel, false, "no directive model contains record model")
	return false
}

// serialMatches walks the MSN constraint list in its given order. The
// first constraint whose predicate matches decides the step: its Excluded
// flag is the (inverted) result and later constraints are never consulted.
// An absent or empty list passes unconditionally; a non-empty list with no
// match fails the step.
func (e *Engine) serialMatches(record domain.AircraftRecord, directive domain.Directive) bool {
	if len(directive.MSNConstraints) == 0 {
		e.observe(record, directive, StepSerial, true, "no serial constraints")
		return true
	}
	for _, constraint := range directive.MSNConstraints {
		if !msnConstraintMatches(constraint, record.MSN) {
			continue
		}
		passed := !constraint.Excluded
		e.observe(record, directive, StepSerial, passed, "first matching constraint decided")
		return passed
	}
	e.observe(record, directive, StepSerial, false, "no serial constraint matched")
	return false
}

// msnConstraintMatches checks one constraint's predicate. When an instance
// populates more than one selector, All wins over Range wins over
// SpecificMSNs; well-formed extractions never mix them.
func msnConstraintMatches(c domain.MSNConstraint, msn int) bool {
	switch {
	case c.All != nil && *c.All:
		return true
	case c.Range != nil:
		return rangeContains(*c.Range, msn)
	case len(c.SpecificMSNs) > 0:
		for _, specific := range c.SpecificMSNs {
			if msn == specific {
				return true
			}
		}
	}
	return false
}

// rangeContains treats an absent bound as unconstrained. The inclusive
// flag for an absent bound is never consulted; the original system's
// comparison against an absent bound was undefined.
func rangeContains(r domain.NumericRange, msn int) bool {
	lowerOK := true
	if r.Start != nil {
		if r.InclusiveStart {
			lowerOK = msn >= *r.Start
		} else {
			lowerOK = msn > *r.Start
		}
	}
	upperOK := true
	if r.End != nil {
		if r.InclusiveEnd {
			upperOK = msn <= *r.End
		} else {
			upperOK = msn < *r.End
		}
	}
	return lowerOK && upperOK
}

// excludedByApplied scans the aircraft's applied identifiers in list order.
// Modification identifiers are looked up in the modification constraint
// list, service bulletin identifiers in the SB constraint list. Within a
// list the first whole-word match decides that identifier; an excluded
// match excludes the aircraft and stops the scan.
func (e *Engine) excludedByApplied(record domain.AircraftRecord, directive domain.Directive) bool {
	for _, applied := range record.ModificationsApplied {
		var excluded bool
		switch applied.Kind {
		case domain.KindModification:
			excluded = e.firstConstraintExcludes(applied.Text, modificationIdentifiers(directive.ModificationConstraints))
		case domain.KindServiceBulletin:
			excluded = e.firstConstraintExcludes(applied.Text, serviceBulletinIdentifiers(directive.SBConstraints))
		}
		if excluded {
			e.observe(record, directive, StepExclusion, false, applied.Text)
			return true
		}
	}
	return false
}

// constraintRef is a constraint's identifier and exclusion flag, flattened
// so modification and SB lists share one matching loop.
type constraintRef struct {
	identifier string
	excluded   bool
}

func modificationIdentifiers(constraints []domain.ModificationConstraint) []constraintRef {
	refs := make([]constraintRef, len(constraints))
	for i, c := range constraints {
		refs[i] = constraintRef{identifier: c.ModificationID, excluded: c.Excluded}
	}
	return refs
}

func serviceBulletinIdentifiers(constraints []domain.ServiceBulletinConstraint) []constraintRef {
	refs := make([]constraintRef, len(constraints))
	for i, c := range constraints {
		refs[i] = constraintRef{identifier: c.SBIdentifier, excluded: c.Excluded}
	}
	return refs
}

// firstConstraintExcludes finds the first constraint whose identifier
// occurs whole-word in the applied text and reports its exclusion flag.
// Later constraints are never consulted once one matches.
func (e *Engine) firstConstraintExcludes(appliedText string, refs []constraintRef) bool {
	for _, ref := range refs {
		if e.wholeWordPattern(ref.identifier).MatchString(appliedText) {
			return ref.excluded
		}
	}
	return false
}

// wholeWordPattern returns the compiled pattern matching identifier
// delimited by word boundaries. A plain substring test would let "mod 123"
// match a constraint for "mod 1234". Patterns compile once per identifier
// and are reused across the whole batch.
func (e *Engine) wholeWordPattern(identifier string) *regexp.Regexp {
	if cached, ok := e.patterns.Load(identifier); ok {
		return cached.(*regexp.Regexp)
	}
	pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(identifier) + `\b`)
	e.patterns.Store(identifier, pattern)
	return pattern
}

func (e *Engine) observe(record domain.AircraftRecord, directive domain.Directive, step Step, passed bool, detail string) {
	if e.sink == nil {
		return
	}
	e.sink.Observe(Event{
		ADNumber: directive.ADNumber,
		Model:    record.Model,
		MSN:      record.MSN,
		Step:     step,
		Passed:   passed,
		Detail:   detail,
	})
}
