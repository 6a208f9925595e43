package domain

// Verdict is the outcome of evaluating one aircraft against one directive.
type Verdict string

const (
	// VerdictNotApplicable: the aircraft is outside the directive's scope
	// (model or serial number does not match).
	VerdictNotApplicable Verdict = "not_applicable"
	// VerdictAffected: the directive applies to this aircraft.
	VerdictAffected Verdict = "affected"
	// VerdictNotAffected: the aircraft is in scope but an embodied
	// modification or service bulletin excludes it.
	VerdictNotAffected Verdict = "not_affected"
)

// Report-facing cell labels. These exact strings are the contract with the
// reporting collaborator; do not localize or reformat them.
const (
	LabelNotApplicable = "❌ Not applicable"
	LabelAffected      = "✅ Affected"
	LabelNotAffected   = "❌ Not Affected"
)

// Label renders the verdict as its fixed report literal.
func (v Verdict) Label() string {
	switch v {
	case VerdictAffected:
		return LabelAffected
	case VerdictNotAffected:
		return LabelNotAffected
	default:
		return LabelNotApplicable
	}
}
