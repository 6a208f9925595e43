package domain

import "encoding/json"

// TimeUnit enumerates the units a compliance time can be expressed in.
type TimeUnit string

const (
	UnitFlightHours  TimeUnit = "flight_hours"
	UnitFlightCycles TimeUnit = "flight_cycles"
	UnitDays         TimeUnit = "days"
	UnitMonths       TimeUnit = "months"
	UnitYears        TimeUnit = "years"
	UnitCalendarDate TimeUnit = "calendar_date"
)

// NumericRange is a bounded or half-bounded interval over manufacturer
// serial numbers. A nil Start or End leaves that side unconstrained; the
// inclusive flags are only meaningful for a present bound.
type NumericRange struct {
	Start          *int `json:"start,omitempty"`
	End            *int `json:"end,omitempty"`
	InclusiveStart bool `json:"inclusive_start"`
	InclusiveEnd   bool `json:"inclusive_end"`
}

// UnmarshalJSON defaults both inclusive flags to true, matching the source
// schema, so absent flags decode to inclusive comparisons.
func (r *NumericRange) UnmarshalJSON(data []byte) error {
	type alias NumericRange
	aux := alias{InclusiveStart: true, InclusiveEnd: true}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = NumericRange(aux)
	return nil
}

// MSNConstraint scopes a directive to serial numbers. At most one of All,
// Range, and SpecificMSNs is meaningfully populated per instance; a
// directive lists several instances to express compound rules. Excluded
// flips the constraint from inclusion to exclusion.
type MSNConstraint struct {
	All          *bool         `json:"all,omitempty"`
	Range        *NumericRange `json:"range,omitempty"`
	SpecificMSNs []int         `json:"specific_msns,omitempty"`
	Excluded     bool          `json:"excluded"`
}

// ModificationConstraint scopes a directive by embodiment of an Airbus
// design modification ("mod NNNNN"). Embodied is tri-state: embodied, not
// embodied, or unspecified.
type ModificationConstraint struct {
	ModificationID string `json:"modification_id"`
	Embodied       *bool  `json:"embodied,omitempty"`
	Excluded       bool   `json:"excluded"`
}

// ServiceBulletinConstraint scopes a directive by incorporation of a
// service bulletin (identifier format AXXX-XX-XXXX, no "SB" prefix).
type ServiceBulletinConstraint struct {
	SBIdentifier string `json:"sb_identifier"`
	Revision     string `json:"revision,omitempty"`
	Incorporated *bool  `json:"incorporated,omitempty"`
	Excluded     bool   `json:"excluded"`
}

// AircraftGroup is a directive-internal partition of applicable aircraft.
// Description carries the verbatim defining sentence as an audit trail.
type AircraftGroup struct {
	GroupID                 string                      `json:"group_id"`
	Models                  []string                    `json:"models,omitempty"`
	MSNConstraints          []MSNConstraint             `json:"msn_constraints,omitempty"`
	ModificationConstraints []ModificationConstraint    `json:"modification_constraints,omitempty"`
	SBConstraints           []ServiceBulletinConstraint `json:"sb_constraints,omitempty"`
	Description             string                      `json:"description,omitempty"`
}

// ComplianceTime is one deadline or recurring interval. Either Value+Unit
// or CalendarDate is populated. A list of ComplianceTime under one
// requirement is a disjunction: whichever occurs first.
type ComplianceTime struct {
	Value        *int     `json:"value,omitempty"`
	Unit         TimeUnit `json:"unit,omitempty"`
	Reference    string   `json:"reference,omitempty"`
	CalendarDate string   `json:"calendar_date,omitempty"`
	IsInterval   bool     `json:"is_interval"`
}

// ActionType categorizes a required action paragraph.
type ActionType string

const (
	ActionInspection    ActionType = "inspection"
	ActionModification  ActionType = "modification"
	ActionCorrective    ActionType = "corrective_action"
	ActionTerminating   ActionType = "terminating_action"
	ActionProhibition   ActionType = "prohibition"
	ActionClarification ActionType = "clarification"
)

// RequirementAction is one numbered paragraph of a directive's required
// actions. TriggeredByParagraph is only meaningful for corrective actions;
// IsTerminatingAction must be true whenever TerminatingActionFor is
// non-empty (enforced upstream by the extraction collaborator).
type RequirementAction struct {
	ParagraphID                      string           `json:"paragraph_id"`
	ActionType                       ActionType       `json:"action_type"`
	AppliesToGroups                  []string         `json:"applies_to_groups,omitempty"`
	AppliesToModels                  []string         `json:"applies_to_models,omitempty"`
	AdditionalApplicabilityCondition string           `json:"additional_applicability_condition,omitempty"`
	Description                      string           `json:"description"`
	ComplianceTimes                  []ComplianceTime `json:"compliance_times,omitempty"`
	Interval                         []ComplianceTime `json:"interval,omitempty"`
	ReferenceDocuments               []string         `json:"reference_documents,omitempty"`
	TriggeredByParagraph             string           `json:"triggered_by_paragraph,omitempty"`
	TerminatingActionFor             []string         `json:"terminating_action_for,omitempty"`
	IsTerminatingAction              bool             `json:"is_terminating_action"`
}

// Directive is one airworthiness directive's applicability and compliance
// structure as delivered by the extraction collaborator. All identifiers
// are case-sensitive and copied verbatim from the source document.
type Directive struct {
	ADNumber                string                      `json:"ad_number"`
	IssuingAuthority        string                      `json:"issuing_authority,omitempty"`
	EffectiveDate           string                      `json:"effective_date,omitempty"`
	Revision                string                      `json:"revision,omitempty"`
	Supersedes              []string                    `json:"supersedes,omitempty"`
	Models                  []string                    `json:"models,omitempty"`
	MSNConstraints          []MSNConstraint             `json:"msn_constraints,omitempty"`
	ModificationConstraints []ModificationConstraint    `json:"modification_constraints,omitempty"`
	SBConstraints           []ServiceBulletinConstraint `json:"sb_constraints,omitempty"`
	ComplianceTime          []ComplianceTime            `json:"compliance_time,omitempty"`
	Groups                  []AircraftGroup             `json:"groups,omitempty"`
	Requirements            []RequirementAction         `json:"requirements,omitempty"`
}
