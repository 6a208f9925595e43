package domain

import (
	"strconv"
	"strings"
)

// IdentifierKind tags an applied identifier as a design modification or a
// service bulletin. The classification happens once at parse time so the
// evaluator never re-derives it by string inspection.
type IdentifierKind string

const (
	KindModification    IdentifierKind = "modification"
	KindServiceBulletin IdentifierKind = "service_bulletin"
)

// AppliedIdentifier is one embodied modification or incorporated service
// bulletin on an aircraft, with its verbatim source text preserved for
// whole-word matching against directive constraints.
type AppliedIdentifier struct {
	Kind IdentifierKind `json:"kind"`
	Text string         `json:"text"`
}

// ClassifyIdentifier tags raw applied-identifier text. Anything containing
// the case-insensitive substring "mod" is a design modification; everything
// else is treated as a service bulletin reference.
func ClassifyIdentifier(text string) AppliedIdentifier {
	if strings.Contains(strings.ToLower(text), "mod") {
		return AppliedIdentifier{Kind: KindModification, Text: text}
	}
	return AppliedIdentifier{Kind: KindServiceBulletin, Text: text}
}

// blank markers that mean "no modifications applied" in source tables.
var blankModMarkers = map[string]struct{}{
	"":     {},
	"none": {},
	"n/a":  {},
}

// ParseAppliedIdentifiers splits a comma-separated modifications column
// into classified identifiers. The case-insensitive markers "", "none" and
// "n/a" yield an empty list.
func ParseAppliedIdentifiers(raw string) []AppliedIdentifier {
	trimmed := strings.TrimSpace(raw)
	if _, blank := blankModMarkers[strings.ToLower(trimmed)]; blank {
		return nil
	}

	var applied []AppliedIdentifier
	for _, part := range strings.Split(trimmed, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		applied = append(applied, ClassifyIdentifier(part))
	}
	return applied
}

// AircraftRecord is one row of the operator's fleet table: the model
// variant, the manufacturer serial number, and every modification or
// service bulletin known to be embodied on that airframe.
type AircraftRecord struct {
	Model                string              `json:"aircraft_model"`
	MSN                  int                 `json:"msn"`
	ModificationsApplied []AppliedIdentifier `json:"modifications_applied"`
}

// Canonical column names of a fleet table.
const (
	ColumnModel         = "aircraft_model"
	ColumnMSN           = "msn"
	ColumnModifications = "modifications_applied"
)

// FleetTable is a parsed fleet table together with the verbatim header
// and cells of its source document. Results tables reproduce the source
// columns and cells untouched, so operator bookkeeping columns and the
// exact cell spelling survive a comparison round trip. Cells is
// row-aligned with Records.
type FleetTable struct {
	Columns []string         `json:"columns"`
	Cells   [][]string       `json:"cells"`
	Records []AircraftRecord `json:"records"`
}

// NewFleetTable builds a table for records that never had a source
// document, such as inline API submissions. Cells are rendered from the
// typed fields under the canonical column names.
func NewFleetTable(records []AircraftRecord) *FleetTable {
	cells := make([][]string, len(records))
	for i, record := range records {
		texts := make([]string, len(record.ModificationsApplied))
		for j, applied := range record.ModificationsApplied {
			texts[j] = applied.Text
		}
		cells[i] = []string{record.Model, strconv.Itoa(record.MSN), strings.Join(texts, ", ")}
	}
	return &FleetTable{
		Columns: []string{ColumnModel, ColumnMSN, ColumnModifications},
		Cells:   cells,
		Records: records,
	}
}
