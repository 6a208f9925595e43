// Package aircraft loads and persists operator fleet tables. Parsing
// coerces and classifies everything up front so the evaluator only ever
// sees type-correct records.
package aircraft

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"adcheck/internal/domain"
	dErrors "adcheck/pkg/domain-errors"
)

// Required columns of a fleet table. Extra columns carry through to the
// results table untouched.
const (
	columnModel         = domain.ColumnModel
	columnMSN           = domain.ColumnMSN
	columnModifications = domain.ColumnModifications
)

// ParseCSV reads a fleet table with a header row. Row order is preserved,
// and the header and cells are kept verbatim alongside the typed records
// so results tables can reproduce the source document. A non-integer
// serial number is an input-shape error reported with its row number; the
// parser never silently drops rows.
func ParseCSV(r io.Reader) (*domain.FleetTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, dErrors.New(dErrors.CodeValidation, "fleet table is empty")
	}
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeBadRequest, "fleet table is not valid CSV", err)
	}

	index := map[string]int{}
	for i, name := range header {
		index[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{columnModel, columnMSN, columnModifications} {
		if _, ok := index[required]; !ok {
			return nil, dErrors.Newf(dErrors.CodeValidation, "fleet table is missing column %q", required)
		}
	}

	table := &domain.FleetTable{Columns: header}
	row := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, dErrors.Wrap(dErrors.CodeBadRequest, "fleet table is not valid CSV", err)
		}
		row++

		record, err := recordFromFields(fields, index, row)
		if err != nil {
			return nil, err
		}

		// Short rows pad to the header width so result rows stay rectangular.
		cells := make([]string, len(header))
		copy(cells, fields)
		table.Cells = append(table.Cells, cells)
		table.Records = append(table.Records, record)
	}
	return table, nil
}

func recordFromFields(fields []string, index map[string]int, row int) (domain.AircraftRecord, error) {
	field := func(name string) string {
		i := index[name]
		if i >= len(fields) {
			return ""
		}
		return fields[i]
	}

	model := strings.TrimSpace(field(columnModel))
	if model == "" {
		return domain.AircraftRecord{}, dErrors.Newf(dErrors.CodeValidation, "row %d: aircraft_model is required", row)
	}

	rawMSN := strings.TrimSpace(field(columnMSN))
	msn, err := strconv.Atoi(rawMSN)
	if err != nil {
		return domain.AircraftRecord{}, dErrors.Newf(dErrors.CodeValidation, "row %d: msn %q is not an integer", row, rawMSN)
	}

	return domain.AircraftRecord{
		Model:                model,
		MSN:                  msn,
		ModificationsApplied: domain.ParseAppliedIdentifiers(field(columnModifications)),
	}, nil
}
