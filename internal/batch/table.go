package batch

import (
	"encoding/csv"
	"io"

	"adcheck/internal/domain"
)

// ResultTable is the source fleet table with one verdict column appended
// per directive label. The source columns and cells pass through verbatim.
// Rows hold rendered cells; Verdicts holds the raw enum values for
// consumers that need more than the report literals.
type ResultTable struct {
	Columns  []string           `json:"columns"`
	Rows     [][]string         `json:"rows"`
	Verdicts [][]domain.Verdict `json:"-"`
}

func newResultTable(fleet *domain.FleetTable, labels []string, verdicts [][]domain.Verdict) *ResultTable {
	columns := make([]string, 0, len(fleet.Columns)+len(labels))
	columns = append(columns, fleet.Columns...)
	columns = append(columns, labels...)

	rows := make([][]string, len(fleet.Records))
	for i := range fleet.Records {
		row := make([]string, 0, len(columns))
		row = append(row, fleet.Cells[i]...)
		for _, v := range verdicts[i] {
			row = append(row, v.Label())
		}
		rows[i] = row
	}

	return &ResultTable{Columns: columns, Rows: rows, Verdicts: verdicts}
}

// WriteCSV renders the table for the reporting collaborator.
func (t *ResultTable) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
