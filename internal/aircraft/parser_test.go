package aircraft_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"adcheck/internal/aircraft"
	"adcheck/internal/domain"
	dErrors "adcheck/pkg/domain-errors"
)

type ParserSuite struct {
	suite.Suite
}

func TestParserSuite(t *testing.T) {
	suite.Run(t, new(ParserSuite))
}

func (s *ParserSuite) TestParseFleetTable() {
	input := strings.Join([]string{
		"aircraft_model,msn,modifications_applied",
		`A320-211,100,"mod 24591, SB A320-57-1089"`,
		"A320-214,250,none",
		"A321-111,301,N/A",
		"B737-800,17,",
	}, "\n")

	table, err := aircraft.ParseCSV(strings.NewReader(input))

	s.Require().NoError(err)
	s.Require().Len(table.Records, 4)

	s.Equal("A320-211", table.Records[0].Model)
	s.Equal(100, table.Records[0].MSN)
	s.Equal([]domain.AppliedIdentifier{
		{Kind: domain.KindModification, Text: "mod 24591"},
		{Kind: domain.KindServiceBulletin, Text: "SB A320-57-1089"},
	}, table.Records[0].ModificationsApplied)

	for _, record := range table.Records[1:] {
		s.Empty(record.ModificationsApplied)
	}
	s.Equal(301, table.Records[2].MSN)
}

// The header and cells carry through verbatim: columns the evaluator never
// reads stay put, and blank markers keep their source spelling even though
// the typed record treats them as empty.
func (s *ParserSuite) TestSourceTableIsPreserved() {
	input := strings.Join([]string{
		"aircraft_model,msn,modifications_applied,registration",
		"A320-214,250,none,PK-ABC",
		"A321-111,301,N/A",
	}, "\n")

	table, err := aircraft.ParseCSV(strings.NewReader(input))

	s.Require().NoError(err)
	s.Equal([]string{"aircraft_model", "msn", "modifications_applied", "registration"}, table.Columns)
	s.Equal([]string{"A320-214", "250", "none", "PK-ABC"}, table.Cells[0])
	s.Empty(table.Records[0].ModificationsApplied)

	s.Run("short rows pad to the header width", func() {
		s.Equal([]string{"A321-111", "301", "N/A", ""}, table.Cells[1])
	})
}

func (s *ParserSuite) TestColumnOrderIsIrrelevant() {
	input := strings.Join([]string{
		"msn,modifications_applied,aircraft_model,operator",
		"42,mod 100,A330-301,ACME",
	}, "\n")

	table, err := aircraft.ParseCSV(strings.NewReader(input))

	s.Require().NoError(err)
	s.Require().Len(table.Records, 1)
	s.Equal("A330-301", table.Records[0].Model)
	s.Equal(42, table.Records[0].MSN)
}

func (s *ParserSuite) TestMissingColumn() {
	input := "aircraft_model,msn\nA320-211,100"

	_, err := aircraft.ParseCSV(strings.NewReader(input))

	domainErr := s.requireCode(err, dErrors.CodeValidation)
	s.Contains(domainErr.Description, "modifications_applied")
}

func (s *ParserSuite) TestNonIntegerSerialNumber() {
	input := strings.Join([]string{
		"aircraft_model,msn,modifications_applied",
		"A320-211,100,none",
		"A320-211,MSN-200,none",
	}, "\n")

	_, err := aircraft.ParseCSV(strings.NewReader(input))

	domainErr := s.requireCode(err, dErrors.CodeValidation)
	s.Contains(domainErr.Description, "row 3")
}

func (s *ParserSuite) TestMissingModel() {
	input := strings.Join([]string{
		"aircraft_model,msn,modifications_applied",
		" ,100,none",
	}, "\n")

	_, err := aircraft.ParseCSV(strings.NewReader(input))

	domainErr := s.requireCode(err, dErrors.CodeValidation)
	s.Contains(domainErr.Description, "row 2")
}

func (s *ParserSuite) TestEmptyInput() {
	_, err := aircraft.ParseCSV(strings.NewReader(""))

	s.requireCode(err, dErrors.CodeValidation)
}

func (s *ParserSuite) requireCode(err error, code dErrors.Code) *dErrors.Error {
	s.Require().Error(err)
	var domainErr *dErrors.Error
	s.Require().ErrorAs(err, &domainErr)
	s.Equal(code, domainErr.Code)
	return domainErr
}
