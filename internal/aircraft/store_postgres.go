package aircraft

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"adcheck/internal/domain"
	"adcheck/pkg/platform/sentinel"
)

// PostgresStore persists fleets in PostgreSQL, one JSONB document per
// fleet. Fleets are read whole for comparisons, so per-aircraft rows would
// buy nothing.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed fleet store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the fleets table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS fleets (
			name       TEXT PRIMARY KEY,
			records    JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure fleets schema: %w", err)
	}
	return nil
}

// fleetDocument is the JSONB payload of one fleets row: the typed records
// plus the verbatim source table.
type fleetDocument struct {
	Columns []string                `json:"columns,omitempty"`
	Cells   [][]string              `json:"cells,omitempty"`
	Records []domain.AircraftRecord `json:"records"`
}

func (s *PostgresStore) Save(ctx context.Context, fleet Fleet) error {
	records, err := json.Marshal(fleetDocument{
		Columns: fleet.Columns,
		Cells:   fleet.Cells,
		Records: fleet.Records,
	})
	if err != nil {
		return fmt.Errorf("marshal fleet records: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO fleets (name, records, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE
		SET records = EXCLUDED.records, updated_at = EXCLUDED.updated_at`,
		fleet.Name, records, fleet.CreatedAt, fleet.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save fleet: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, name string) (*Fleet, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT name, records, created_at, updated_at FROM fleets WHERE name = $1`, name)

	fleet, err := scanFleet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("fleet %q: %w", name, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("get fleet: %w", err)
	}
	return fleet, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Fleet, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, records, created_at, updated_at FROM fleets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list fleets: %w", err)
	}
	defer rows.Close()

	var fleets []Fleet
	for rows.Next() {
		fleet, err := scanFleet(rows)
		if err != nil {
			return nil, fmt.Errorf("list fleets: %w", err)
		}
		fleets = append(fleets, *fleet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list fleets: %w", err)
	}
	return fleets, nil
}

func (s *PostgresStore) Delete(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM fleets WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete fleet: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete fleet: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("fleet %q: %w", name, sentinel.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFleet(row rowScanner) (*Fleet, error) {
	var fleet Fleet
	var records []byte
	if err := row.Scan(&fleet.Name, &records, &fleet.CreatedAt, &fleet.UpdatedAt); err != nil {
		return nil, err
	}
	var doc fleetDocument
	if err := json.Unmarshal(records, &doc); err != nil {
		return nil, fmt.Errorf("decode fleet records: %w", err)
	}
	fleet.Columns = doc.Columns
	fleet.Cells = doc.Cells
	fleet.Records = doc.Records
	return &fleet, nil
}
