package directive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"adcheck/internal/domain"
	"adcheck/pkg/platform/sentinel"
)

// PostgresStore persists directive records in PostgreSQL. The directive
// document is stored as JSONB so the registry survives schema additions in
// the extraction output without migrations.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed directive store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the directives table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS directives (
			label      TEXT PRIMARY KEY,
			document   JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure directives schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, record Record) error {
	document, err := json.Marshal(record.Directive)
	if err != nil {
		return fmt.Errorf("marshal directive document: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO directives (label, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (label) DO UPDATE
		SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`,
		record.Label, document, record.CreatedAt, record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save directive: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, label string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT label, document, created_at, updated_at
		FROM directives WHERE label = $1`, label)

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("directive %q: %w", label, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("get directive: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT label, document, created_at, updated_at
		FROM directives ORDER BY created_at, label`)
	if err != nil {
		return nil, fmt.Errorf("list directives: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list directives: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list directives: %w", err)
	}
	return records, nil
}

func (s *PostgresStore) Delete(ctx context.Context, label string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM directives WHERE label = $1`, label)
	if err != nil {
		return fmt.Errorf("delete directive: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete directive: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("directive %q: %w", label, sentinel.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var record Record
	var document []byte
	if err := row.Scan(&record.Label, &document, &record.CreatedAt, &record.UpdatedAt); err != nil {
		return nil, err
	}
	var directive domain.Directive
	if err := json.Unmarshal(document, &directive); err != nil {
		return nil, fmt.Errorf("decode directive document: %w", err)
	}
	record.Directive = directive
	return &record, nil
}
