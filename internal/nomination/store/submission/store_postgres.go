// Package submission is the append-only log of nomination submit attempts.
package submission

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"dematkyc/internal/nomination/models"
)

// Schema creates the submission log table. It is idempotent.
//
//go:embed schema.sql
var Schema string

// PostgresStore persists submission records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed submission log.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate applies Schema.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("migrate submission log: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, rec models.SubmissionRecord) error {
	sections, err := json.Marshal(rec.Sections)
	if err != nil {
		return fmt.Errorf("encode sections: %w", err)
	}
	failures := rec.Failures
	if failures == nil {
		failures = []string{}
	}
	query := `
		INSERT INTO nomination_submissions
			(id, account_id, operator_id, request_id, status, sections, failures, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = s.db.ExecContext(ctx, query,
		rec.ID,
		rec.AccountID,
		rec.OperatorID,
		rec.RequestID,
		string(rec.Status),
		sections,
		pq.Array(failures),
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert submission record: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByAccount(ctx context.Context, accountID string, limit int) ([]models.SubmissionRecord, error) {
	query := `
		SELECT id, account_id, operator_id, request_id, status, sections, failures, created_at
		FROM nomination_submissions
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list submission records: %w", err)
	}
	defer rows.Close()

	records := []models.SubmissionRecord{}
	for rows.Next() {
		var (
			rec      models.SubmissionRecord
			status   string
			sections []byte
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.AccountID,
			&rec.OperatorID,
			&rec.RequestID,
			&status,
			&sections,
			pq.Array(&rec.Failures),
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan submission record: %w", err)
		}
		rec.Status = models.SubmissionStatus(status)
		if err := json.Unmarshal(sections, &rec.Sections); err != nil {
			return nil, fmt.Errorf("decode sections: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submission records: %w", err)
	}
	return records, nil
}
