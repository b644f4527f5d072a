// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/geobridge/internal/ports/secondary"
)

// RunRepository implements secondary.RunRepository with SQLite.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new SQLite run repository.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create persists a new run record.
// The record must have ID and Command pre-populated by the service layer.
func (r *RunRepository) Create(ctx context.Context, run *secondary.RunRecord) error {
	if run.ID == "" {
		return fmt.Errorf("run ID must be pre-populated by service layer")
	}
	if run.Command == "" {
		return fmt.Errorf("run Command must be pre-populated by service layer")
	}

	var input sql.NullString
	if run.InputPath != "" {
		input = sql.NullString{String: run.InputPath, Valid: true}
	}
	var artifacts sql.NullString
	if run.Artifacts != "" {
		artifacts = sql.NullString{String: run.Artifacts, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO runs (id, command, input_path, artifacts, feature_count, updated_count, skipped_count, rainfall_index) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		run.ID, run.Command, input, artifacts,
		run.FeatureCount, run.UpdatedCount, run.SkippedCount, run.RainfallIndex,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// List retrieves run records matching the given filters, newest first.
func (r *RunRepository) List(ctx context.Context, filters secondary.RunFilters) ([]*secondary.RunRecord, error) {
	query := "SELECT id, command, input_path, artifacts, feature_count, updated_count, skipped_count, rainfall_index, created_at FROM runs"
	args := []any{}

	if filters.Command != "" {
		query += " WHERE command = ?"
		args = append(args, filters.Command)
	}

	query += " ORDER BY created_at DESC, id DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*secondary.RunRecord
	for rows.Next() {
		var (
			input     sql.NullString
			artifacts sql.NullString
			rainfall  sql.NullFloat64
			createdAt time.Time
		)

		record := &secondary.RunRecord{}
		err := rows.Scan(&record.ID, &record.Command, &input, &artifacts,
			&record.FeatureCount, &record.UpdatedCount, &record.SkippedCount,
			&rainfall, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		record.InputPath = input.String
		record.Artifacts = artifacts.String
		record.RainfallIndex = rainfall.Float64
		record.CreatedAt = createdAt.Format(time.RFC3339)

		runs = append(runs, record)
	}

	return runs, nil
}

// Ensure RunRepository implements the interface
var _ secondary.RunRepository = (*RunRepository)(nil)
