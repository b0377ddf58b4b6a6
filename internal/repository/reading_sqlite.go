package repository

import (
	"bandgap_lab/internal/models"
	"context"
	"database/sql"
	"fmt"
)

type ReadingSQLite struct {
	db *sql.DB
}

func NewReadingSQLite(db *sql.DB) *ReadingSQLite { return &ReadingSQLite{db: db} }

// Ensure implementation of ReadingRepo interface at compile time.
var _ ReadingRepo = (*ReadingSQLite)(nil)

const (
	// id is computed in the same statement so the index stays dense under a single writer.
	insertReadingSQL = `
		INSERT INTO readings (id, temperature, current, voltage)
		VALUES ((SELECT COUNT(*) FROM readings), ?, ?, ?)
	`
	selectReadingsSQL = `SELECT id, temperature, current, voltage FROM readings ORDER BY id ASC`
	countReadingsSQL  = `SELECT COUNT(*) FROM readings`
)

// Append inserts r and returns the index assigned to it.
func (r *ReadingSQLite) Append(ctx context.Context, rd models.Reading) (int, error) {
	res, err := r.db.ExecContext(ctx, insertReadingSQL, rd.Temperature, rd.Current, rd.Voltage)
	if err != nil {
		return 0, fmt.Errorf("insert reading: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for reading: %w", err)
	}
	return int(id), nil
}

// All returns every reading ordered by index.
func (r *ReadingSQLite) All(ctx context.Context) ([]models.Reading, error) {
	rows, err := r.db.QueryContext(ctx, selectReadingsSQL)
	if err != nil {
		return nil, fmt.Errorf("select readings: %w", err)
	}
	defer rows.Close()

	out := make([]models.Reading, 0, 64)
	for rows.Next() {
		var rd models.Reading
		if err := rows.Scan(&rd.ID, &rd.Temperature, &rd.Current, &rd.Voltage); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		out = append(out, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReadingSQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countReadingsSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count readings: %w", err)
	}
	return n, nil
}
