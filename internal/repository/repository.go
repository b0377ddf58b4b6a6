package repository

import (
	"bandgap_lab/internal/models"
	"context"
	"database/sql"
)

// ReadingRepo is the append-only reading log. Indices are dense and 0-based.
type ReadingRepo interface {
	Append(ctx context.Context, r models.Reading) (int, error)
	All(ctx context.Context) ([]models.Reading, error)
	Count(ctx context.Context) (int, error)
}

type Repository struct {
	ReadingRepo ReadingRepo
}

// NewRepository backs the reading log with the given SQLite handle.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ReadingRepo: NewReadingSQLite(db),
	}
}

// NewMemoryRepository keeps the reading log in process memory.
func NewMemoryRepository() *Repository {
	return &Repository{
		ReadingRepo: NewReadingMemory(),
	}
}
