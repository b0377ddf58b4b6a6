package repository

import (
	"bandgap_lab/internal/models"
	"context"
	"sync"
)

type ReadingMemory struct {
	mu       sync.RWMutex
	readings []models.Reading
}

func NewReadingMemory() *ReadingMemory {
	return &ReadingMemory{readings: make([]models.Reading, 0, 64)}
}

// Ensure implementation of ReadingRepo interface at compile time.
var _ ReadingRepo = (*ReadingMemory)(nil)

// Append stores r at the end of the log and returns its index.
// Any ID already set on r is overwritten.
func (m *ReadingMemory) Append(_ context.Context, r models.Reading) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r.ID = len(m.readings)
	m.readings = append(m.readings, r)
	return r.ID, nil
}

// All returns a copy of the log in insertion order.
func (m *ReadingMemory) All(_ context.Context) ([]models.Reading, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Reading, len(m.readings))
	copy(out, m.readings)
	return out, nil
}

func (m *ReadingMemory) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.readings), nil
}
