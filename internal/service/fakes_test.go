package service

import (
	"context"

	"bandgap_lab/internal/models"
)

// fakeReadingRepo is an in-package stub satisfying repository.ReadingRepo.
type fakeReadingRepo struct {
	readings  []models.Reading
	appendErr error
	allErr    error

	appendCalls int
	allCalls    int
}

func (f *fakeReadingRepo) Append(ctx context.Context, r models.Reading) (int, error) {
	f.appendCalls++
	if f.appendErr != nil {
		return 0, f.appendErr
	}
	r.ID = len(f.readings)
	f.readings = append(f.readings, r)
	return r.ID, nil
}

func (f *fakeReadingRepo) All(ctx context.Context) ([]models.Reading, error) {
	f.allCalls++
	if f.allErr != nil {
		return nil, f.allErr
	}
	out := make([]models.Reading, len(f.readings))
	copy(out, f.readings)
	return out, nil
}

func (f *fakeReadingRepo) Count(ctx context.Context) (int, error) {
	return len(f.readings), f.allErr
}

func readingsOf(pairs ...[2]float64) []models.Reading {
	out := make([]models.Reading, len(pairs))
	for i, p := range pairs {
		out[i] = models.Reading{ID: i, Temperature: p[0], Current: p[1], Voltage: 0.6}
	}
	return out
}
