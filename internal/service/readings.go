package service

import (
	"context"

	"bandgap_lab/internal/models"
	"bandgap_lab/internal/repository"
)

type ReadingsService struct {
	readingRepo repository.ReadingRepo
}

func NewReadingsService(readingRepo repository.ReadingRepo) *ReadingsService {
	return &ReadingsService{readingRepo: readingRepo}
}

// List returns the whole log in insertion order, never nil.
func (s *ReadingsService) List(ctx context.Context) ([]models.Reading, error) {
	readings, err := s.readingRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	if readings == nil {
		readings = []models.Reading{}
	}
	return readings, nil
}

func (s *ReadingsService) Count(ctx context.Context) (int, error) {
	return s.readingRepo.Count(ctx)
}
