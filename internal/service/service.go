package service

import (
	"context"
	"io"

	"bandgap_lab/internal/models"
	"bandgap_lab/internal/repository"
)

// Ingestion validates raw submissions and appends them to the log.
type Ingestion interface {
	LogReading(ctx context.Context, raw models.RawReading) (models.Reading, error)
}

// Readings exposes read-only access to the log.
type Readings interface {
	List(ctx context.Context) ([]models.Reading, error)
	Count(ctx context.Context) (int, error)
}

// Estimator fits ln(I) against 1/T over the current log.
type Estimator interface {
	Estimate(ctx context.Context) (models.BandGapResult, error)
}

// Plotter renders the working set and fitted line as a PNG.
type Plotter interface {
	RenderPNG(ctx context.Context, w io.Writer) (models.BandGapResult, error)
}

type Service struct {
	Ingestion
	Readings
	Estimator
	Plotter
}

func NewService(repos *repository.Repository) *Service {
	estimator := NewEstimatorService(repos.ReadingRepo)
	return &Service{
		Ingestion: NewIngestionService(repos.ReadingRepo),
		Readings:  NewReadingsService(repos.ReadingRepo),
		Estimator: estimator,
		Plotter:   NewPlotService(estimator),
	}
}
