package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	bandgap "bandgap_lab"
	"bandgap_lab/internal/metrics"
	"bandgap_lab/internal/models"
	"bandgap_lab/internal/repository"

	"gonum.org/v1/gonum/stat"
)

type EstimatorService struct {
	readingRepo repository.ReadingRepo
}

func NewEstimatorService(readingRepo repository.ReadingRepo) *EstimatorService {
	return &EstimatorService{readingRepo: readingRepo}
}

// Estimate recomputes the band gap from a fresh snapshot of the log.
func (s *EstimatorService) Estimate(ctx context.Context) (models.BandGapResult, error) {
	readings, err := s.readingRepo.All(ctx)
	if err != nil {
		metrics.Estimations.WithLabelValues("store_error").Inc()
		return models.BandGapResult{}, fmt.Errorf("load readings: %w", err)
	}

	res, err := Fit(Transform(readings))
	res.Total = len(readings)
	if err != nil {
		metrics.Estimations.WithLabelValues(estimateOutcome(err)).Inc()
		return res, err
	}

	metrics.Estimations.WithLabelValues("ok").Inc()
	metrics.LastBandGapEV.Set(res.BandGapEV)
	metrics.LastRSquared.Set(res.RSquared)
	return res, nil
}

// Transform keeps readings with current > 1e-9 A, in log order, as (1/T_K, ln I).
func Transform(readings []models.Reading) []models.Point {
	points := make([]models.Point, 0, len(readings))
	for _, r := range readings {
		if !(r.Current > bandgap.MinCurrentA) {
			continue
		}
		tK := r.Temperature + bandgap.KelvinOffset
		points = append(points, models.Point{
			InvT: 1 / tK,
			LnI:  math.Log(r.Current),
		})
	}
	return points
}

// Fit runs an ordinary least squares line over points and derives
// Eg = -2·k_B·slope and r² as the squared Pearson correlation of x and y.
func Fit(points []models.Point) (models.BandGapResult, error) {
	res := models.BandGapResult{Points: points, Used: len(points)}
	if len(points) < bandgap.MinFitPoints {
		return res, ErrInsufficientData
	}

	xs, ys := res.Columns()

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	if !isFinite(slope) || !isFinite(intercept) {
		return res, &FitError{Stage: "slope", Err: ErrZeroVariance}
	}

	r := stat.Correlation(xs, ys, nil)
	if !isFinite(r) {
		return res, &FitError{Stage: "correlation", Err: ErrZeroVariance}
	}

	res.Slope = slope
	res.Intercept = intercept
	res.BandGapEV = bandgap.BandGapFactor * bandgap.BoltzmannEV * slope
	res.RSquared = r * r
	return res, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func estimateOutcome(err error) string {
	var fitErr *FitError
	switch {
	case errors.Is(err, ErrInsufficientData):
		return "insufficient_data"
	case errors.As(err, &fitErr):
		return "fit_error"
	default:
		return "error"
	}
}
