package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"bandgap_lab/internal/metrics"
	"bandgap_lab/internal/models"
	"bandgap_lab/internal/repository"
)

type IngestionService struct {
	readingRepo repository.ReadingRepo
}

func NewIngestionService(readingRepo repository.ReadingRepo) *IngestionService {
	return &IngestionService{readingRepo: readingRepo}
}

// LogReading parses all three fields before touching the log, so a bad
// payload never leaves a partial entry behind.
func (s *IngestionService) LogReading(ctx context.Context, raw models.RawReading) (models.Reading, error) {
	r, err := ParseReading(raw)
	if err != nil {
		metrics.IngestionFailures.WithLabelValues(failureReason(err)).Inc()
		return models.Reading{}, err
	}

	id, err := s.readingRepo.Append(ctx, r)
	if err != nil {
		metrics.IngestionFailures.WithLabelValues("store").Inc()
		return models.Reading{}, fmt.Errorf("append reading: %w", err)
	}
	r.ID = id
	metrics.ReadingsIngested.Inc()
	return r, nil
}

// ParseReading coerces the payload into a Reading. Fields are checked in
// temperature, current, voltage order and the first failure is returned.
func ParseReading(raw models.RawReading) (models.Reading, error) {
	var (
		r   models.Reading
		err error
	)
	if r.Temperature, err = parseNumber("temperature", raw.Temperature); err != nil {
		return models.Reading{}, err
	}
	if r.Current, err = parseNumber("current", raw.Current); err != nil {
		return models.Reading{}, err
	}
	if r.Voltage, err = parseNumber("voltage", raw.Voltage); err != nil {
		return models.Reading{}, err
	}
	return r, nil
}

var jsonNull = []byte("null")

// parseNumber accepts a JSON number or a string holding one.
func parseNumber(field string, raw json.RawMessage) (float64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return 0, &FieldError{Field: field, Err: ErrMissingField}
	}

	var text string
	switch c := trimmed[0]; {
	case c == '"':
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return 0, &FieldError{Field: field, Err: fmt.Errorf("%w: %v", ErrNotNumeric, err)}
		}
		text = strings.TrimSpace(text)
	case c == '-' || (c >= '0' && c <= '9'):
		text = string(trimmed)
	default:
		return 0, &FieldError{Field: field, Err: fmt.Errorf("%w: %s", ErrNotNumeric, trimmed)}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &FieldError{Field: field, Err: ErrNotFinite}
		}
		return 0, &FieldError{Field: field, Err: fmt.Errorf("%w: %q", ErrNotNumeric, text)}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FieldError{Field: field, Err: ErrNotFinite}
	}
	return v, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return "missing"
	case errors.Is(err, ErrNotFinite):
		return "not_finite"
	default:
		return "not_numeric"
	}
}
