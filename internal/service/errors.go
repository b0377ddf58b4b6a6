package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidReading matches every ingestion validation failure.
	ErrInvalidReading = errors.New("invalid reading")

	ErrMissingField = errors.New("field is required")
	ErrNotNumeric   = errors.New("could not convert to float")
	ErrNotFinite    = errors.New("value must be finite")

	// ErrInsufficientData means fewer than two readings survived filtering.
	ErrInsufficientData = errors.New("not enough valid data points (need at least 2 readings with current > 1e-9 A)")

	ErrZeroVariance = errors.New("zero variance in working set")
)

// FieldError reports which payload field failed to parse.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() []error {
	return []error{e.Err, ErrInvalidReading}
}

// FitError is a numerical failure during the regression itself.
type FitError struct {
	Stage string // "slope" | "correlation"
	Err   error
}

func (e *FitError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *FitError) Unwrap() error { return e.Err }
