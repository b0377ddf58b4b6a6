package models

import "encoding/json"

// Reading is one accepted diode observation.
type Reading struct {
	ID          int     `json:"id"`          // insertion index, 0-based
	Temperature float64 `json:"temperature"` // °C
	Current     float64 `json:"current"`     // A
	Voltage     float64 `json:"voltage"`     // V
}

// RawReading is a submitted payload before numeric coercion.
// Each field may hold a JSON number or a numeric string.
type RawReading struct {
	Temperature json.RawMessage `json:"temperature" swaggertype:"number" example:"25"`
	Current     json.RawMessage `json:"current" swaggertype:"number" example:"0.001"`
	Voltage     json.RawMessage `json:"voltage" swaggertype:"number" example:"0.62"`
}
