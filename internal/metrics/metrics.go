package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReadingsIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bandgap_readings_ingested_total",
			Help: "Total readings accepted into the log",
		},
	)

	IngestionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bandgap_ingestion_failures_total",
			Help: "Total rejected reading submissions",
		},
		[]string{"reason"},
	)

	Estimations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bandgap_estimations_total",
			Help: "Total band-gap calculations by outcome",
		},
		[]string{"outcome"},
	)

	LastBandGapEV = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bandgap_last_band_gap_ev",
			Help: "Band gap from the most recent successful calculation",
		},
	)

	LastRSquared = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bandgap_last_r_squared",
			Help: "Fit quality of the most recent successful calculation",
		},
	)

	HTTPRequestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bandgap_http_request_latency_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
