package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"bandgap_lab/internal/models"
	"bandgap_lab/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockIngestion struct {
	reading models.Reading
	err     error
	calls   int
	lastRaw models.RawReading
}

func (m *mockIngestion) LogReading(ctx context.Context, raw models.RawReading) (models.Reading, error) {
	m.calls++
	m.lastRaw = raw
	return m.reading, m.err
}

type mockReadings struct {
	readings []models.Reading
	err      error
}

func (m *mockReadings) List(ctx context.Context) ([]models.Reading, error) {
	return m.readings, m.err
}

func (m *mockReadings) Count(ctx context.Context) (int, error) {
	return len(m.readings), m.err
}

type mockEstimator struct {
	result models.BandGapResult
	err    error
	calls  int
}

func (m *mockEstimator) Estimate(ctx context.Context) (models.BandGapResult, error) {
	m.calls++
	return m.result, m.err
}

type mockPlotter struct {
	png []byte
	err error
}

func (m *mockPlotter) RenderPNG(ctx context.Context, w io.Writer) (models.BandGapResult, error) {
	if m.err != nil {
		return models.BandGapResult{}, m.err
	}
	_, err := w.Write(m.png)
	return models.BandGapResult{}, err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, opts Options) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, opts)
	return h.InitRoutes()
}

func jsonRequest(method, target, body string) *http.Request {
	req, _ := http.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
