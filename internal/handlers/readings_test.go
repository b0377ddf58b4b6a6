package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bandgap_lab/internal/models"
	"bandgap_lab/internal/repository"
	"bandgap_lab/internal/service"
)

func TestLogData_Created(t *testing.T) {
	ing := &mockIngestion{reading: models.Reading{ID: 4, Temperature: 25, Current: 0.001, Voltage: 0.6}}
	r := newTestRouter(&service.Service{Ingestion: ing}, Options{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/log_data", `{"temperature":"25","current":0.001,"voltage":0.6}`))

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp logDataResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ID != 4 || resp.Message != msgDataLogged {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if string(ing.lastRaw.Temperature) != `"25"` {
		t.Fatalf("raw temperature not passed through: %s", ing.lastRaw.Temperature)
	}
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("missing %s header", requestIDHeader)
	}
}

func TestLogData_ValidationStatusPolicy(t *testing.T) {
	invalid := &service.FieldError{Field: "voltage", Err: service.ErrMissingField}

	cases := []struct {
		name   string
		legacy bool
		body   string
		err    error
		want   int
	}{
		{name: "invalid field", body: `{"temperature":1,"current":1}`, err: invalid, want: http.StatusBadRequest},
		{name: "invalid field legacy", legacy: true, body: `{"temperature":1,"current":1}`, err: invalid, want: http.StatusInternalServerError},
		{name: "malformed body", body: `{not json`, want: http.StatusBadRequest},
		{name: "malformed body legacy", legacy: true, body: `{not json`, want: http.StatusInternalServerError},
		{name: "store failure", body: `{"temperature":1,"current":1,"voltage":1}`, err: errors.New("disk full"), want: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ing := &mockIngestion{err: tc.err}
			r := newTestRouter(&service.Service{Ingestion: ing}, Options{LegacyStatusCodes: tc.legacy})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/log_data", tc.body))

			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d (body=%s)", w.Code, tc.want, w.Body.String())
			}
			var resp errorResponse
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			if !strings.HasPrefix(resp.Error, errLogDataPrefix) {
				t.Fatalf("error message %q lacks prefix", resp.Error)
			}
		})
	}
}

func TestGetAllData_EmptyIsArray(t *testing.T) {
	r := newTestRouter(&service.Service{Readings: &mockReadings{readings: []models.Reading{}}}, Options{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/get_all_data", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"data":[],"count":0}` {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestGetAllData_StoreError(t *testing.T) {
	r := newTestRouter(&service.Service{Readings: &mockReadings{err: errors.New("db down")}}, Options{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/get_all_data", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
}

// End-to-end over the real services and the in-memory log.
func TestReadings_EndToEnd_OrderAndCount(t *testing.T) {
	svc := service.NewService(repository.NewMemoryRepository())
	r := newTestRouter(svc, Options{})

	bodies := []string{
		`{"temperature":25,"current":0.001,"voltage":0.62}`,
		`{"temperature":"50","current":"0.002","voltage":"0.58"}`,
		`{"temperature":60,"current":0.003}`, // missing voltage: rejected
		`{"temperature":75,"current":1e-10,"voltage":0.5}`,
	}
	accepted := 0
	for i, b := range bodies {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/log_data", b))
		if w.Code == http.StatusCreated {
			var resp logDataResponse
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			if resp.ID != accepted {
				t.Fatalf("body %d: id=%d, want %d", i, resp.ID, accepted)
			}
			accepted++
		}
	}
	if accepted != 3 {
		t.Fatalf("accepted=%d, want 3", accepted)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/get_all_data", nil))
	var out allDataResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count != 3 || len(out.Data) != 3 {
		t.Fatalf("count=%d len=%d", out.Count, len(out.Data))
	}
	for i, want := range []float64{25, 50, 75} {
		if out.Data[i].Temperature != want || out.Data[i].ID != i {
			t.Fatalf("reading %d: %+v", i, out.Data[i])
		}
	}
	// Below-threshold current is still listed.
	if got := fmt.Sprint(out.Data[2].Current); got != "1e-10" {
		t.Fatalf("low-current reading altered: %s", got)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{}, Options{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), statusOK) {
		t.Fatalf("health: %d %s", w.Code, w.Body.String())
	}
}
