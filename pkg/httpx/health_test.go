package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/answerking/answerking-api/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

type healthBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func probe(t *testing.T, checks httpx.HealthChecks) (*httptest.ResponseRecorder, healthBody) {
	t.Helper()
	rr := httptest.NewRecorder()
	httpx.HealthHandler(checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
	var body healthBody
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rr, body
}

func TestHealthHandler(t *testing.T) {
	down := errors.New("down")
	tests := []struct {
		name        string
		checks      httpx.HealthChecks
		wantStatus  int
		wantOverall string
		unreachable []string
	}{
		{
			name: "all healthy",
			checks: httpx.HealthChecks{
				"database": &stubChecker{}, "redis": &stubChecker{}, "event_bus": &stubChecker{},
			},
			wantStatus:  http.StatusOK,
			wantOverall: "ok",
		},
		{
			name: "database down",
			checks: httpx.HealthChecks{
				"database": &stubChecker{err: down}, "redis": &stubChecker{}, "event_bus": &stubChecker{},
			},
			wantStatus:  http.StatusServiceUnavailable,
			wantOverall: "degraded",
			unreachable: []string{"database"},
		},
		{
			name: "redis and event bus down",
			checks: httpx.HealthChecks{
				"database": &stubChecker{}, "redis": &stubChecker{err: down}, "event_bus": &stubChecker{err: down},
			},
			wantStatus:  http.StatusServiceUnavailable,
			wantOverall: "degraded",
			unreachable: []string{"redis", "event_bus"},
		},
		{
			name:        "no checks registered",
			checks:      httpx.HealthChecks{},
			wantStatus:  http.StatusOK,
			wantOverall: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, body := probe(t, tt.checks)
			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rr.Code)
			}
			if body.Status != tt.wantOverall {
				t.Errorf("status: got %q, want %q", body.Status, tt.wantOverall)
			}
			for _, name := range tt.unreachable {
				if body.Checks[name] != "unreachable" {
					t.Errorf("%s: got %q, want unreachable", name, body.Checks[name])
				}
			}
			if len(body.Checks) != len(tt.checks) {
				t.Errorf("expected %d checks reported, got %d", len(tt.checks), len(body.Checks))
			}
		})
	}
}

func TestHealthHandler_ContentType(t *testing.T) {
	rr, _ := probe(t, httpx.HealthChecks{"database": &stubChecker{}})
	ct := rr.Header().Get("Content-Type")
	if ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json; charset=utf-8")
	}
}
