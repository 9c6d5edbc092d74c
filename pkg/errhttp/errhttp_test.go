package errhttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/getsentry/sentry-go"

	"github.com/answerking/answerking-api/pkg/apperr"
	"github.com/answerking/answerking-api/pkg/httpx"
	"github.com/answerking/answerking-api/pkg/logger"
)

var (
	errOrderNotFound = apperr.NotFound("order")
	errItemExists    = apperr.Conflict("item")
	errBadQuantity   = apperr.Invalid("quantity", "must be greater than zero")
)

func newRequest() *http.Request {
	return httptest.NewRequest(http.MethodGet, "/api/orders/1", http.NoBody)
}

// recordingLogger keeps the error records and drops everything else.
type recordingLogger struct {
	logger.Logger
	errors []string
}

func (l *recordingLogger) ErrorContext(_ context.Context, msg string, args ...any) {
	l.errors = append(l.errors, fmt.Sprint(append([]any{msg}, args...)...))
}

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", errOrderNotFound, http.StatusNotFound},
		{"conflict", errItemExists, http.StatusConflict},
		{"validation", errBadQuantity, http.StatusBadRequest},
		{"invalid id", httpx.ErrInvalidID, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get order: %w", errOrderNotFound), http.StatusNotFound},
		{"wrapped validation", fmt.Errorf("set line: %w", errBadQuantity), http.StatusBadRequest},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, newRequest(), tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_Envelope(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantDetails string
	}{
		{"invalid id", httpx.ErrInvalidID, "Object not found"},
		{"not found", fmt.Errorf("get order: %w", errOrderNotFound), "get order: order not found"},
		{"validation keeps field reason only", fmt.Errorf("set line: %w", errBadQuantity), "quantity: must be greater than zero"},
		{"internal error hidden", errors.New("pq: connection refused"), "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, newRequest(), tt.err)

			var body httpx.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not valid JSON: %v", err)
			}
			if body.Error.Message != httpx.MessageRequestFailed {
				t.Errorf("message: got %q", body.Error.Message)
			}
			if body.Error.Details != tt.wantDetails {
				t.Errorf("details: got %q, want %q", body.Error.Details, tt.wantDetails)
			}
		})
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, newRequest(), errOrderNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}

func TestWriteError_ReportsInternalErrors(t *testing.T) {
	var captured []*sentry.Event
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn: "https://public@sentry.example.com/1",
		BeforeSend: func(e *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			captured = append(captured, e)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("sentry client: %v", err)
	}

	tests := []struct {
		name       string
		err        error
		wantReport bool
	}{
		{"internal error", fmt.Errorf("list orders: %w", errors.New("db down")), true},
		{"not found", errOrderNotFound, false},
		{"validation", errBadQuantity, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured = nil
			log := &recordingLogger{}
			ctx := logger.WithContext(context.Background(), log)
			ctx = sentry.SetHubOnContext(ctx, sentry.NewHub(client, sentry.NewScope()))
			r := newRequest().WithContext(ctx)

			WriteError(httptest.NewRecorder(), r, tt.err)

			if !tt.wantReport {
				if len(log.errors) != 0 || len(captured) != 0 {
					t.Fatalf("expected no report, got logs=%v events=%d", log.errors, len(captured))
				}
				return
			}
			if len(log.errors) != 1 || !strings.Contains(log.errors[0], "db down") {
				t.Fatalf("expected one error log naming the cause, got %v", log.errors)
			}
			if len(captured) != 1 {
				t.Fatalf("expected one Sentry event, got %d", len(captured))
			}
		})
	}
}
