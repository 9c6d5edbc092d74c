// Package errhttp maps domain errors to HTTP status codes and the error envelope.
// Domains never format their own errors; every handler funnels failures here.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/answerking/answerking-api/pkg/apperr"
	"github.com/answerking/answerking-api/pkg/httpx"
	"github.com/answerking/answerking-api/pkg/logger"
	"github.com/answerking/answerking-api/pkg/telemetry"
)

// WriteError maps err to an HTTP status code and writes the error envelope.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors; their text is
// never sent to the client but is logged and reported to Sentry.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapErrorToStatus(err)
	if status >= http.StatusInternalServerError {
		ctx := r.Context()
		logger.FromContext(ctx).ErrorContext(ctx, "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		telemetry.CaptureError(ctx, err)
	}
	httpx.JSONError(w, status, httpx.MessageRequestFailed, details(err, status))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, httpx.ErrInvalidID):
		return http.StatusNotFound // 404
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict // 409
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}

func details(err error, status int) string {
	switch {
	case errors.Is(err, httpx.ErrInvalidID):
		return "Object not found"
	case status >= http.StatusInternalServerError:
		return http.StatusText(status)
	}
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	return err.Error()
}
