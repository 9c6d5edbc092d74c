package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ErrInvalidID is returned by PathID when the URL parameter is not a positive integer.
// The error boundary reports it as 404 since no object can have that id.
var ErrInvalidID = errors.New("invalid id")

// PathID parses the chi URL parameter key as a positive int64.
func PathID(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
