package httpx

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (Database, RedisClient, EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks maps a component name ("database", "redis", "event_bus") to its probe.
type HealthChecks map[string]HealthChecker

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler returns an http.HandlerFunc that probes every registered
// HealthChecker concurrently and reports degraded status if any of them fail.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}

		var (
			mu sync.Mutex
			wg sync.WaitGroup
		)
		for name, c := range checks {
			wg.Add(1)
			go func() {
				defer wg.Done()
				state := "ok"
				if err := c.Ping(ctx); err != nil {
					state = "unreachable"
				}
				mu.Lock()
				resp.Checks[name] = state
				if state != "ok" {
					resp.Status = "degraded"
				}
				mu.Unlock()
			}()
		}
		wg.Wait()

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
