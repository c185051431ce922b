package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/attrvalid/pkg/logger"
)

// HealthCheckHandler serves liveness and readiness checks.
//
//   - Liveness: with no checks it returns 200 OK with body "ALIVE".
//   - Readiness: every check runs against the request context; 200 OK with
//     body "READY" when all pass, 503 Service Unavailable with body
//     "NOT_READY" otherwise.
func HealthCheckHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
