package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request correlation ID. Sync clients retry
// upload sessions, and a shared ID lets a retried batch be tied to its
// first attempt in the server logs.
const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a correlation ID and stamps it on the
// request-scoped logger. A well-formed ID supplied by the caller is reused;
// anything else (absent, or not a UUID) is replaced with a fresh one, so
// arbitrary header values never reach the logs. The effective ID is echoed
// in the response for the client to log on its side.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.NewString()
		}

		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}
