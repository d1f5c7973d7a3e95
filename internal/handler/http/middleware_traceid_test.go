package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_WithTraceID(t *testing.T) {
	h := newTestHandler(t, &stubSyncService{}, &stubAuthService{})

	wrapped := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "missing header gets a generated id"},
		{name: "well-formed id is reused", incoming: "5c29bdd1-93d4-4a7e-8d10-2f9a6c1b0e44", reused: true},
		{name: "malformed id is replaced", incoming: "not-a-uuid'); DROP TABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/sync/check", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}

			rec := httptest.NewRecorder()
			wrapped.ServeHTTP(rec, req)

			echoed := rec.Header().Get(traceIDHeader)
			_, err := uuid.Parse(echoed)
			require.NoError(t, err, "echoed trace id must be a UUID")

			if tt.reused {
				assert.Equal(t, tt.incoming, echoed)
			} else {
				assert.NotEqual(t, tt.incoming, echoed)
			}
		})
	}
}
