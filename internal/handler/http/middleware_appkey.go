package http

import (
	"net/http"

	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/utils"
	"github.com/tuckersync/tucker-sync/models"
)

const appKeyHeader = "X-App-Key"

// checkAppKey rejects any request whose X-App-Key header is not in the
// configured key set. It runs before authentication: an unknown application
// never reaches the login endpoint. An empty configured set disables the
// check.
func (h *Handler) checkAppKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(h.appKeys) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get(appKeyHeader)
		if _, ok := h.appKeys[key]; !ok {
			logger.FromRequest(r).Err(ErrInvalidAppKey).Str("uri", r.RequestURI).Send()
			utils.WriteJSON(w, models.AuthResponse{Error: models.APIInvalidKey}, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
