package http

import (
	"errors"
	"net/http"

	"github.com/tuckersync/tucker-sync/internal/schema"
	"github.com/tuckersync/tucker-sync/internal/service"
	"github.com/tuckersync/tucker-sync/internal/store"
	"github.com/tuckersync/tucker-sync/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrBatchLengthMismatch:     http.StatusBadRequest,
	service.ErrNoClientID:              http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrClientNotOwned:          http.StatusForbidden,

	// Full resync is a protocol state, not a transport failure: the client
	// gets 200 and reads the in-band code.
	service.ErrFullSyncRequired: http.StatusOK,

	schema.ErrUnknownClass:   http.StatusBadRequest,
	schema.ErrInvalidPayload: http.StatusBadRequest,
	schema.ErrNotShareable:   http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrNoClientWasFound:   http.StatusForbidden,
	store.ErrObjectNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

var errorCodeMap = map[error]models.APIErrorCode{
	service.ErrInvalidDataProvided:     models.APIMalformedRequest,
	service.ErrBatchLengthMismatch:     models.APIMalformedRequest,
	service.ErrNoClientID:              models.APIMalformedRequest,
	service.ErrWrongPassword:           models.APIAuthFail,
	service.ErrTokenIsExpiredOrInvalid: models.APIAuthFail,
	service.ErrClientNotOwned:          models.APIAuthFail,
	service.ErrFullSyncRequired:        models.APIFullSyncRequired,

	schema.ErrUnknownClass:   models.APIMalformedRequest,
	schema.ErrInvalidPayload: models.APIMalformedRequest,
	schema.ErrNotShareable:   models.APIMalformedRequest,

	store.ErrEmailAlreadyExists: models.APIMalformedRequest,
	store.ErrNoUserWasFound:     models.APIAuthFail,
	store.ErrNoClientWasFound:   models.APIAuthFail,
}

// codeFromError maps a service error to the in-band code every response body
// carries under the "error" key.
func codeFromError(err error) models.APIErrorCode {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return models.APIUnknown
}
