package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/directory/internal/directory/service"
	"github.com/aussiebroadwan/directory/pkg/directorysdk"
	"github.com/aussiebroadwan/directory/pkg/httpx"
	"github.com/aussiebroadwan/directory/pkg/slogx"
)

var duplicateErrs = []error{
	service.ErrDuplicateEmail,
	service.ErrDuplicateGroupSlug,
	service.ErrDuplicateResponsibility,
	service.ErrDuplicateMembership,
	service.ErrDuplicateRole,
}

// writeServiceError maps a service error to its HTTP response. what names
// the resource for not-found and server error messages.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, what string) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		directorysdk.NewValidationError(verr.Message, verr.Fields).WriteError(w)
		return
	}

	for _, dup := range duplicateErrs {
		if errors.Is(err, dup) {
			directorysdk.NewAPIError(http.StatusConflict, directorysdk.ErrorCodeConflict, dup.Error()).WriteError(w)
			return
		}
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		directorysdk.NewAPIError(http.StatusNotFound, directorysdk.ErrorCodeNotFound, what+" not found").WriteError(w)
	case errors.Is(err, service.ErrResponsibilityUnavailable):
		directorysdk.NewAPIError(http.StatusUnprocessableEntity, directorysdk.ErrorCodeUnprocessable, err.Error()).
			WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "resource", what, "error", err)
		directorysdk.ErrServerError.WriteError(w)
	}
}

// decodeBody decodes a JSON request body, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(r, dst); err != nil {
		slogx.FromContext(r.Context()).Debug("bad request body", "error", err)
		directorysdk.NewAPIError(http.StatusBadRequest, directorysdk.ErrorCodeInvalidRequest, "invalid JSON body").
			WriteError(w)
		return false
	}
	return true
}
