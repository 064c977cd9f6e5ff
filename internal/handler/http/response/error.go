package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/event-checkin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/event-checkin-go/internal/domain/relay"
	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		writeJSON(w, http.StatusUnprocessableEntity, Envelope{
			OK:      false,
			Error:   "validation_error",
			Message: validationErrs.First(),
			Data:    validationErrs.ToMap(),
		})
		return
	}

	var protoErr *relay.UpstreamProtocolError
	var transportErr *relay.TransportError

	switch {
	// Relay errors
	case errors.Is(err, relay.ErrMissingBackendURL):
		InternalServerError(w, relay.CodeMissingBackendURL)
	case errors.As(err, &protoErr):
		BadGateway(w, relay.CodeBadJSONFromGAS, protoErr.Raw)
	case errors.As(err, &transportErr):
		InternalServerError(w, transportErr.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidSheetName):
		BadRequest(w, attendance.ErrInvalidSheetName.Error(), "sheetName must be YYYYMM")
	case errors.Is(err, attendance.ErrRefreshFailed):
		Error(w, http.StatusBadGateway, attendance.ErrRefreshFailed.Error())

	// Default
	default:
		InternalServerError(w, err.Error())
	}
}
