package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/event-checkin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/event-checkin-go/internal/domain/relay"
	"github.com/cmlabs-hris/event-checkin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/validator"
)

const (
	maxCheckinBody   = 1 << 20
	codeBodyTooLarge = "body_too_large"
)

// RelayHandler exposes the backend on the same origin so browsers never hit CORS.
type RelayHandler interface {
	Months(w http.ResponseWriter, r *http.Request)
	Attendance(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Checkin(w http.ResponseWriter, r *http.Request)
}

type relayHandlerImpl struct {
	gateway relay.Gateway
}

func NewRelayHandler(gateway relay.Gateway) RelayHandler {
	return &relayHandlerImpl{gateway: gateway}
}

// Months implements RelayHandler.
func (h *relayHandlerImpl) Months(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, relay.Request{
		Method: http.MethodGet,
		Action: relay.ActionGetMonthlySheets,
	})
}

// Attendance implements RelayHandler.
func (h *relayHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	sheetName := r.URL.Query().Get("sheetName")
	if !validator.IsValidSheetName(sheetName) {
		response.HandleError(w, attendance.ErrInvalidSheetName)
		return
	}
	h.forward(w, r, relay.Request{
		Method: http.MethodGet,
		Action: relay.ActionGetAttendance,
		Query:  url.Values{"sheetName": {sheetName}},
	})
}

// Refresh implements RelayHandler.
func (h *relayHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	sheetName := r.URL.Query().Get("sheetName")
	if !validator.IsValidSheetName(sheetName) {
		response.HandleError(w, attendance.ErrInvalidSheetName)
		return
	}
	h.forward(w, r, relay.Request{
		Method: http.MethodPost,
		Action: relay.ActionRefreshSheet,
		Query:  url.Values{"sheetName": {sheetName}},
	})
}

// Checkin implements RelayHandler. The body is kept as raw text so it reaches
// the backend byte for byte.
func (h *relayHandlerImpl) Checkin(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCheckinBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			slog.Warn("Check-in body too large", "limit", tooLarge.Limit)
			response.Error(w, http.StatusRequestEntityTooLarge, codeBodyTooLarge)
			return
		}
		slog.Error("Failed to read check-in body", "error", err)
		response.InternalServerError(w, err.Error())
		return
	}

	h.forward(w, r, relay.Request{
		Method: http.MethodPost,
		Query:  r.URL.Query(),
		Body:   body,
	})
}

func (h *relayHandlerImpl) forward(w http.ResponseWriter, r *http.Request, req relay.Request) {
	raw, err := h.gateway.Do(r.Context(), req)
	if err != nil {
		slog.Error("Relay to backend failed", "action", req.Action, "path", r.URL.Path, "error", err)
		response.HandleError(w, err)
		return
	}
	response.PassThrough(w, raw)
}
