package relay

import (
	"context"
	"encoding/json"
	"net/url"
)

// Backend action tags understood by the Apps Script deployment.
const (
	ActionGetMonthlySheets = "getMonthlySheets"
	ActionGetAttendance    = "getAttendance"
	ActionRefreshSheet     = "refreshSheet"
)

// Request describes one outbound call to the backend.
type Request struct {
	Method string
	// Action is set as the "action" query parameter when non-empty.
	Action string
	// Query is added onto whatever query the base URL already carries.
	Query url.Values
	// Body is forwarded byte for byte. Empty means no body and no Content-Type.
	Body []byte
}

// Gateway forwards requests to the backend and returns its JSON body untouched.
type Gateway interface {
	Do(ctx context.Context, req Request) (json.RawMessage, error)
}
