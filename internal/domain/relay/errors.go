package relay

import (
	"errors"
	"fmt"
)

// Stable error codes written into the {ok:false, error} envelope.
const (
	CodeMissingBackendURL = "missing_backend_url"
	CodeBadJSONFromGAS    = "bad_json_from_gas"
)

// ErrMissingBackendURL is the configuration error returned when no base URL is set.
var ErrMissingBackendURL = errors.New(CodeMissingBackendURL)

// UpstreamProtocolError means the backend answered with something that is not JSON.
type UpstreamProtocolError struct {
	StatusCode int
	Raw        string
}

func (e *UpstreamProtocolError) Error() string {
	return fmt.Sprintf("%s (upstream status %d)", CodeBadJSONFromGAS, e.StatusCode)
}

// TransportError wraps any failure reaching the backend.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
