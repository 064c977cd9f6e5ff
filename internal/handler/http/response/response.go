package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform shape of every JSON answer produced locally.
// Backend answers are passed through as-is and never wrapped.
type Envelope struct {
	OK      bool        `json:"ok"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Raw     string      `json:"raw,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fallback := Envelope{
			OK:    false,
			Error: "encoding_error",
		}
		_ = json.NewEncoder(w).Encode(fallback)
	}
}

// PassThrough writes backend JSON bytes unchanged.
func PassThrough(w http.ResponseWriter, raw json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// Success responses
func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Envelope{
		OK:   true,
		Data: data,
	})
}

// Error responses
func Error(w http.ResponseWriter, statusCode int, code string) {
	writeJSON(w, statusCode, Envelope{
		OK:    false,
		Error: code,
	})
}

// ErrorWithData reports a failure that still carries a usable payload.
func ErrorWithData(w http.ResponseWriter, statusCode int, code string, data interface{}) {
	writeJSON(w, statusCode, Envelope{
		OK:    false,
		Error: code,
		Data:  data,
	})
}

func BadRequest(w http.ResponseWriter, code string, message string) {
	writeJSON(w, http.StatusBadRequest, Envelope{
		OK:      false,
		Error:   code,
		Message: message,
	})
}

func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "unauthorized")
}

func BadGateway(w http.ResponseWriter, code string, raw string) {
	writeJSON(w, http.StatusBadGateway, Envelope{
		OK:    false,
		Error: code,
		Raw:   raw,
	})
}

func InternalServerError(w http.ResponseWriter, code string) {
	Error(w, http.StatusInternalServerError, code)
}
