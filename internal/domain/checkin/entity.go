package checkin

import (
	"fmt"
	"strings"
)

// Outcome classifies a backend check-in response.
type Outcome int

const (
	OutcomeFailure Outcome = iota
	OutcomeSuccess
	OutcomeDuplicate
)

type MappedUser struct {
	Name string `json:"name"`
}

type Order struct {
	Index int `json:"index"`
	Total int `json:"total"`
}

// CheckinResult covers the three response shapes of the backend:
// success {ok, email, mapped, order, orderLabel}, duplicate {duplicate, event, email, order}
// and failure {ok:false, error, message}.
type CheckinResult struct {
	OK         bool        `json:"ok"`
	Duplicate  bool        `json:"duplicate,omitempty"`
	Event      string      `json:"event,omitempty"`
	Email      string      `json:"email,omitempty"`
	Mapped     *MappedUser `json:"mapped,omitempty"`
	Order      *Order      `json:"order,omitempty"`
	OrderLabel string      `json:"orderLabel,omitempty"`
	Error      string      `json:"error,omitempty"`
	Message    string      `json:"message,omitempty"`
}

// Failed builds a local failure result.
func Failed(code, message string) CheckinResult {
	return CheckinResult{OK: false, Error: code, Message: message}
}

func (r CheckinResult) Outcome() Outcome {
	switch {
	case r.OK:
		return OutcomeSuccess
	case r.Duplicate:
		return OutcomeDuplicate
	default:
		return OutcomeFailure
	}
}

// StatusMessage renders the text shown in the check-in status block.
func StatusMessage(r CheckinResult) string {
	switch r.Outcome() {
	case OutcomeSuccess:
		var b strings.Builder
		b.WriteString("✅ Check-in successful!")
		if who := r.displayName(); who != "" {
			b.WriteString("\n" + who)
		}
		if order := r.orderText(); order != "" {
			b.WriteString("\n" + order)
		}
		return b.String()
	case OutcomeDuplicate:
		event := r.Event
		if event == "" {
			event = "this event"
		}
		return fmt.Sprintf("⚠️ You have already checked in for %s.", event)
	default:
		return ToFriendlyError(r.Error, r.Message)
	}
}

func (r CheckinResult) displayName() string {
	name := ""
	if r.Mapped != nil {
		name = strings.TrimSpace(r.Mapped.Name)
	}
	switch {
	case r.Email != "" && name != "":
		return fmt.Sprintf("Email: %s (%s)", r.Email, name)
	case r.Email != "":
		return "Email: " + r.Email
	case name != "":
		return "Name: " + name
	}
	return ""
}

func (r CheckinResult) orderText() string {
	if r.OrderLabel != "" {
		return r.OrderLabel
	}
	if r.Order != nil && r.Order.Total > 0 {
		return fmt.Sprintf("Order: %d/%d", r.Order.Index, r.Order.Total)
	}
	return ""
}
