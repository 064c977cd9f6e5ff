package checkin

import (
	"strings"

	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/validator"
)

// CheckinRequest is forwarded to the backend as {idToken|cccd, event, ua}.
type CheckinRequest struct {
	IDToken string `json:"idToken,omitempty"`
	CCCD    string `json:"cccd,omitempty" validate:"omitempty,cccd"`
	Event   string `json:"event" validate:"required"`
	UA      string `json:"ua"`
}

var checkinMessages = map[string]string{
	"cccd.cccd":      "CCCD must be exactly 12 digits.",
	"event.required": "No event selected. Open the link with ?event=...",
}

func (r *CheckinRequest) Validate() error {
	r.CCCD = strings.TrimSpace(r.CCCD)
	r.Event = strings.TrimSpace(r.Event)

	var errs validator.ValidationErrors
	if err := validator.Struct(r, checkinMessages); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, fieldErrs...)
	}

	hasToken := !validator.IsEmpty(r.IDToken)
	hasCCCD := r.CCCD != ""
	if hasToken == hasCCCD {
		errs = append(errs, validator.ValidationError{
			Field:   "cccd",
			Message: "Sign in with Google OR enter a CCCD number.",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// IsCCCD reports whether this is a national ID check-in.
func (r CheckinRequest) IsCCCD() bool {
	return r.CCCD != ""
}
