package checkin

import "context"

// CheckinService records a participant's presence through the backend.
type CheckinService interface {
	// Submit validates locally and forwards the check-in.
	// Validation failures are returned as validator.ValidationErrors and never reach the backend.
	Submit(ctx context.Context, req CheckinRequest) (CheckinResult, error)
}
