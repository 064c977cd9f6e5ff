package checkin

import "context"

// CheckinRepository writes check-ins to the attendance log owned by the backend.
type CheckinRepository interface {
	Checkin(ctx context.Context, req CheckinRequest) (CheckinResult, error)
}
