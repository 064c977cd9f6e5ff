package dashboard

import "github.com/cmlabs-hris/event-checkin-go/internal/pkg/validator"

// FormatTimeForDisplay renders a check-in timestamp for a table cell.
// Compact displays get HH:mm; anything not in the backend layout is shown as-is.
func FormatTimeForDisplay(datetime string, compact bool) string {
	if datetime == "" {
		return "-"
	}
	if !compact {
		return datetime
	}
	t, ok := validator.ParseDateTime(datetime)
	if !ok {
		return datetime
	}
	return t.Format("15:04")
}
