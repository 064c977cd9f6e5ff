package attendance

import "context"

// AttendanceRepository reads monthly sheets from the backend.
// Every call fetches fresh data; nothing is cached.
type AttendanceRepository interface {
	// ListMonths returns every reporting period known to the backend
	ListMonths(ctx context.Context) ([]MonthSheet, error)

	// ListAttendance returns all records of one period
	ListAttendance(ctx context.Context, sheetName string) (SheetAttendance, error)

	// Refresh asks the backend to recompute one period
	Refresh(ctx context.Context, sheetName string) error
}
