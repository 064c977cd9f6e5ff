package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidSheetName = errors.New("invalid_sheetName")

	// Backend reported ok:false for one of the dashboard calls
	ErrFetchMonthsFailed     = errors.New("fetch_months_failed")
	ErrFetchAttendanceFailed = errors.New("fetch_attendance_failed")
	ErrRefreshFailed         = errors.New("refresh_failed")
)
