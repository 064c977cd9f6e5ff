package gas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/event-checkin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/event-checkin-go/internal/domain/relay"
)

type envelope[T any] struct {
	OK    bool                  `json:"ok"`
	Error string                `json:"error,omitempty"`
	Data  T                     `json:"data"`
	Meta  *attendance.SheetMeta `json:"meta,omitempty"`
}

type attendanceRepositoryImpl struct {
	gateway relay.Gateway
}

func NewAttendanceRepository(gateway relay.Gateway) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{gateway: gateway}
}

// ListMonths implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListMonths(ctx context.Context) ([]attendance.MonthSheet, error) {
	raw, err := r.gateway.Do(ctx, relay.Request{
		Method: http.MethodGet,
		Action: relay.ActionGetMonthlySheets,
	})
	if err != nil {
		return nil, err
	}

	var resp envelope[[]attendance.MonthSheet]
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrFetchMonthsFailed, err)
	}
	if !resp.OK {
		return nil, backendError(attendance.ErrFetchMonthsFailed, resp.Error)
	}
	if resp.Data == nil {
		return []attendance.MonthSheet{}, nil
	}
	return resp.Data, nil
}

// ListAttendance implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListAttendance(ctx context.Context, sheetName string) (attendance.SheetAttendance, error) {
	raw, err := r.gateway.Do(ctx, relay.Request{
		Method: http.MethodGet,
		Action: relay.ActionGetAttendance,
		Query:  url.Values{"sheetName": {sheetName}},
	})
	if err != nil {
		return attendance.SheetAttendance{}, err
	}

	var resp envelope[[]attendance.AttendanceRecord]
	if err := json.Unmarshal(raw, &resp); err != nil {
		return attendance.SheetAttendance{}, fmt.Errorf("%w: %v", attendance.ErrFetchAttendanceFailed, err)
	}
	if !resp.OK {
		return attendance.SheetAttendance{}, backendError(attendance.ErrFetchAttendanceFailed, resp.Error)
	}

	result := attendance.SheetAttendance{Records: resp.Data}
	if result.Records == nil {
		result.Records = []attendance.AttendanceRecord{}
	}
	if resp.Meta != nil {
		result.Meta = *resp.Meta
	}
	return result, nil
}

// Refresh implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Refresh(ctx context.Context, sheetName string) error {
	raw, err := r.gateway.Do(ctx, relay.Request{
		Method: http.MethodPost,
		Action: relay.ActionRefreshSheet,
		Query:  url.Values{"sheetName": {sheetName}},
	})
	if err != nil {
		return err
	}

	var resp envelope[json.RawMessage]
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("%w: %v", attendance.ErrRefreshFailed, err)
	}
	if !resp.OK {
		return backendError(attendance.ErrRefreshFailed, resp.Error)
	}
	return nil
}

func backendError(sentinel error, code string) error {
	if code == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, code)
}
