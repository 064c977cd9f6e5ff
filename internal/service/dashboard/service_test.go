package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/event-checkin-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepository struct {
	months     []attendance.MonthSheet
	monthsErr  error
	sheets     map[string]attendance.SheetAttendance
	sheetErr   error
	refreshErr error
	requested  []string
	refreshed  []string
}

func (f *fakeAttendanceRepository) ListMonths(ctx context.Context) ([]attendance.MonthSheet, error) {
	return f.months, f.monthsErr
}

func (f *fakeAttendanceRepository) ListAttendance(ctx context.Context, sheetName string) (attendance.SheetAttendance, error) {
	f.requested = append(f.requested, sheetName)
	if f.sheetErr != nil {
		return attendance.SheetAttendance{}, f.sheetErr
	}
	return f.sheets[sheetName], nil
}

func (f *fakeAttendanceRepository) Refresh(ctx context.Context, sheetName string) error {
	f.refreshed = append(f.refreshed, sheetName)
	return f.refreshErr
}

func newFakeRepo() *fakeAttendanceRepository {
	return &fakeAttendanceRepository{
		months: sheets("202405", "202403", "202312"),
		sheets: map[string]attendance.SheetAttendance{
			"202405": {
				Records: []attendance.AttendanceRecord{
					{No: 2, Group: 1, Join: false, Name: "Binh", CCCD: "012345678902"},
					{No: 1, Group: 1, Join: true, Name: "An", CCCD: "012345678901", Datetime: "2024-05-01 14:30:00"},
					{No: 3, Group: 2, Join: true, Name: "Chi", CCCD: "012345678903", Datetime: "2024-05-01 15:05:00"},
				},
				Meta: attendance.SheetMeta{SheetName: "202405", Total: 3},
			},
			"202312": {
				Records: []attendance.AttendanceRecord{},
				Meta:    attendance.SheetMeta{SheetName: "202312"},
			},
		},
	}
}

func TestDashboardService_BuildView_Defaults(t *testing.T) {
	repo := newFakeRepo()
	svc := NewDashboardService(repo)

	view, err := svc.BuildView(context.Background(), attendance.DashboardQuery{})

	require.NoError(t, err)
	assert.Equal(t, []string{"2024", "2023"}, view.Years)
	assert.Equal(t, "2024", view.Year)
	assert.Equal(t, "202405", view.SheetName)
	assert.Equal(t, string(StateFullySelected), view.State)
	require.Len(t, view.Months, 2)
	assert.Equal(t, "2024-05", view.Months[0].Label)
	assert.Equal(t, []string{"202405"}, repo.requested)

	require.Len(t, view.Groups, 2)
	assert.Equal(t, 1, view.Groups[0].Joined)
	assert.Equal(t, 1, view.Groups[0].Absent)
	assert.Equal(t, "An", view.Groups[0].Rows[0].Name)
	assert.Equal(t, 1, view.Groups[0].Rows[0].Index)
	assert.Equal(t, "2024-05-01 14:30:00", view.Groups[0].Rows[0].Time)
	assert.Equal(t, "-", view.Groups[0].Rows[1].Time)
	assert.Equal(t, 3, view.Total)
	require.NotNil(t, view.Meta)
	assert.Equal(t, 3, view.Meta.Total)
	assert.Empty(t, view.Error)
}

func TestDashboardService_BuildView_CompactTimes(t *testing.T) {
	svc := NewDashboardService(newFakeRepo())

	view, err := svc.BuildView(context.Background(), attendance.DashboardQuery{Compact: true})

	require.NoError(t, err)
	assert.True(t, view.Compact)
	assert.Equal(t, "14:30", view.Groups[0].Rows[0].Time)
}

func TestDashboardService_BuildView_UserPicksYear(t *testing.T) {
	repo := newFakeRepo()
	svc := NewDashboardService(repo)

	view, err := svc.BuildView(context.Background(), attendance.DashboardQuery{Year: "2023"})

	require.NoError(t, err)
	assert.Equal(t, "2023", view.Year)
	assert.Equal(t, "202312", view.SheetName)
	assert.Empty(t, view.Groups)
	assert.Equal(t, 0, view.Total)
	require.NotNil(t, view.Meta)
	assert.Equal(t, []string{"202312"}, repo.requested)
}

func TestDashboardService_BuildView_UserPicksMonth(t *testing.T) {
	repo := newFakeRepo()
	svc := NewDashboardService(repo)

	view, err := svc.BuildView(context.Background(), attendance.DashboardQuery{Year: "2024", SheetName: "202403"})

	require.NoError(t, err)
	assert.Equal(t, "202403", view.SheetName)
	assert.Nil(t, view.Meta)
	assert.Equal(t, []string{"202403"}, repo.requested)
}

func TestDashboardService_BuildView_YearWithoutMonths(t *testing.T) {
	repo := newFakeRepo()
	svc := NewDashboardService(repo)

	view, err := svc.BuildView(context.Background(), attendance.DashboardQuery{Year: "2019"})

	require.NoError(t, err)
	assert.Equal(t, string(StateYearOnly), view.State)
	assert.Empty(t, view.Months)
	assert.Empty(t, repo.requested)
}

func TestDashboardService_BuildView_MonthsFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.monthsErr = errors.New("boom")
	svc := NewDashboardService(repo)

	view, err := svc.BuildView(context.Background(), attendance.DashboardQuery{})

	assert.Error(t, err)
	assert.Equal(t, attendance.ViewErrorMonths, view.Error)
	assert.Empty(t, view.Years)
	assert.Empty(t, repo.requested)
}

func TestDashboardService_BuildView_AttendanceFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.sheetErr = attendance.ErrFetchAttendanceFailed
	svc := NewDashboardService(repo)

	view, err := svc.BuildView(context.Background(), attendance.DashboardQuery{})

	assert.ErrorIs(t, err, attendance.ErrFetchAttendanceFailed)
	assert.Equal(t, attendance.ViewErrorAttendance, view.Error)
	assert.Equal(t, "202405", view.SheetName)
	assert.Empty(t, view.Groups)
	assert.Nil(t, view.Meta)
}

func TestDashboardService_Refresh(t *testing.T) {
	repo := newFakeRepo()
	svc := NewDashboardService(repo)

	require.NoError(t, svc.Refresh(context.Background(), "202405"))
	assert.Equal(t, []string{"202405"}, repo.refreshed)

	assert.ErrorIs(t, svc.Refresh(context.Background(), "2024-05"), attendance.ErrInvalidSheetName)
	assert.Len(t, repo.refreshed, 1)

	repo.refreshErr = attendance.ErrRefreshFailed
	assert.ErrorIs(t, svc.Refresh(context.Background(), "202405"), attendance.ErrRefreshFailed)
}
