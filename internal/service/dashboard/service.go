package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/event-checkin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/validator"
)

type DashboardServiceImpl struct {
	attendance.AttendanceRepository
}

func NewDashboardService(repo attendance.AttendanceRepository) attendance.DashboardService {
	return &DashboardServiceImpl{
		AttendanceRepository: repo,
	}
}

// BuildView implements attendance.DashboardService.
// Fetch failures are reported through view.Error so the page can still render;
// the returned error is only set alongside it for logging.
func (s *DashboardServiceImpl) BuildView(ctx context.Context, query attendance.DashboardQuery) (attendance.DashboardView, error) {
	view := attendance.DashboardView{
		Years:   []string{},
		Months:  []attendance.MonthOption{},
		Groups:  []attendance.GroupView{},
		Compact: query.Compact,
	}

	months, err := s.ListMonths(ctx)
	if err != nil {
		view.Error = attendance.ViewErrorMonths
		view.State = string(StateNoYear)
		return view, fmt.Errorf("list months: %w", err)
	}

	selection := s.resolveSelection(months, query)
	view.Year = selection.Year
	view.SheetName = selection.SheetName
	view.State = string(selection.State())
	view.Years = DeriveYears(months)
	for _, m := range MonthsForYear(months, selection.Year) {
		view.Months = append(view.Months, attendance.MonthOption{
			SheetName: m.SheetName,
			Label:     MonthLabel(m.SheetName),
			Exists:    m.Exists,
		})
	}

	if selection.SheetName == "" {
		return view, nil
	}

	sheet, err := s.ListAttendance(ctx, selection.SheetName)
	if err != nil {
		view.Error = attendance.ViewErrorAttendance
		return view, fmt.Errorf("list attendance %s: %w", selection.SheetName, err)
	}

	view.Groups = BuildGroupViews(PartitionByGroup(sheet.Records), query.Compact)
	view.Total = len(sheet.Records)
	if sheet.Meta.SheetName != "" {
		meta := sheet.Meta
		if meta.Total == 0 {
			meta.Total = view.Total
		}
		view.Meta = &meta
	}

	slog.Debug("Dashboard view built", "sheet", selection.SheetName, "groups", len(view.Groups), "records", view.Total)
	return view, nil
}

// resolveSelection replays the explicit choices of the query through the reducer.
func (s *DashboardServiceImpl) resolveSelection(months []attendance.MonthSheet, query attendance.DashboardQuery) Selection {
	selection := Reduce(months, Selection{}, Action{Kind: ActionNone})
	if query.Year != "" {
		selection = Reduce(months, selection, SelectYear(query.Year))
	}
	if query.SheetName != "" {
		selection = Reduce(months, selection, SelectMonth(query.SheetName))
	}
	return selection
}

// Refresh implements attendance.DashboardService.
func (s *DashboardServiceImpl) Refresh(ctx context.Context, sheetName string) error {
	if !validator.IsValidSheetName(sheetName) {
		return attendance.ErrInvalidSheetName
	}
	if err := s.AttendanceRepository.Refresh(ctx, sheetName); err != nil {
		return fmt.Errorf("refresh %s: %w", sheetName, err)
	}
	return nil
}

// BuildGroupViews turns summaries into numbered, display-ready rows.
func BuildGroupViews(groups []attendance.GroupSummary, compact bool) []attendance.GroupView {
	views := make([]attendance.GroupView, 0, len(groups))
	for _, g := range groups {
		rows := make([]attendance.RowView, 0, len(g.Items))
		for i, item := range g.Items {
			rows = append(rows, attendance.RowView{
				Index: i + 1,
				No:    item.No,
				CCCD:  item.CCCD,
				Name:  item.Name,
				Join:  item.Join,
				Time:  FormatTimeForDisplay(item.Datetime, compact),
			})
		}
		views = append(views, attendance.GroupView{
			Group:  g.Group,
			Joined: g.Joined,
			Absent: g.Absent,
			Total:  len(g.Items),
			Rows:   rows,
		})
	}
	return views
}
