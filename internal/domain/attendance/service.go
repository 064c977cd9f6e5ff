package attendance

import "context"

// DashboardService builds the admin attendance view.
type DashboardService interface {
	// BuildView fetches months and, once a period is selected, its records
	BuildView(ctx context.Context, query DashboardQuery) (DashboardView, error)

	// Refresh triggers backend recomputation for a period
	Refresh(ctx context.Context, sheetName string) error
}

// DashboardQuery carries the explicit choices coming from the page.
type DashboardQuery struct {
	Year      string
	SheetName string
	Compact   bool
}

// DashboardView is everything the dashboard page renders.
type DashboardView struct {
	Years     []string      `json:"years"`
	Months    []MonthOption `json:"months"`
	Year      string        `json:"year"`
	SheetName string        `json:"sheetName"`
	State     string        `json:"state"`
	Groups    []GroupView   `json:"groups"`
	Meta      *SheetMeta    `json:"meta,omitempty"`
	Total     int           `json:"total"`
	Compact   bool          `json:"compact"`
	Error     string        `json:"error,omitempty"`
}

// MonthOption is one entry of the month select.
type MonthOption struct {
	SheetName string `json:"sheetName"`
	Label     string `json:"label"`
	Exists    bool   `json:"exists"`
}

// GroupView is a GroupSummary with display-ready rows.
type GroupView struct {
	Group  int       `json:"group"`
	Joined int       `json:"joined"`
	Absent int       `json:"absent"`
	Total  int       `json:"total"`
	Rows   []RowView `json:"rows"`
}

// RowView is one table row.
type RowView struct {
	Index int    `json:"index"`
	No    int    `json:"no"`
	CCCD  string `json:"cccd"`
	Name  string `json:"name"`
	Join  bool   `json:"join"`
	Time  string `json:"time"`
}

// Dashboard error banners
const (
	ViewErrorMonths     = "months"
	ViewErrorAttendance = "attendance"
)
