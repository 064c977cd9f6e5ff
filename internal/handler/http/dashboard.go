package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/cmlabs-hris/event-checkin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/event-checkin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/event-checkin-go/internal/handler/http/view"
)

const (
	noticeRefreshed     = "refreshed"
	noticeRefreshFailed = "refresh_failed"
)

var dashboardMessages = map[string]string{
	attendance.ViewErrorMonths:     "Could not load the month list.",
	attendance.ViewErrorAttendance: "Could not load attendance data.",
	noticeRefreshFailed:            "Could not refresh the data. Please try again.",
	noticeRefreshed:                "Data refreshed.",
}

type DashboardHandler interface {
	Page(w http.ResponseWriter, r *http.Request)
	View(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService attendance.DashboardService
	renderer         view.Renderer
	authEnabled      bool
}

func NewDashboardHandler(dashboardService attendance.DashboardService, renderer view.Renderer, authEnabled bool) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
		renderer:         renderer,
		authEnabled:      authEnabled,
	}
}

// Page implements DashboardHandler.
func (h *dashboardHandlerImpl) Page(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	dashboardView, err := h.dashboardService.BuildView(r.Context(), dashboardQuery(r))
	if err != nil {
		slog.Error("Failed to build dashboard view", "error", err)
	}

	var banners []view.Banner
	if dashboardView.Error != "" {
		banners = append(banners, view.Banner{Tone: "error", Text: dashboardMessages[dashboardView.Error]})
	}
	switch q.Get("notice") {
	case noticeRefreshed:
		banners = append(banners, view.Banner{Tone: "ok", Text: dashboardMessages[noticeRefreshed]})
	case noticeRefreshFailed:
		banners = append(banners, view.Banner{Tone: "error", Text: dashboardMessages[noticeRefreshFailed]})
	}

	page := view.AdminPage{
		Title:       "Admin | Check-in",
		View:        dashboardView,
		Banners:     banners,
		AuthEnabled: h.authEnabled,
		ViewMode:    q.Get("view"),
	}
	if err := h.renderer.Render(w, http.StatusOK, view.PageAdmin, page); err != nil {
		slog.Error("Failed to render dashboard", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

// View implements DashboardHandler. It returns the same data as Page as JSON.
func (h *dashboardHandlerImpl) View(w http.ResponseWriter, r *http.Request) {
	dashboardView, err := h.dashboardService.BuildView(r.Context(), dashboardQuery(r))
	if err != nil {
		slog.Error("Dashboard view built with errors", "error", err)
		response.ErrorWithData(w, http.StatusBadGateway, dashboardView.Error, dashboardView)
		return
	}
	response.Success(w, dashboardView)
}

// Refresh implements DashboardHandler. It uses POST/redirect/GET so reloading
// the page does not trigger another backend recomputation.
func (h *dashboardHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		response.BadRequest(w, "bad_form", "Failed to parse form data")
		return
	}
	sheetName := r.PostForm.Get("sheetName")

	target := url.Values{}
	for _, key := range []string{"year", "sheetName", "view"} {
		if v := r.PostForm.Get(key); v != "" {
			target.Set(key, v)
		}
	}

	if err := h.dashboardService.Refresh(r.Context(), sheetName); err != nil {
		slog.Error("Failed to refresh sheet", "sheet", sheetName, "error", err)
		target.Set("notice", noticeRefreshFailed)
	} else {
		target.Set("notice", noticeRefreshed)
	}
	http.Redirect(w, r, "/admin?"+target.Encode(), http.StatusSeeOther)
}

func dashboardQuery(r *http.Request) attendance.DashboardQuery {
	q := r.URL.Query()
	return attendance.DashboardQuery{
		Year:      strings.TrimSpace(q.Get("year")),
		SheetName: strings.TrimSpace(q.Get("sheetName")),
		Compact:   isCompact(r),
	}
}

// isCompact picks the narrow table layout: ?view= wins, otherwise mobile user agents.
func isCompact(r *http.Request) bool {
	switch r.URL.Query().Get("view") {
	case "compact":
		return true
	case "full":
		return false
	}
	return strings.Contains(r.UserAgent(), "Mobi")
}
