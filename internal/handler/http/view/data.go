package view

import (
	"html/template"

	"github.com/cmlabs-hris/event-checkin-go/internal/domain/attendance"
)

// Banner is a status or error notice.
type Banner struct {
	Tone string
	Text string
}

// AdminPage is the data of the dashboard template.
type AdminPage struct {
	Title       string
	View        attendance.DashboardView
	Banners     []Banner
	AuthEnabled bool
	ViewMode    string
}

// CheckinPage is the data of the check-in template.
type CheckinPage struct {
	Title         string
	Event         string
	Button        template.HTML
	ScriptURL     string
	Status        string
	CCCD          string
	CCCDError     string
	RedirectLogin string
	Tone          string
}

// LoginPage is the data of the admin login template.
type LoginPage struct {
	Title string
	Error string
	Next  string
}
