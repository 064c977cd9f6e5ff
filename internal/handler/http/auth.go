package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/event-checkin-go/internal/handler/http/view"
	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler gates the dashboard behind a single shared admin password.
type AuthHandler interface {
	LoginPage(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService   jwt.Service
	passwordHash []byte
	renderer     view.Renderer
}

func NewAuthHandler(jwtService jwt.Service, passwordHash string, renderer view.Renderer) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:   jwtService,
		passwordHash: []byte(passwordHash),
		renderer:     renderer,
	}
}

// LoginPage implements AuthHandler.
func (a *AuthHandlerImpl) LoginPage(w http.ResponseWriter, r *http.Request) {
	if len(a.passwordHash) == 0 {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	a.render(w, http.StatusOK, view.LoginPage{
		Title: "Admin sign-in",
		Next:  safeNext(r.URL.Query().Get("next")),
	})
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	if len(a.passwordHash) == 0 {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form data", http.StatusBadRequest)
		return
	}
	next := safeNext(r.PostForm.Get("next"))

	password := r.PostForm.Get("password")
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		slog.Warn("Admin login failed", "remote", r.RemoteAddr)
		a.render(w, http.StatusUnauthorized, view.LoginPage{
			Title: "Admin sign-in",
			Error: "Wrong password.",
			Next:  next,
		})
		return
	}

	token, expiresAt, err := a.jwtService.GenerateAdminToken()
	if err != nil {
		slog.Error("Failed to issue admin session", "error", err)
		http.Error(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, a.jwtService.SessionCookie(token, expiresAt))
	slog.Info("Admin signed in", "remote", r.RemoteAddr)
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if a.jwtService != nil {
		if cookie, err := r.Cookie(jwt.SessionCookieName); err == nil && cookie.Value != "" {
			if jti, expiresAt, err := a.jwtService.ValidateAdminToken(cookie.Value); err == nil {
				a.jwtService.RevokeToken(jti, expiresAt)
			}
		}
		http.SetCookie(w, a.jwtService.ClearSessionCookie())
	}
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

func (a *AuthHandlerImpl) render(w http.ResponseWriter, status int, page view.LoginPage) {
	if err := a.renderer.Render(w, status, view.PageLogin, page); err != nil {
		slog.Error("Failed to render login page", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

// safeNext only allows local paths so the login form cannot redirect off-site.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/admin"
	}
	return next
}
