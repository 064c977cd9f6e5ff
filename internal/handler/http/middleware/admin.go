package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/cmlabs-hris/event-checkin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AdminOnly guards the dashboard when an admin password is configured.
// API callers get a 401 envelope; browsers are sent to the login page.
func AdminOnly(jwtService jwt.Service, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token := jwtauth.TokenFromHeader(r)
			if token == "" {
				if cookie, err := r.Cookie(jwt.SessionCookieName); err == nil {
					token = cookie.Value
				}
			}

			if token != "" {
				if _, _, err := jwtService.ValidateAdminToken(token); err == nil {
					next.ServeHTTP(w, r)
					return
				}
			}

			if strings.HasPrefix(r.URL.Path, "/api/") {
				response.Unauthorized(w)
				return
			}
			http.Redirect(w, r, "/admin/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
		}
		return http.HandlerFunc(hfn)
	}
}
