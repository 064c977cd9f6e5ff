package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/event-checkin-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// RouterOptions carries the cross-cutting settings of the router.
type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
	AdminEnabled   bool
}

func NewRouter(
	opts RouterOptions,
	JWTService jwt.Service,
	relayHandler RelayHandler,
	dashboardHandler DashboardHandler,
	checkinHandler CheckinHandler,
	authHandler AuthHandler,
) *chi.Mux {
	r := chi.NewRouter()

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowCredentials: true,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:           300,
		}))
	}

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  opts.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/checkin", http.StatusFound)
	})

	// Participant pages
	r.Route("/checkin", func(r chi.Router) {
		r.Get("/", checkinHandler.Page)
		r.Post("/cccd", checkinHandler.SubmitCCCD)
		r.Post("/google", checkinHandler.SubmitGoogleCredential)
		r.Route("/oauth/google", func(r chi.Router) {
			r.Get("/", checkinHandler.LoginWithGoogle)
			r.Get("/callback", checkinHandler.OAuthCallbackGoogle)
		})
	})

	adminOnly := middleware.AdminOnly(JWTService, opts.AdminEnabled)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/login", authHandler.LoginPage)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)

		// Requires an admin session when the gate is enabled
		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/", dashboardHandler.Page)
			r.Post("/refresh", dashboardHandler.Refresh)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(60 * time.Second))

		r.Post("/checkin", relayHandler.Checkin)

		r.Route("/admin", func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/months", relayHandler.Months)
			r.Get("/attendance", relayHandler.Attendance)
			r.Post("/refresh", relayHandler.Refresh)
			r.Get("/dashboard", dashboardHandler.View)
		})
	})

	return r
}
