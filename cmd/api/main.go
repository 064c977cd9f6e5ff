package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cmlabs-hris/event-checkin-go/internal/config"
	appHTTP "github.com/cmlabs-hris/event-checkin-go/internal/handler/http"
	"github.com/cmlabs-hris/event-checkin-go/internal/handler/http/view"
	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/cron"
	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/event-checkin-go/internal/repository/gas"
	checkinService "github.com/cmlabs-hris/event-checkin-go/internal/service/checkin"
	dashboardService "github.com/cmlabs-hris/event-checkin-go/internal/service/dashboard"
	"github.com/go-chi/httplog/v3"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	level := parseLevel(cfg.App.LogLevel)
	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "event-checkin"),
		slog.String("version", version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	if cfg.Backend.BaseURL == "" {
		slog.Warn("APPS_SCRIPT_URL is not set, backend calls will fail with missing_backend_url")
	}

	gasClient := gas.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	attendanceRepo := gas.NewAttendanceRepository(gasClient)
	checkinRepo := gas.NewCheckinRepository(gasClient)

	var verifier oauth.IDTokenVerifier
	if cfg.OAuth2Google.VerifyIDToken {
		verifier = oauth.NewIDTokenVerifier(cfg.OAuth2Google.ClientID)
	}

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.RedirectFlowEnabled() {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	var JWTService jwt.Service
	if cfg.Admin.Enabled() {
		JWTService = jwt.NewJWTService(cfg.Admin.JWTSecret, cfg.Admin.SessionTTL, cfg.IsProduction())
	}

	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo)
	checkinSvc := checkinService.NewCheckinService(checkinRepo, verifier)

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal("Failed to parse templates: ", err)
	}

	relayHandler := appHTTP.NewRelayHandler(gasClient)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc, renderer, cfg.Admin.Enabled())
	checkinHandler := appHTTP.NewCheckinHandler(
		checkinSvc,
		googleService,
		oauth.NewGoogleWidget,
		cfg.OAuth2Google.ClientID,
		renderer,
		cfg.IsProduction(),
	)
	authHandler := appHTTP.NewAuthHandler(JWTService, cfg.Admin.PasswordHash, renderer)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			LogLevel:       level,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AdminEnabled:   cfg.Admin.Enabled(),
		},
		JWTService,
		relayHandler,
		dashboardHandler,
		checkinHandler,
		authHandler,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := cron.NewScheduler()
	if JWTService != nil {
		cron.RegisterSessionJobs(scheduler, JWTService)
	}
	scheduler.Start(ctx)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.Backend.Timeout + 30*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	scheduler.Wait()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
