package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/jwt"
)

const revokedSweepInterval = 10 * time.Minute

// RegisterSessionJobs adds housekeeping for admin sessions.
func RegisterSessionJobs(scheduler *Scheduler, jwtService jwt.Service) {
	scheduler.AddJob("prune_revoked_admin_sessions", revokedSweepInterval, func(ctx context.Context) error {
		if removed := jwtService.PruneRevoked(time.Now()); removed > 0 {
			slog.Info("Pruned revoked admin sessions", "count", removed)
		}
		return nil
	})
}
