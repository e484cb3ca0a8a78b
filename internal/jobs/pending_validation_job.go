package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"logistics/internal/core/domain/model/session"
)

// PendingValidationJob watches for cash sessions that were closed but never
// reconciled by an accountant. Runs hourly and logs a summary per agency so
// drift surfaces the same day, not at month end.
type PendingValidationJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewPendingValidationJob creates the hourly pending-validation watchdog.
func NewPendingValidationJob(db *gorm.DB, logger *slog.Logger) *PendingValidationJob {
	return &PendingValidationJob{
		db:     db,
		cron:   cron.New(),
		logger: logger.With("component", "pending_validation_job"),
	}
}

type pendingAgency struct {
	AgencyID     string
	Sessions     int64
	OldestClosed time.Time
}

// Start begins the job, running at the top of every hour.
func (j *PendingValidationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending validation job started (running hourly)")
	return nil
}

// Stop stops the job.
func (j *PendingValidationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending validation job stopped")
}

func (j *PendingValidationJob) run(ctx context.Context) {
	var pending []pendingAgency
	err := j.db.WithContext(ctx).Raw(`
		SELECT agency_id, COUNT(*) AS sessions, MIN(closed_at) AS oldest_closed
		FROM sessions
		WHERE status = ?
		GROUP BY agency_id
	`, session.Closed.String()).Scan(&pending).Error
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending validation scan failed", "error", err)
		return
	}

	for _, p := range pending {
		j.logger.WarnContext(ctx, "Sessions awaiting validation",
			"agency_id", p.AgencyID,
			"sessions", p.Sessions,
			"oldest_closed", p.OldestClosed,
			"waiting", time.Since(p.OldestClosed).Round(time.Minute).String(),
		)
	}
}
