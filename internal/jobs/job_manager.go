// Package jobs provides scheduled background tasks, built on
// github.com/robfig/cron/v3. Jobs only observe and report; state changes stay
// in the command handlers.
package jobs

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	pendingValidationJob *PendingValidationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(db *gorm.DB, logger *slog.Logger) *JobManager {
	return &JobManager{
		pendingValidationJob: NewPendingValidationJob(db, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingValidationJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending validation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingValidationJob.Stop()
}
