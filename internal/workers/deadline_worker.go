package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"recruitflow_backend/internal/logger"
)

const deadlineSweepInterval = time.Hour

// DeadlineWorker closes job openings whose application deadline has passed
// so they drop out of the public listing.
type DeadlineWorker struct {
	db *gorm.DB
}

func NewDeadlineWorker(db *gorm.DB) *DeadlineWorker {
	return &DeadlineWorker{db: db}
}

// Start runs the sweep loop until ctx is cancelled. One sweep runs
// immediately so a restart does not leave stale openings up for an hour.
func (w *DeadlineWorker) Start(ctx context.Context) {
	go func() {
		w.sweep()

		ticker := time.NewTicker(deadlineSweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("deadline worker stopped")
				return
			case <-ticker.C:
				w.sweep()
			}
		}
	}()
}

func (w *DeadlineWorker) sweep() {
	result := w.db.Exec(`
		UPDATE job_openings
		SET status = 'Closed', updated_at = NOW()
		WHERE status = 'Active'
		AND deadline IS NOT NULL
		AND deadline < NOW()
	`)
	if result.Error != nil {
		logger.Error("deadline sweep failed", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		logger.Info("closed expired job openings", "count", result.RowsAffected)
	}
}
