package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"turnero/internal/entities"
)

// Purger is the slice of the reservation repository the retention job needs.
type Purger interface {
	PurgeBefore(ctx context.Context, date string) (int64, error)
}

// Retention deletes reservations older than the retention window on a nightly
// schedule. It keeps the ledger from growing without bound; cancelled and
// served appointments need no audit trail.
type Retention struct {
	purger Purger
	days   int
	log    *zap.Logger
	cron   *cron.Cron
}

func NewRetention(purger Purger, days int, log *zap.Logger) *Retention {
	return &Retention{
		purger: purger,
		days:   days,
		log:    log,
		cron:   cron.New(),
	}
}

// Start schedules the nightly purge. A zero retention window disables it.
func (j *Retention) Start() error {
	if j.days == 0 {
		j.log.Info("retention job disabled")
		return nil
	}
	if _, err := j.cron.AddFunc("0 3 * * *", j.RunOnce); err != nil {
		return err
	}
	j.cron.Start()
	j.log.Info("retention job scheduled", zap.Int("days", j.days))
	return nil
}

func (j *Retention) Stop() {
	j.cron.Stop()
}

// RunOnce performs a single purge pass immediately.
func (j *Retention) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -j.days).Format(entities.DateLayout)
	count, err := j.purger.PurgeBefore(ctx, cutoff)
	if err != nil {
		j.log.Error("retention purge failed", zap.String("cutoff", cutoff), zap.Error(err))
		return
	}
	j.log.Info("retention purge done", zap.String("cutoff", cutoff), zap.Int64("purged", count))
}
