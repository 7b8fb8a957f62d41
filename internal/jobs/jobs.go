package jobs

import (
	"context"
	"fmt"
	"time"

	"gamejam-portal-backend/internal/logger"

	"github.com/go-co-op/gocron/v2"
)

// PurgeResetTokensJob is the name of the job removing dead invite/reset tokens
const PurgeResetTokensJob = "purge-reset-tokens"

// TokenPurger deletes expired or used reset tokens
type TokenPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Scheduler runs periodic maintenance in-process
type Scheduler struct {
	sched gocron.Scheduler
}

// NewScheduler registers the maintenance jobs. Nothing runs until Start.
func NewScheduler(purger TokenPurger, purgeInterval time.Duration) (*Scheduler, error) {
	if purgeInterval <= 0 {
		return nil, fmt.Errorf("purge interval must be positive")
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(purgeInterval),
		gocron.NewTask(PurgeResetTokens, context.Background(), purger),
		gocron.WithName(PurgeResetTokensJob),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, fmt.Errorf("failed to register %s: %w", PurgeResetTokensJob, err)
	}

	return &Scheduler{sched: sched}, nil
}

// Start begins running the registered jobs
func (s *Scheduler) Start() {
	logger.New().Infof("scheduler started with %d jobs", len(s.sched.Jobs()))
	s.sched.Start()
}

// Shutdown stops the scheduler and waits for running jobs to finish
func (s *Scheduler) Shutdown() error {
	return s.sched.Shutdown()
}

// JobNames lists the registered jobs
func (s *Scheduler) JobNames() []string {
	var names []string
	for _, j := range s.sched.Jobs() {
		names = append(names, j.Name())
	}
	return names
}

// PurgeResetTokens is the body of the purge job
func PurgeResetTokens(ctx context.Context, purger TokenPurger) {
	log := logger.WithContext(ctx).WithField("job", PurgeResetTokensJob)
	n, err := purger.PurgeExpired(ctx)
	if err != nil {
		log.WithError(err).Errorf("token purge failed")
		return
	}
	log.Debugf("purged %d reset tokens", n)
}
