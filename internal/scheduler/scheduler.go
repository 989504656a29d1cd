package scheduler

import (
	"context"
	"strings"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"
)

// Job is the unit of work the scheduler triggers.
type Job interface {
	Run(ctx context.Context)
}

// Scheduler triggers the scrape job on a fixed interval, or at fixed daily
// times when any are configured. Runs are single-flight by construction: one
// job, invocations hours apart relative to a run of seconds.
type Scheduler struct {
	scheduler *gocron.Scheduler
	job       Job
	interval  time.Duration
	dailyAt   []string
}

// New creates a Scheduler. dailyAt, when non-empty, takes precedence over
// interval; entries are "HH:MM" local to UTC.
func New(job Job, interval time.Duration, dailyAt []string) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		job:       job,
		interval:  interval,
		dailyAt:   dailyAt,
	}
}

// Start schedules the job and starts the underlying scheduler in the
// background.
func (s *Scheduler) Start() error {
	run := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		s.job.Run(ctx)
	}

	var err error
	if len(s.dailyAt) > 0 {
		_, err = s.scheduler.Every(1).Day().At(strings.Join(s.dailyAt, ";")).Do(run)
	} else {
		minutes := int(s.interval.Minutes())
		if minutes <= 0 {
			minutes = 360
		}
		_, err = s.scheduler.Every(minutes).Minutes().Do(run)
	}
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	log.Info().Dur("interval", s.interval).Strs("daily_at", s.dailyAt).Msg("scrape scheduler started")
	return nil
}

// Stop stops the scheduler and cancels any future runs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
