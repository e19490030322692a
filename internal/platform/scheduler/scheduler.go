// Package scheduler runs background jobs on cron schedules.
package scheduler

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Job is a named unit of background work.
type Job interface {
	Run() error
	Name() string
}

// Scheduler manages background jobs.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// New creates a new scheduler. Schedules use six fields (seconds first).
func New(logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With(slog.String("component", "scheduler")),
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

// AddJob registers a job with a cron schedule, e.g. "0 30 16 * * MON-FRI".
func (s *Scheduler) AddJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		s.logger.Debug("Running job", slog.String("job", job.Name()))

		if err := job.Run(); err != nil {
			s.logger.Error("Job failed",
				slog.String("job", job.Name()),
				slog.String("error", err.Error()))
			return
		}
		s.logger.Debug("Job completed", slog.String("job", job.Name()))
	})
	if err != nil {
		return err
	}

	s.logger.Info("Job registered",
		slog.String("schedule", schedule),
		slog.String("job", job.Name()))
	return nil
}
