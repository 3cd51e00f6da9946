package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Cycle is one unit of scheduled work.
type Cycle interface {
	RunCycle(ctx context.Context) error
}

// PollScheduler runs a Cycle immediately and then once per period.
// A tick that arrives while a cycle is still running is skipped.
type PollScheduler struct {
	cronEngine *cron.Cron
	cycle      Cycle
	logger     *logrus.Entry
	period     time.Duration
	entryID    cron.EntryID
	firstRun   sync.WaitGroup
}

func NewPollScheduler(cycle Cycle, logger *logrus.Entry, period time.Duration) *PollScheduler {
	return &PollScheduler{
		cronEngine: cron.New(
			cron.WithLocation(time.Local),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		cycle:  cycle,
		logger: logger,
		period: period,
	}
}

// Start registers the polling job and triggers the first cycle right away.
func (s *PollScheduler) Start() error {
	s.logger.WithField("period", s.period).Info("Starting poll scheduler...")

	id, err := s.cronEngine.AddFunc(fmt.Sprintf("@every %s", s.period), s.execute)
	if err != nil {
		return fmt.Errorf("could not add polling job: %w", err)
	}
	s.entryID = id

	s.cronEngine.Start()
	// The wrapped job carries the SkipIfStillRunning guard, so this run and the first tick never overlap.
	job := s.cronEngine.Entry(id).WrappedJob
	s.firstRun.Add(1)
	go func() {
		defer s.firstRun.Done()
		job.Run()
	}()

	s.logger.Info("Poll scheduler started.")
	return nil
}

func (s *PollScheduler) execute() {
	// A cycle may not outlive the period it belongs to.
	ctx, cancel := context.WithTimeout(context.Background(), s.period)
	defer cancel()

	started := time.Now()
	if err := s.cycle.RunCycle(ctx); err != nil {
		s.logger.WithError(err).Warn("Cycle finished with a fault; next attempt after the period")
		return
	}
	s.logger.WithField("duration", time.Since(started)).Debug("Cycle finished")
}

// Next returns when the next scheduled cycle is due.
func (s *PollScheduler) Next() time.Time {
	return s.cronEngine.Entry(s.entryID).Next
}

func (s *PollScheduler) Stop() {
	s.logger.Info("Stopping poll scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()
	s.firstRun.Wait()
	s.logger.Info("Poll scheduler gracefully stopped.")
}
