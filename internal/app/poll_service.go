// internal/app/poll_service.go
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// failureFormat is the chat message sent when a cycle fails.
const failureFormat = "Сбой в работе программы: %v"

// HomeworkAPI fetches raw homework status payloads.
type HomeworkAPI interface {
	HomeworkStatuses(ctx context.Context, fromDate int64) (any, error)
}

// State of the polling driver.
type State string

const (
	StateRunning           State = "RUNNING"
	StateFaultedRecovering State = "FAULTED_RECOVERING"
)

// Snapshot is a point-in-time view of the driver, used by the /status command.
type Snapshot struct {
	State       State
	Cursor      int64
	LastSent    string
	LastCycleAt time.Time
	LastError   string
	Cycles      int
}

// PollService runs fetch → validate → translate → notify cycles.
// Cycles must not overlap; the scheduler guarantees that.
type PollService struct {
	api      HomeworkAPI
	notifier *Notifier
	logger   *logrus.Entry
	now      func() time.Time

	mu          sync.Mutex
	state       State
	cursor      int64
	lastSent    string
	lastCycleAt time.Time
	lastErr     error
	cycles      int
}

// PollOption configures a PollService.
type PollOption func(*PollService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) PollOption {
	return func(s *PollService) {
		s.now = now
	}
}

// WithCursor sets the initial from_date cursor (default 0: the whole history).
func WithCursor(cursor int64) PollOption {
	return func(s *PollService) {
		s.cursor = cursor
	}
}

func NewPollService(api HomeworkAPI, notifier *Notifier, logger *logrus.Entry, opts ...PollOption) *PollService {
	s := &PollService{
		api:      api,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		state:    StateRunning,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunCycle performs one polling cycle. Any fault is logged and reported to the chat,
// never propagated as a panic; the returned error is informational.
func (s *PollService) RunCycle(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during cycle: %v", r)
		}
		s.finishCycle(err)
	}()
	return s.cycle(ctx)
}

func (s *PollService) cycle(ctx context.Context) error {
	cursor := s.Snapshot().Cursor
	logCtx := s.logger.WithField("from_date", cursor)
	logCtx.Debug("Requesting homework statuses")

	payload, err := s.api.HomeworkStatuses(ctx, cursor)
	if err != nil {
		return fmt.Errorf("get homework statuses: %w", err)
	}

	resp, err := homework.Decode(payload)
	if err != nil {
		return fmt.Errorf("check response: %w", err)
	}
	if len(resp.Homeworks) == 0 {
		logCtx.Debug("No homework status changes")
	}

	for i, item := range resp.Homeworks {
		hw, err := homework.AsHomework(i, item)
		if err != nil {
			return fmt.Errorf("check response: %w", err)
		}
		message, err := homework.ParseStatus(hw)
		if err != nil {
			return fmt.Errorf("parse status: %w", err)
		}
		if !s.rememberSent(message) {
			logCtx.Debug("Status unchanged since last message, skipping")
			continue
		}
		s.notifier.Notify(message)
	}

	s.mu.Lock()
	s.cursor = s.now().Unix()
	s.mu.Unlock()
	return nil
}

// rememberSent records message as the last one sent; false means it equals the previous one.
func (s *PollService) rememberSent(message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if message == s.lastSent {
		return false
	}
	s.lastSent = message
	return true
}

func (s *PollService) finishCycle(err error) {
	s.mu.Lock()
	s.cycles++
	s.lastCycleAt = s.now()
	s.lastErr = err
	if err != nil {
		s.state = StateFaultedRecovering
	} else {
		s.state = StateRunning
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.WithError(err).Error("Polling cycle failed")
		s.notifier.Notify(fmt.Sprintf(failureFormat, err))
		return
	}
	s.logger.Debug("Polling cycle completed")
}

// Snapshot returns the current driver state.
func (s *PollService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		State:       s.state,
		Cursor:      s.cursor,
		LastSent:    s.lastSent,
		LastCycleAt: s.lastCycleAt,
		Cycles:      s.cycles,
	}
	if s.lastErr != nil {
		snap.LastError = s.lastErr.Error()
	}
	return snap
}
