package reminder

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const DefaultTime = "22:00"

var ErrInvalidTime = errors.New("invalid reminder time")

// Reminder is the message delivered when the daily trigger fires.
type Reminder struct {
	Title string
	Body  string
	At    time.Time
}

// Notifier delivers a fired reminder. It must not block for long; the cron
// goroutine calls it directly.
type Notifier func(Reminder)

// ParseTime turns an HH:MM wall-clock time into a daily cron spec.
func ParseTime(hhmm string) (string, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(hhmm))
	if err != nil {
		return "", fmt.Errorf("%w: %q (want HH:MM)", ErrInvalidTime, hhmm)
	}
	return fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour()), nil
}

// Scheduler owns the single daily reminder entry.
type Scheduler struct {
	mu     sync.Mutex
	cron   *cron.Cron
	entry  cron.EntryID
	spec   string
	active bool
	notify Notifier
	logger *zap.Logger
	now    func() time.Time
}

func NewScheduler(notify Notifier, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notify == nil {
		notify = func(Reminder) {}
	}
	return &Scheduler{
		cron:   cron.New(),
		notify: notify,
		logger: logger,
		now:    time.Now,
	}
}

// Reschedule replaces the current entry with one firing daily at hhmm.
func (s *Scheduler) Reschedule(hhmm string) error {
	spec, err := ParseTime(hhmm)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked()
	id, err := s.cron.AddFunc(spec, s.fire)
	if err != nil {
		return fmt.Errorf("schedule reminder: %w", err)
	}
	s.entry = id
	s.spec = spec
	s.active = true
	s.logger.Info("reminder scheduled", zap.String("time", hhmm), zap.String("spec", spec))
	return nil
}

// Disable removes the entry. The cron loop keeps running idle.
func (s *Scheduler) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		s.logger.Info("reminder disabled")
	}
	s.removeLocked()
}

// Configure applies the stored settings in one call.
func (s *Scheduler) Configure(enabled bool, hhmm string) error {
	if !enabled {
		s.Disable()
		return nil
	}
	return s.Reschedule(hhmm)
}

func (s *Scheduler) removeLocked() {
	if s.active {
		s.cron.Remove(s.entry)
	}
	s.entry = 0
	s.spec = ""
	s.active = false
}

// Spec is the active cron spec, empty when disabled.
func (s *Scheduler) Spec() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spec
}

func (s *Scheduler) Start() {
	s.logger.Info("starting reminder scheduler")
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.logger.Info("stopping reminder scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) fire() {
	r := Reminder{
		Title: "Time to close the day!",
		Body:  "Don't forget to add today's records to Tagzi.",
		At:    s.now(),
	}
	s.logger.Info("reminder fired", zap.Time("at", r.At))
	s.notify(r)
}
