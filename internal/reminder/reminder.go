// Package reminder delivers the one-shot "how are you feeling" nudge.
package reminder

import (
	"sync"
	"time"

	"github.com/akyairhashvil/talk/internal/config"
	"github.com/akyairhashvil/talk/internal/util"
)

// Fire is sent on the scheduler channel each time the timer elapses.
type Fire struct {
	At time.Time
}

// Scheduler arms at most one pending timer at a time.
type Scheduler struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
	ch    chan Fire
}

func New() *Scheduler {
	return &Scheduler{ch: make(chan Fire, 1)}
}

// C returns the channel fired reminders are delivered on.
func (s *Scheduler) C() <-chan Fire {
	return s.ch
}

// Schedule arms the reminder after delay, replacing any pending one.
// Delays below config.MinReminderDelay are raised to it.
func (s *Scheduler) Schedule(delay time.Duration) {
	s.arm(config.ClampReminderDelay(delay))
}

func (s *Scheduler) arm(delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(delay, func() { s.fire(gen) })
	util.Logger.Debugw("reminder scheduled", "delay", delay)
}

// Pending reports whether a reminder is armed and has not fired yet.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Stop cancels the pending reminder, if any.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

func (s *Scheduler) fire(gen uint64) {
	s.mu.Lock()
	if gen != s.gen {
		// replaced or stopped after the timer already started running
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.mu.Unlock()

	select {
	case s.ch <- Fire{At: time.Now()}:
	default:
		util.Logger.Debugw("reminder dropped, previous one still unread")
	}
}
