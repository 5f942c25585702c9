package game

import "time"

// Timer is a cancellable token for a callback registered on a Scheduler.
type Timer struct {
	sched     *Scheduler
	at        time.Duration
	period    time.Duration // zero for one-shot timers
	seq       uint64        // registration order, breaks deadline ties
	fn        func()
	cancelled bool
}

// Cancel prevents any future firing. Safe to call more than once and on
// timers whose scheduler has been stopped.
func (t *Timer) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Active reports whether the timer may still fire.
func (t *Timer) Active() bool {
	return t != nil && !t.cancelled && !t.sched.stopped
}

// Scheduler runs deferred and periodic callbacks against a simulated
// clock. Callbacks fire synchronously inside Advance on the caller's
// goroutine, so they share the game loop's single thread of control.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	timers  []*Timer
	stopped bool
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the simulated time elapsed since creation.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	return s.add(d, 0, fn)
}

// Every schedules fn to run every period, first firing one period from now.
func (s *Scheduler) Every(period time.Duration, fn func()) *Timer {
	if period <= 0 {
		panic("game: scheduler period must be positive")
	}
	return s.add(period, period, fn)
}

func (s *Scheduler) add(d, period time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{sched: s, at: s.now + d, period: period, seq: s.seq, fn: fn}
	if s.stopped {
		t.cancelled = true
		return t
	}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by dt, firing due callbacks in deadline
// order. A callback may schedule or cancel timers, including itself.
func (s *Scheduler) Advance(dt time.Duration) {
	target := s.now + dt
	for !s.stopped {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.at
		if next.period > 0 {
			next.at += next.period
		} else {
			next.cancelled = true
		}
		next.fn()
		s.prune()
	}
	if target > s.now {
		s.now = target
	}
}

// Stop cancels every timer. Later registrations are returned already
// cancelled, so a torn down session can never run stale callbacks.
func (s *Scheduler) Stop() {
	s.stopped = true
	for _, t := range s.timers {
		t.cancelled = true
	}
	s.timers = nil
}

// Pending returns the number of timers that may still fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

func (s *Scheduler) nextDue(target time.Duration) *Timer {
	var best *Timer
	for _, t := range s.timers {
		if t.cancelled || t.at > target {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) prune() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}
