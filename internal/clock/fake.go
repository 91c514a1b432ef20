package clock

import (
	"sync"
	"time"
)

// Fake is a manually advanced clock. Callbacks run synchronously inside
// Advance, in due-time order, with timers due at the same instant firing in the
// order they were scheduled.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*fakeTimer
}

type fakeTimer struct {
	clock *Fake
	due   time.Time
	seq   uint64
	fn    func()
}

func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	t := &fakeTimer{clock: f, due: f.now.Add(d), seq: f.seq, fn: fn}
	f.timers = append(f.timers, t)
	return t
}

// Advance moves the clock forward by d and fires every timer that comes due,
// including timers scheduled by callbacks fired along the way.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	for {
		f.mu.Lock()
		next := f.popDueLocked(target)
		if next == nil {
			f.now = target
			f.mu.Unlock()
			return
		}
		if next.due.After(f.now) {
			f.now = next.due
		}
		f.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of scheduled timers that have neither fired nor
// been stopped.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}

func (f *Fake) popDueLocked(target time.Time) *fakeTimer {
	idx := -1
	for i, t := range f.timers {
		if t.due.After(target) {
			continue
		}
		if idx == -1 || t.due.Before(f.timers[idx].due) ||
			(t.due.Equal(f.timers[idx].due) && t.seq < f.timers[idx].seq) {
			idx = i
		}
	}
	if idx == -1 {
		return nil
	}
	t := f.timers[idx]
	f.timers = append(f.timers[:idx], f.timers[idx+1:]...)
	return t
}

func (t *fakeTimer) Stop() bool {
	f := t.clock
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, pending := range f.timers {
		if pending == t {
			f.timers = append(f.timers[:i], f.timers[i+1:]...)
			return true
		}
	}
	return false
}
