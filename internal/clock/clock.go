// Package clock schedules one-shot callbacks. The toast manager depends on the
// Clock interface only, so tests can drive timers with Fake instead of waiting
// on wall-clock delays.
package clock

import "time"

// Timer is a pending callback. Stop cancels it and reports whether it was
// still pending; a callback that already fired or was stopped returns false.
type Timer interface {
	Stop() bool
}

type Clock interface {
	Now() time.Time
	// AfterFunc runs fn once on its own goroutine after d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer
}

type realClock struct{}

// New returns the wall clock backed by time.AfterFunc.
func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
