package sync

import "time"

// Clock abstracts time so backoff waits are testable without real timers
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// realClock делегирует пакету time
type realClock struct{}

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// RealClock returns the wall clock
func RealClock() Clock {
	return realClock{}
}
