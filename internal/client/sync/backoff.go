package sync

import "time"

// BackoffPolicy controls retry pacing for failed replays.
// Delay is a pure function of the attempt number so the policy is
// testable without real timers.
type BackoffPolicy struct {
	// Base задержка перед первым повтором
	Base time.Duration
	// Max потолок задержки
	Max time.Duration
	// MaxRetries граница повторов: дальше действие остается pending,
	// но автоматически не replay-ится
	MaxRetries int
}

// DefaultBackoffPolicy returns the production retry policy
func DefaultBackoffPolicy() BackoffPolicy {
	return BackoffPolicy{
		Base:       time.Second,
		Max:        5 * time.Minute,
		MaxRetries: 8,
	}
}

// Delay returns the wait before retry attempt n (n >= 1).
// Capped exponential: Base * 2^(n-1), не выше Max.
func (p BackoffPolicy) Delay(n int) time.Duration {
	if n < 1 {
		n = 1
	}

	d := p.Base
	for i := 1; i < n; i++ {
		d *= 2
		if d >= p.Max {
			return p.Max
		}
	}
	if d > p.Max {
		return p.Max
	}
	return d
}

// Exhausted reports whether the retry bound is reached
func (p BackoffPolicy) Exhausted(retryCount int) bool {
	return p.MaxRetries > 0 && retryCount >= p.MaxRetries
}
