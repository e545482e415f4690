package clock

import (
	"fmt"
	"time"
)

// Backoff returns the wait before retrying after the given number of
// consecutive failures, starting at 1.
type Backoff interface {
	Delay(failures int) time.Duration
}

// FixedBackoff always waits the same interval.
type FixedBackoff struct {
	Interval time.Duration
}

func (b FixedBackoff) Delay(int) time.Duration {
	return b.Interval
}

// ExponentialBackoff doubles the interval on every consecutive failure up to Max.
type ExponentialBackoff struct {
	Interval time.Duration
	Max      time.Duration
}

func (b ExponentialBackoff) Delay(failures int) time.Duration {
	if failures < 1 {
		failures = 1
	}
	d := b.Interval
	for i := 1; i < failures; i++ {
		if b.Max > 0 && d >= b.Max/2 {
			return b.Max
		}
		d *= 2
	}
	if b.Max > 0 && d > b.Max {
		return b.Max
	}
	return d
}

// NewBackoff builds a Backoff by strategy name: "fixed" or "exponential".
func NewBackoff(strategy string, interval, maxInterval time.Duration) (Backoff, error) {
	switch strategy {
	case "", "fixed":
		return FixedBackoff{Interval: interval}, nil
	case "exponential":
		if maxInterval < interval {
			maxInterval = interval
		}
		return ExponentialBackoff{Interval: interval, Max: maxInterval}, nil
	default:
		return nil, fmt.Errorf("unknown backoff strategy %q", strategy)
	}
}
