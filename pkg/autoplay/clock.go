// Package autoplay provides host-driven periodic advancing for carousels.
//
// The carousel core never starts operating-system timers. Instead the host
// owns a pump (a frame loop, a UI tick, anything periodic) and calls
// [StepTickers] from it. Each active [Ticker] measures elapsed time against
// the package clock and fires its callback once per elapsed interval.
// Stopping a ticker is the cancellation handle.
//
// [Autoplay] binds a ticker to a carousel controller and applies the
// mutual-exclusion rule: a tick that lands during user interaction (an
// active drag, or the pointer hovering the widget) is skipped, not queued.
package autoplay

import "time"

// Clock is the time source tickers measure against. Production code uses
// the wall clock; tests swap in a controllable one with SetClock so tick
// timing is deterministic.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

var clock Clock = wallClock{}

// SetClock installs c as the package clock and returns the clock it
// replaced, so a test can restore it on cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now reads the package clock.
func Now() time.Time { return clock.Now() }
