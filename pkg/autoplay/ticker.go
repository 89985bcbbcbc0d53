package autoplay

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker fires a callback once per interval of elapsed clock time.
//
// Tickers are driven by the host through [StepTickers]; they own no
// goroutines and no timers. A tick that arrives late fires once per full
// interval that elapsed, so a stalled host catches up instead of drifting.
type Ticker struct {
	interval time.Duration
	callback func()
	isActive bool
	last     time.Time
}

// NewTicker creates a ticker with the given interval and callback.
func NewTicker(interval time.Duration, callback func()) *Ticker {
	return &Ticker{
		interval: interval,
		callback: callback,
	}
}

// Start activates the ticker. The first fire happens one interval from now.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.last = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker. This is the cancellation handle: a stopped
// ticker never fires again until restarted.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Interval returns the ticker's firing interval.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// step fires the callback once per interval elapsed since the last fire.
func (t *Ticker) step(now time.Time) {
	if !t.isActive || t.callback == nil || t.interval <= 0 {
		return
	}
	for now.Sub(t.last) >= t.interval {
		t.last = t.last.Add(t.interval)
		t.callback()
		if !t.isActive {
			return
		}
	}
}

// StepTickers advances all active tickers against the package clock.
// The host calls this once per pump iteration.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Make a copy to avoid holding the lock during callbacks
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		ticker.step(now)
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
