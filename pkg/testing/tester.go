// Package testing provides a headless harness for exercising carousels.
//
// # Quick Start
//
// Create a tester, drive gestures and time, and assert on controller state:
//
//	func TestSwipe(t *testing.T) {
//	    tester := carouseltest.NewCarouselTesterWithT(t, 10, carousel.Options{
//	        ItemsPerView: 4,
//	    })
//	    tester.SetItemWidth(100)
//
//	    tester.DragBy(500, -70)
//
//	    if got := tester.Controller.CurrentIndex(); got != 1 {
//	        t.Errorf("index = %d, want 1", got)
//	    }
//	}
//
// # Autoplay Testing
//
// The tester installs a [FakeClock] as the autoplay clock for its lifetime.
// Pump advances fake time and steps active tickers:
//
//	tester.Pump(3 * time.Second)
package testing

import (
	"testing"
	"time"

	"github.com/go-drift/carousel/pkg/autoplay"
	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/gestures"
)

// CarouselTester drives a controller, its drag tracker, and autoplay time
// without any rendering surface.
type CarouselTester struct {
	// Controller is the navigation engine under test.
	Controller *carousel.Controller
	// Tracker is a drag tracker wired to Controller per its options.
	Tracker *gestures.DragTracker

	clock     *FakeClock
	prevClock autoplay.Clock
}

// NewCarouselTester creates a tester for a carousel of length items.
// Call Cleanup when done, or use NewCarouselTesterWithT instead.
func NewCarouselTester(length int, opts carousel.Options) (*CarouselTester, error) {
	ctrl, err := carousel.NewController(length, opts)
	if err != nil {
		return nil, err
	}
	clk := NewFakeClock()
	return &CarouselTester{
		Controller: ctrl,
		Tracker:    ctrl.NewDragTracker(),
		clock:      clk,
		prevClock:  autoplay.SetClock(clk),
	}, nil
}

// NewCarouselTesterWithT creates a tester that fails the test on invalid
// options and auto-cleans up via t.Cleanup. This is the recommended
// constructor for tests.
func NewCarouselTesterWithT(t *testing.T, length int, opts carousel.Options) *CarouselTester {
	t.Helper()
	tester, err := NewCarouselTester(length, opts)
	if err != nil {
		t.Fatalf("NewCarouselTester: %v", err)
	}
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the autoplay clock. Must be called if not using
// NewCarouselTesterWithT.
func (c *CarouselTester) Cleanup() {
	autoplay.SetClock(c.prevClock)
}

// Clock returns the fake clock for advancing time directly.
func (c *CarouselTester) Clock() *FakeClock {
	return c.clock
}

// SetItemWidth reports slot geometry to the controller.
func (c *CarouselTester) SetItemWidth(px float64) {
	c.Controller.SetItemWidth(px)
}

// Pump advances fake time by d and steps all active autoplay tickers.
func (c *CarouselTester) Pump(d time.Duration) {
	c.clock.Advance(d)
	autoplay.StepTickers()
}

// Press sends a pointer-down at pos on the scroll axis.
func (c *CarouselTester) Press(pos float64) {
	c.Tracker.HandlePointer(gestures.PointerEvent{Position: pos, Phase: gestures.PointerPhaseDown})
}

// MoveTo sends a pointer-move to pos.
func (c *CarouselTester) MoveTo(pos float64) {
	c.Tracker.HandlePointer(gestures.PointerEvent{Position: pos, Phase: gestures.PointerPhaseMove})
}

// Release sends a pointer-up, ending the session.
func (c *CarouselTester) Release() {
	c.Tracker.HandlePointer(gestures.PointerEvent{Phase: gestures.PointerPhaseUp})
}

// Cancel sends a pointer-cancel, which resolves the session like a release.
func (c *CarouselTester) Cancel() {
	c.Tracker.HandlePointer(gestures.PointerEvent{Phase: gestures.PointerPhaseCancel})
}

// DragBy simulates a full press-move-release drag starting at from and
// traveling by delta along the scroll axis. Intermediate moves are emitted
// so the commit threshold engages the way a real pointer stream would.
func (c *CarouselTester) DragBy(from, delta float64) {
	c.Press(from)
	steps := 4
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		c.MoveTo(from + delta*frac)
	}
	c.Release()
}
