package autoplay

import (
	"github.com/go-drift/carousel/pkg/carousel"
)

// Autoplay periodically advances a carousel controller while the user is
// idle.
//
// Each tick invokes the controller's next-page command (next-item when a
// single item is in view) unless interaction is in progress: an active drag
// session, or the pointer hovering the widget as reported by the Hovering
// callback. The check happens at tick time; a blocked tick is dropped, not
// deferred.
type Autoplay struct {
	// Hovering reports whether the pointer is currently inside the
	// widget. Optional; when nil only the drag state gates ticks.
	Hovering func() bool

	controller *carousel.Controller
	ticker     *Ticker
}

// New binds an autoplay driver to a controller, using the interval from the
// controller's options. The driver is created stopped; the host calls Start
// once the carousel is mounted (typically only when Options.Autoplay is
// set).
func New(controller *carousel.Controller) *Autoplay {
	a := &Autoplay{controller: controller}
	a.ticker = NewTicker(controller.Options().AutoplayInterval, a.advance)
	return a
}

// Start begins ticking. The first advance lands one interval from now.
func (a *Autoplay) Start() {
	a.ticker.Start()
}

// Stop cancels ticking. Safe to call at any time, including twice.
func (a *Autoplay) Stop() {
	a.ticker.Stop()
}

// IsRunning reports whether the driver is ticking.
func (a *Autoplay) IsRunning() bool {
	return a.ticker.IsActive()
}

// advance performs one tick: checked mutual exclusion, then a command.
func (a *Autoplay) advance() {
	if a.controller.IsInteracting() {
		return
	}
	if a.Hovering != nil && a.Hovering() {
		return
	}
	if a.controller.Options().ItemsPerView == 1 {
		a.controller.NextItem()
		return
	}
	a.controller.NextPage()
}
