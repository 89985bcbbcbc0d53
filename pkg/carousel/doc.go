// Package carousel implements the navigation engine of a headless carousel
// widget.
//
// The engine owns a single authoritative current index over an ordered
// collection of items and derives the scroll offset the viewport should sit
// at. Everything visual (markup, styling, arrow buttons, the indicator
// strip) lives in the hosting layer, which reads state from a [Controller]
// and invokes its commands.
//
// # Architecture
//
// The carousel is split across collaborating packages:
//
//   - carousel (this package): [Controller], [Options], [State]; index
//     arithmetic, boundary and looping rules, snap resolution.
//   - gestures: the drag state machine that turns pointer samples into a
//     live scroll offset and hands the final offset back for snapping.
//   - indicator: pure classification of dots relative to the current index.
//   - autoplay: clock-injectable periodic ticks that advance the carousel
//     while the user is idle.
//
// # Geometry
//
// The engine never measures layout. The host reports the width of one item
// slot via [Controller.SetItemWidth] whenever the viewport or the
// items-per-view count changes. While the width is unmeasured (zero), every
// navigation command is a defined no-op rather than a division by zero.
//
// # Basic Usage
//
//	ctrl, err := carousel.NewController(10, carousel.Options{
//	    ItemsPerView: 4,
//	    InfiniteLoop: true,
//	})
//	if err != nil {
//	    return err
//	}
//	ctrl.SetItemWidth(120)
//	ctrl.AddListener(func() {
//	    render(ctrl.State())
//	})
//	ctrl.NextItem()
package carousel
