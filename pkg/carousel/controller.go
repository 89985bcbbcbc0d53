package carousel

import "github.com/go-drift/carousel/pkg/gestures"

// State is the externally visible position of a carousel at one instant.
//
// Every event (command, pointer sample, autoplay tick) runs to completion
// synchronously and leaves the controller holding a fully consistent State,
// so hosts can read a snapshot at any time without observing a half-applied
// update.
type State struct {
	// CurrentIndex is the authoritative position, always a valid index
	// into the item collection.
	CurrentIndex int
	// ScrollOffset is the pixel offset the viewport should be scrolled
	// to. While idle it equals CurrentIndex * itemWidth; during a
	// committed drag it is the live value and may sit between slots.
	ScrollOffset float64
	// Dragging reports an in-progress committed drag.
	Dragging bool
	// Repeating reports whether boundary rules wrap instead of clamping.
	Repeating bool
}

// Controller is the navigation engine of a carousel: the single source of
// truth for the current index and the derived scroll offset.
//
// Commands arriving at a hard boundary with looping disabled, and commands
// arriving before the item width has been measured, are defined no-ops.
// The zero Controller is not usable; construct one with NewController.
type Controller struct {
	length      int
	opts        Options
	itemWidth   float64
	state       State
	interacting bool

	listeners      map[int]func()
	nextListenerID int
}

// NewController creates a controller for length items.
//
// The options are validated up front: an itemsPerView below 1 or above the
// item count, or any negative tuning value, is rejected with a config error
// rather than tolerated.
func NewController(length int, opts Options) (*Controller, error) {
	if err := opts.validate(length); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	c := &Controller{
		length:    length,
		opts:      opts,
		listeners: make(map[int]func()),
	}
	c.state.Repeating = opts.InfiniteLoop && length > opts.ItemsPerView
	return c, nil
}

// Length returns the total number of items.
func (c *Controller) Length() int {
	return c.length
}

// Options returns the controller's configuration with defaults applied.
func (c *Controller) Options() Options {
	return c.opts
}

// State returns a snapshot of the current carousel state.
func (c *Controller) State() State {
	return c.state
}

// CurrentIndex returns the authoritative current index.
func (c *Controller) CurrentIndex() int {
	return c.state.CurrentIndex
}

// ScrollOffset returns the pixel offset the viewport should be scrolled to.
func (c *Controller) ScrollOffset() float64 {
	return c.state.ScrollOffset
}

// IsDragging reports an in-progress committed drag.
func (c *Controller) IsDragging() bool {
	return c.state.Dragging
}

// IsInteracting reports an open drag session, committed or not. A press
// that has not yet traveled past the commit threshold still counts:
// autoplay must not advance under a finger that is merely resting.
func (c *Controller) IsInteracting() bool {
	return c.interacting || c.state.Dragging
}

// IsRepeating reports whether boundary rules wrap instead of clamping.
func (c *Controller) IsRepeating() bool {
	return c.state.Repeating
}

// ItemWidth returns the last reported width of one item slot.
func (c *Controller) ItemWidth() float64 {
	return c.itemWidth
}

// SetItemWidth reports the measured pixel width of one item slot. The host
// calls it whenever the viewport size or the items-per-view count changes.
// Widths at or below zero mark the geometry as unmeasured, which turns all
// navigation commands into no-ops.
func (c *Controller) SetItemWidth(px float64) {
	if px < 0 {
		px = 0
	}
	if px == c.itemWidth {
		return
	}
	c.itemWidth = px
	if !c.state.Dragging {
		c.state.ScrollOffset = float64(c.state.CurrentIndex) * c.itemWidth
	}
	c.notifyListeners()
}

// AddListener registers a callback invoked after every state change.
// It returns an unsubscribe function.
func (c *Controller) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = listener
	return func() {
		delete(c.listeners, id)
	}
}

// NextItem advances the current index by one. At the right boundary it
// wraps to 0 when repeating and is a no-op otherwise.
func (c *Controller) NextItem() {
	if c.itemWidth <= 0 {
		return
	}
	if !c.state.Repeating && c.state.CurrentIndex+c.opts.ItemsPerView >= c.length {
		return
	}
	if c.state.CurrentIndex+c.opts.ItemsPerView < c.length {
		c.setIndex(c.state.CurrentIndex + 1)
	} else {
		c.setIndex(0)
	}
}

// PreviousItem retreats the current index by one. At the left boundary it
// wraps to the last index when repeating and is a no-op otherwise.
func (c *Controller) PreviousItem() {
	if c.itemWidth <= 0 {
		return
	}
	if !c.state.Repeating && c.state.CurrentIndex == 0 {
		return
	}
	if c.state.CurrentIndex > 0 {
		c.setIndex(c.state.CurrentIndex - 1)
	} else {
		c.setIndex(c.length - 1)
	}
}

// NextPage advances by a full items-per-view stride, clamped into range.
// When the remainder window no longer permits a stride it wraps to 0 if
// repeating and is a no-op otherwise.
func (c *Controller) NextPage() {
	if c.itemWidth <= 0 {
		return
	}
	if c.state.CurrentIndex+c.length%c.opts.ItemsPerView < c.length {
		c.setIndex(min(c.state.CurrentIndex+c.opts.ItemsPerView, c.length-1))
		return
	}
	if c.state.Repeating {
		c.setIndex(0)
	}
}

// PreviousPage retreats by a full items-per-view stride. When fewer than a
// stride of items remain on the left it wraps to the last index (not the
// last full page) if repeating and is a no-op otherwise.
func (c *Controller) PreviousPage() {
	if c.itemWidth <= 0 {
		return
	}
	if c.state.CurrentIndex >= c.opts.ItemsPerView {
		c.setIndex(c.state.CurrentIndex - c.opts.ItemsPerView)
		return
	}
	if c.state.Repeating {
		c.setIndex(c.length - 1)
	}
}

// SnapToOffset resolves a free-form pixel offset to the nearest item index
// and makes it current. Slots are scanned left to right; within a slot the
// left half resolves to that item and the right half to the next, with the
// exact midpoint counting as the left half. The result is always clamped
// into range, so offsets beyond either end land on the first or last item.
func (c *Controller) SnapToOffset(raw float64) {
	if c.itemWidth <= 0 || c.length == 0 {
		c.endDrag()
		return
	}
	index := c.length - 1
	for i := 0; i < c.length; i++ {
		slotStart := c.itemWidth * float64(i)
		if raw <= slotStart+c.itemWidth/2 {
			index = i
			break
		}
		if raw < slotStart+c.itemWidth {
			index = i + 1
			break
		}
	}
	if index > c.length-1 {
		index = c.length - 1
	}
	changed := c.state.Dragging || c.state.CurrentIndex != index ||
		c.state.ScrollOffset != float64(index)*c.itemWidth
	c.state.Dragging = false
	c.state.CurrentIndex = index
	c.state.ScrollOffset = float64(index) * c.itemWidth
	if changed {
		c.notifyListeners()
	}
}

// SetLiveOffset writes a provisional scroll offset for an in-progress drag.
// The current index is untouched until the session ends with SnapToOffset
// or ReleaseDrag.
func (c *Controller) SetLiveOffset(offset float64) {
	if offset == c.state.ScrollOffset && c.state.Dragging {
		return
	}
	c.state.Dragging = true
	c.state.ScrollOffset = offset
	c.notifyListeners()
}

// ReleaseDrag ends a drag session without snapping, leaving the offset
// where the drag put it. This is the free-scroll release path.
func (c *Controller) ReleaseDrag() {
	c.endDrag()
}

// NewDragTracker returns a gesture tracker wired to this controller
// according to its options: live offsets flow in through SetLiveOffset and
// a committed release snaps (or, under free scroll, merely ends) the drag.
func (c *Controller) NewDragTracker() *gestures.DragTracker {
	tracker := &gestures.DragTracker{
		Sensitivity: c.opts.ScrollSensitivity,
		Slop:        c.opts.MinDragDistance,
		Inverted:    c.opts.Direction == DirectionRTL,
		Baseline:    c.ScrollOffset,
	}
	tracker.OnStart = func() {
		c.interacting = true
	}
	tracker.OnUpdate = func(offset float64) {
		c.SetLiveOffset(offset)
	}
	tracker.OnEnd = func(offset float64, committed bool) {
		c.interacting = false
		if !committed {
			return
		}
		if c.opts.FreeScroll {
			c.ReleaseDrag()
			return
		}
		c.SnapToOffset(offset)
	}
	return tracker
}

func (c *Controller) setIndex(index int) {
	if index < 0 {
		index = 0
	}
	if index > c.length-1 {
		index = c.length - 1
	}
	if index == c.state.CurrentIndex && !c.state.Dragging {
		return
	}
	c.state.CurrentIndex = index
	c.state.ScrollOffset = float64(index) * c.itemWidth
	c.state.Dragging = false
	c.notifyListeners()
}

func (c *Controller) endDrag() {
	if !c.state.Dragging {
		return
	}
	c.state.Dragging = false
	c.notifyListeners()
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}
