package gestures

import "math"

// DefaultSlop is the pointer travel, in logical pixels, required before a
// press commits to a drag.
const DefaultSlop = 2.0

// DragTracker recognizes drag sessions from pointer samples along the
// carousel's scroll axis.
//
// The tracker owns the drag session for its lifetime: it records the press
// origin and the scroll baseline, produces a live offset while dragging, and
// reports the final offset on release. It never resolves the offset to an
// item index itself; the navigation engine does that when the session ends.
//
// Callbacks are optional. OnUpdate fires only after the drag has committed
// (travel beyond Slop); a press that stays within Slop produces no offsets
// and ends with committed == false.
type DragTracker struct {
	// Sensitivity scales pointer travel into scroll distance. Zero is
	// treated as 1.
	Sensitivity float64
	// Slop is the travel needed before a press commits to a drag.
	// Negative values are treated as zero.
	Slop float64
	// Inverted flips the walk sign for right-to-left layouts.
	Inverted bool
	// ContainerOffset is the position of the widget's leading edge on the
	// scroll axis. The host updates it when the widget moves.
	ContainerOffset float64
	// Baseline reports the scroll offset to drag from, sampled at press
	// time. Required for the live offset to be meaningful.
	Baseline func() float64

	// OnStart fires when a press begins a session.
	OnStart func()
	// OnUpdate fires with the live scroll offset while dragging.
	OnUpdate func(offset float64)
	// OnEnd fires when the session ends, with the last live offset and
	// whether the drag ever committed. Cancel ends the session the same
	// way a release does.
	OnEnd func(offset float64, committed bool)

	state    TrackerState
	origin   float64
	baseline float64
	live     float64
}

// State returns the tracker's current state.
func (d *DragTracker) State() TrackerState {
	return d.state
}

// IsActive reports whether a session is open (pressed or dragging).
func (d *DragTracker) IsActive() bool {
	return d.state != StateIdle
}

// IsDragging reports whether the current session has committed to a drag.
// Hosts use this to suppress platform defaults such as text selection or
// native link dragging.
func (d *DragTracker) IsDragging() bool {
	return d.state == StateDragging
}

// HandlePointer dispatches a pointer event to the tracker.
func (d *DragTracker) HandlePointer(event PointerEvent) {
	switch event.Phase {
	case PointerPhaseDown:
		d.PressStart(event.Position)
	case PointerPhaseMove:
		d.Move(event.Position)
	case PointerPhaseUp:
		d.Release()
	case PointerPhaseCancel:
		d.Leave()
	}
}

// PressStart opens a session at the given pointer position.
//
// A press while a session is already open is undefined input (the host
// guarantees a single active pointer); the tracker resolves the open
// session first so no state leaks.
func (d *DragTracker) PressStart(position float64) {
	if d.state != StateIdle {
		d.Release()
	}
	d.origin = position - d.ContainerOffset
	d.baseline = 0
	if d.Baseline != nil {
		d.baseline = d.Baseline()
	}
	d.live = d.baseline
	d.state = StatePressed
	if d.OnStart != nil {
		d.OnStart()
	}
}

// Move feeds a pointer position into the open session. It is a no-op while
// idle. Once the accumulated walk exceeds Slop the session commits, and
// every subsequent move produces a live offset.
func (d *DragTracker) Move(position float64) {
	if d.state == StateIdle {
		return
	}
	walk := (position - d.ContainerOffset - d.origin) * d.sensitivity()
	if d.state == StatePressed {
		if math.Abs(walk) <= d.slop() {
			return
		}
		d.state = StateDragging
	}
	// Positive walk moves content toward the leading edge; RTL flips it.
	if d.Inverted {
		d.live = d.baseline + walk
	} else {
		d.live = d.baseline - walk
	}
	if d.OnUpdate != nil {
		d.OnUpdate(d.live)
	}
}

// Release closes the session and reports the final offset.
func (d *DragTracker) Release() {
	if d.state == StateIdle {
		return
	}
	committed := d.state == StateDragging
	offset := d.live
	d.state = StateIdle
	if d.OnEnd != nil {
		d.OnEnd(offset, committed)
	}
}

// Leave behaves as Release when a session is open: a pointer leaving the
// widget with the button down commits the drag rather than leaking the
// session.
func (d *DragTracker) Leave() {
	if d.state == StateIdle {
		return
	}
	d.Release()
}

func (d *DragTracker) sensitivity() float64 {
	if d.Sensitivity == 0 {
		return 1
	}
	return d.Sensitivity
}

func (d *DragTracker) slop() float64 {
	if d.Slop < 0 {
		return 0
	}
	return d.Slop
}
