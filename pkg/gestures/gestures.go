// Package gestures converts streams of pointer samples into carousel drag
// sessions.
//
// The package models a single pointer moving along the carousel's scroll
// axis. Positions are scalar coordinates on that axis; the hosting layer is
// responsible for projecting its native two-dimensional pointer events onto
// the axis before forwarding them.
//
// The central type is [DragTracker], a small state machine:
//
//	Idle ──press──► Pressed ──|walk| > Slop──► Dragging ──release──► Idle
//
// A press that never travels past Slop resolves as a tap, not a drag, so
// hosts can distinguish clicks on carousel content from swipes.
package gestures

import "fmt"

// PointerPhase identifies the lifecycle stage of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown is emitted when the pointer makes contact.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is emitted while the pointer travels.
	PointerPhaseMove
	// PointerPhaseUp is emitted when the pointer is released.
	PointerPhaseUp
	// PointerPhaseCancel is emitted when the platform aborts the gesture
	// (touch-cancel, or the pointer leaving the widget mid-press).
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is one pointer sample along the scroll axis.
type PointerEvent struct {
	// Position is the pointer coordinate on the scroll axis, in logical
	// pixels, relative to the host surface.
	Position float64
	// Phase is the lifecycle stage of this sample.
	Phase PointerPhase
}

// TrackerState is the current state of a DragTracker.
type TrackerState int

const (
	// StateIdle means no pointer is in contact.
	StateIdle TrackerState = iota
	// StatePressed means the pointer is down but has not traveled far
	// enough to commit to a drag.
	StatePressed
	// StateDragging means the drag is committed and a live offset is
	// being produced.
	StateDragging
)

func (s TrackerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePressed:
		return "pressed"
	case StateDragging:
		return "dragging"
	default:
		return fmt.Sprintf("TrackerState(%d)", int(s))
	}
}
