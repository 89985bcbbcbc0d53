package carousel

import (
	"time"

	"github.com/go-drift/carousel/pkg/errors"
)

// Direction is the reading direction of the carousel. It affects the sign
// convention of pointer math: in a right-to-left carousel a rightward drag
// advances the content.
type Direction int

const (
	// DirectionLTR lays items out left to right.
	DirectionLTR Direction = iota
	// DirectionRTL lays items out right to left.
	DirectionRTL
)

func (d Direction) String() string {
	if d == DirectionRTL {
		return "rtl"
	}
	return "ltr"
}

// Defaults applied by NewController for zero-valued optional fields.
const (
	// DefaultScrollSensitivity is the pointer-travel multiplier.
	DefaultScrollSensitivity = 1.0
	// DefaultMinDragDistance is the travel, in logical pixels, before a
	// press commits to a drag.
	DefaultMinDragDistance = 2.0
	// DefaultAutoplayInterval is the pause between autoplay advances.
	DefaultAutoplayInterval = 3 * time.Second
)

// Options configures a carousel controller.
//
// ItemsPerView is required; the remaining fields have defaults that
// NewController fills in for zero values. Negative values are rejected at
// construction, never silently patched.
type Options struct {
	// ItemsPerView is the number of items visible simultaneously.
	// Required, at least 1 and at most the item count.
	ItemsPerView int
	// InfiniteLoop enables wrap-around navigation. Looping only takes
	// effect when there are more items than fit in one view.
	InfiniteLoop bool
	// FreeScroll leaves the offset where a drag released it instead of
	// snapping to the nearest item.
	FreeScroll bool
	// ScrollSensitivity scales pointer travel into scroll distance.
	// Zero selects DefaultScrollSensitivity; must not be negative.
	ScrollSensitivity float64
	// MinDragDistance is the travel before a press commits to a drag.
	// Zero selects DefaultMinDragDistance; must not be negative.
	MinDragDistance float64
	// Autoplay enables periodic advancing while the user is idle.
	Autoplay bool
	// AutoplayInterval is the pause between autoplay advances.
	// Zero selects DefaultAutoplayInterval; must not be negative.
	AutoplayInterval time.Duration
	// Direction is the reading direction. Defaults to DirectionLTR.
	Direction Direction
}

// withDefaults returns a copy with zero-valued optional fields filled in.
func (o Options) withDefaults() Options {
	if o.ScrollSensitivity == 0 {
		o.ScrollSensitivity = DefaultScrollSensitivity
	}
	if o.MinDragDistance == 0 {
		o.MinDragDistance = DefaultMinDragDistance
	}
	if o.AutoplayInterval == 0 {
		o.AutoplayInterval = DefaultAutoplayInterval
	}
	return o
}

// validate rejects configurations that make boundary computations
// ill-defined. It runs on the raw options, before defaults are applied.
func (o Options) validate(length int) error {
	const op = "carousel.NewController"
	if length < 0 {
		return errors.Config(op, "item count must not be negative, got %d", length)
	}
	if o.ItemsPerView < 1 {
		return errors.Config(op, "itemsPerView must be at least 1, got %d", o.ItemsPerView)
	}
	if o.ItemsPerView > length {
		return errors.Config(op, "itemsPerView (%d) must not exceed the item count (%d)", o.ItemsPerView, length)
	}
	if o.ScrollSensitivity < 0 {
		return errors.Config(op, "scrollSensitivity must be positive, got %v", o.ScrollSensitivity)
	}
	if o.MinDragDistance < 0 {
		return errors.Config(op, "minDragDistance must not be negative, got %v", o.MinDragDistance)
	}
	if o.AutoplayInterval < 0 {
		return errors.Config(op, "autoplayInterval must be positive, got %v", o.AutoplayInterval)
	}
	if o.Direction != DirectionLTR && o.Direction != DirectionRTL {
		return errors.Config(op, "direction must be ltr or rtl, got %d", int(o.Direction))
	}
	return nil
}
