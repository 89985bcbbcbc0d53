// Package indicator derives per-dot classifications for a carousel's
// position indicator strip.
//
// Everything here is a pure function of the current index: the package
// holds no state and performs no rendering. Hosts call [Classify] for each
// dot to pick a visual treatment and [StripOffset] to keep the active dot
// centered in a horizontally scrollable strip.
package indicator

// Proximity classifies one indicator dot relative to the current index.
type Proximity int

const (
	// Active marks the dot for the current index.
	Active Proximity = iota
	// Close marks a dot adjacent to the current index. At the first and
	// last index the close band widens to two neighbors.
	Close
	// Far marks every other dot.
	Far
)

func (p Proximity) String() string {
	switch p {
	case Active:
		return "active"
	case Close:
		return "close"
	default:
		return "far"
	}
}

// visibleDotSlots is the assumed number of dots visible in the strip,
// used by the StripOffset centering heuristic.
const visibleDotSlots = 5

// Count returns the number of indicator dots for a carousel: one per
// distinct window the view can occupy (length + 1 - itemsPerView).
// Configurations that admit no window report zero.
func Count(length, itemsPerView int) int {
	if itemsPerView < 1 || length < itemsPerView {
		return 0
	}
	return length + 1 - itemsPerView
}

// Classify returns the proximity of the dot at index relative to the
// current index.
//
// The interior rule is a one-dot band on each side. At the two boundary
// indices the band widens asymmetrically: anchored at the first index every
// dot up to 2 is close, and anchored at the last index any dot within two
// steps is close.
func Classify(index, current, length int) Proximity {
	if index == current {
		return Active
	}
	switch current {
	case 0:
		if index <= 2 {
			return Close
		}
	case length - 1:
		if abs(current-index) <= 2 {
			return Close
		}
	default:
		if abs(current-index) == 1 {
			return Close
		}
	}
	return Far
}

// StripOffset returns the scroll offset that keeps the active dot visible
// in a strip showing five dot slots, given the width of one slot.
func StripOffset(active int, unitWidth float64) float64 {
	return float64(active-2) / visibleDotSlots * unitWidth
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
