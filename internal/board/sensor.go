package board

import "math"

// DefaultActivationDistance is the pointer travel, in pixels, that separates
// a click from a drag.
const DefaultActivationDistance = 8.0

// PointerSensor decides when a pointer gesture on a card becomes a drag.
type PointerSensor struct {
	Distance float64
}

// Activated reports whether a pointer that travelled (dx, dy) since the
// press has moved strictly further than the activation distance.
func (p PointerSensor) Activated(dx, dy float64) bool {
	return math.Hypot(dx, dy) > p.Distance
}
