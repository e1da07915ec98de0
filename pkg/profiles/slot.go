package profiles

import (
	"math"

	"github.com/chazu/scabbard/pkg/kernel"
)

// NotchThreshold is the right-factor above which the L-shaped lock grows
// its backwards notch segment. The value is a fixed design constant; below
// it the perpendicular segment alone is considered lock enough.
const NotchThreshold = 1.2

// SlotSpec parameterizes a locking slot: a straight channel with rounded
// ends plus a lock extension at the channel origin. The slot lies in the
// XY plane with its material thickness along Z in [0, Thickness]; the
// channel runs from (0,0) to (0, Length). The extension reaches RightFactor
// slot-widths towards +X and BackFactor slot-widths towards -Y.
type SlotSpec struct {
	Width, Thickness, Length float64

	Diagonal    bool // diagonal extension instead of L-shaped
	RightFactor float64
	BackFactor  float64
}

// DeflectionAngle returns the diagonal extension's deflection from the +X
// axis in radians, satisfying tan(angle) = backFactor/rightFactor.
func DeflectionAngle(rightFactor, backFactor float64) float64 {
	return math.Atan2(backFactor, rightFactor)
}

// Slot builds the slot solid. Policy selection:
//
//   - Diagonal: one rounded segment of length Width*sqrt(right^2+back^2)
//     at the deflection angle.
//   - L-shaped: a perpendicular segment of length Width*right, then a
//     notch segment of length Width*back only when right > NotchThreshold.
func Slot(k kernel.Kernel, spec SlotSpec) kernel.Solid {
	w, t := spec.Width, spec.Thickness
	s := segment(k, 0, 0, 0, spec.Length, w, t)

	rx := w * spec.RightFactor
	by := w * spec.BackFactor

	if spec.Diagonal {
		return k.Union(s, segment(k, 0, 0, rx, -by, w, t))
	}

	s = k.Union(s, segment(k, 0, 0, rx, 0, w, t))
	if spec.RightFactor > NotchThreshold {
		s = k.Union(s, segment(k, rx, 0, rx, -by, w, t))
	}
	return s
}

// segment builds a rounded-end channel segment (a stadium prism) of width
// w and height t from (x0,y0) to (x1,y1), z in [0, t].
func segment(k kernel.Kernel, x0, y0, x1, y1, w, t float64) kernel.Solid {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	angle := math.Atan2(dy, dx) * 180 / math.Pi

	body := k.Translate(k.Box(length, w, t), 0, -w/2, 0)
	body = k.Rotate(body, 0, 0, angle)

	capA := k.Translate(k.Cylinder(t, w/2), 0, 0, t/2)
	capB := k.Translate(k.Cylinder(t, w/2), dx, dy, t/2)

	s := k.Union(body, k.Union(capA, capB))
	return k.Translate(s, x0, y0, 0)
}
