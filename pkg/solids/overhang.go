package solids

import (
	"math"

	"github.com/chazu/scabbard/pkg/kernel"
)

// sweepOvercut extends boolean cutters past the surfaces they cross so
// coincident faces do not leave slivers.
const sweepOvercut = 1.0

// coneStump builds the 45-degree overhang shoulder for a circular face of
// diameter d: the intersection of a cone tapering from the extended
// diameter X = d+2*o down to a point, and a cylinder of diameter X
// extending inward by (X-d)/2. The result flares to radius d/2+o at z=0
// and meets the base solid at radius d/2 exactly o above the face, so the
// slope is 45 degrees throughout and the stump never exceeds the overhang
// depth.
func coneStump(k kernel.Kernel, d, o float64) kernel.Solid {
	x := d + 2*o
	cone := k.Translate(k.Cone(x/2, x/2, 0), 0, 0, x/4)
	bound := k.Translate(k.Cylinder((x-d)/2, x/2), 0, 0, (x-d)/4)
	return k.Intersection(cone, bound)
}

// pyramidStump builds the 45-degree overhang shoulder for a rectangular
// face of size u by v: a truncated pyramid flaring to (u+2*o) by (v+2*o)
// at z=0 and tapering at 45 degrees to u by v at z=o, centered on the Z
// axis. It is the intersection of two extruded trapezoids, one per cross
// axis.
func pyramidStump(k kernel.Kernel, u, v, o float64) kernel.Solid {
	across := func(w, depth float64) kernel.Solid {
		profile := [][2]float64{
			{-w/2 - o, 0},
			{w/2 + o, 0},
			{w / 2, o},
			{-w / 2, o},
		}
		return k.Extrude(profile, depth+2*o+sweepOvercut)
	}

	// Trapezoid profile in XZ swept along Y.
	uSweep := k.Rotate(across(u, v), 90, 0, 0)
	// Trapezoid profile in YZ swept along X.
	vSweep := k.Rotate(k.Rotate(across(v, u), 90, 0, 0), 0, 0, 90)

	return k.Intersection(uSweep, vSweep)
}

// antiCone builds the chamfer cutter for a circular end of diameter d:
// a cylinder of diameter d+2*c with a 45-degree frustum removed, occupying
// z in [0, c]. Subtracting it bevels the end from radius d/2-c at the face
// to d/2 at height c. A chamfer larger than the radius clamps the inner
// frustum to a point rather than failing; the resulting solid is simply
// wrong, per the no-validation contract.
func antiCone(k kernel.Kernel, d, c float64) kernel.Solid {
	outer := k.Translate(k.Cylinder(c, d/2+c), 0, 0, c/2)
	keep := k.Translate(k.Cone(c, math.Max(d/2-c, 0), d/2), 0, 0, c/2)
	return k.Difference(outer, keep)
}

// flipZ mirrors a bottom-face feature onto the top face at height h.
// Features built by coneStump/antiCone are rotationally symmetric about Z,
// so the 180-degree rotation is a pure Z mirror for them.
func flipZ(k kernel.Kernel, s kernel.Solid, h float64) kernel.Solid {
	return k.Translate(k.Rotate(s, 180, 0, 0), 0, 0, h)
}
