// Package profiles assembles augmented primitives into the two compound
// shapes shared by the part assemblers: the rounded bar cross-section and
// the locking slot.
package profiles

import (
	"github.com/chazu/scabbard/pkg/kernel"
	"github.com/chazu/scabbard/pkg/solids"
	"gonum.org/v1/gonum/spatial/r3"
)

// BarSpec parameterizes a rounded bar: a rectangular section of the given
// width (X), thickness (Y) and length (Z) whose two width-side faces are
// rounded to half-cylinders of diameter = thickness. The bar occupies
// [0,W] x [0,T] x [0,L].
type BarSpec struct {
	Width, Thickness, Length float64

	C1, C2 solids.Opt // end chamfer at z=0 / z=Length
	O1, O2 solids.Opt // end overhang at z=0 / z=Length
}

// Bar builds the rounded bar: two augmented cylinders at the width
// extremes joined by an augmented cube. The cube carries the end treatment
// only on its width-running end edges and its end faces; the edges where
// cube and cylinders meet are never chamfered — the cylinders already
// round that transition.
func Bar(k kernel.Kernel, spec BarSpec) kernel.Solid {
	w, t, l := spec.Width, spec.Thickness, spec.Length

	// X-axis edges 1/2 sit at z=0, 3/4 at z=Length (cross axes y,z).
	cube := solids.Cube(k, r3.Vec{X: w - t, Y: t, Z: l}, solids.CubeOpts{
		EX: [4]solids.Opt{spec.C1, spec.C1, spec.C2, spec.C2},
		O1: spec.O1,
		O2: spec.O2,
	})
	cube = k.Translate(cube, t/2, 0, 0)

	round := solids.CylSpec{
		H: l, D: solids.Some(t),
		C1: spec.C1, C2: spec.C2,
		O1: spec.O1, O2: spec.O2,
	}
	left := k.Translate(solids.Cylinder(k, round), t/2, t/2, 0)
	right := k.Translate(solids.Cylinder(k, round), w-t/2, t/2, 0)

	return k.Union(cube, k.Union(left, right))
}
