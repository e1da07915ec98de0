package solids

import "github.com/chazu/scabbard/pkg/kernel"

// CylSpec parameterizes an augmented cylinder. The base solid is a frustum
// of height H with its bottom face on z=0, axis +Z. End 1 is the bottom,
// end 2 the top.
//
// Size may be given as per-end diameters, per-end radii, a single diameter
// or a single radius; the first of those that is set wins, per end. Any
// unset chamfer or overhang resolves to 0 and is a no-op. Overhang and
// chamfer on the same end compose: the shoulder is added first and the
// chamfer then cuts into the result.
type CylSpec struct {
	H float64

	D1, D2 Opt // per-end diameters (frustum)
	R1, R2 Opt // per-end radii
	D      Opt // single diameter, both ends
	R      Opt // single radius, both ends

	C1, C2 Opt // per-end chamfer size
	C      Opt // chamfer, both ends

	O1, O2 Opt // per-end overhang depth
	O      Opt // overhang, both ends
}

// diameters resolves the effective bottom and top diameters.
func (s CylSpec) diameters() (d1, d2 float64) {
	d1 = Resolve(s.D1, s.R1.times(2), s.D, s.R.times(2))
	d2 = Resolve(s.D2, s.R2.times(2), s.D, s.R.times(2))
	return d1, d2
}

// Cylinder builds an augmented cylinder: the base frustum, unioned with an
// overhang stump at each end that requests one, then beveled by an
// anticone cutter at each end that requests a chamfer.
func Cylinder(k kernel.Kernel, spec CylSpec) kernel.Solid {
	d1, d2 := spec.diameters()
	o1 := Resolve(spec.O1, spec.O)
	o2 := Resolve(spec.O2, spec.O)
	c1 := Resolve(spec.C1, spec.C)
	c2 := Resolve(spec.C2, spec.C)

	s := k.Translate(k.Cone(spec.H, d1/2, d2/2), 0, 0, spec.H/2)

	if o1 > 0 {
		s = k.Union(s, coneStump(k, d1, o1))
	}
	if o2 > 0 {
		s = k.Union(s, flipZ(k, coneStump(k, d2, o2), spec.H))
	}
	if c1 > 0 {
		s = k.Difference(s, antiCone(k, d1, c1))
	}
	if c2 > 0 {
		s = k.Difference(s, flipZ(k, antiCone(k, d2, c2), spec.H))
	}
	return s
}
