package parts

import (
	"math"

	"github.com/chazu/scabbard/pkg/kernel"
	"github.com/chazu/scabbard/pkg/params"
	"github.com/chazu/scabbard/pkg/solids"
)

// Serration pin diameter and pairing pin dimensions for the knob styles.
const (
	serrationDiameter = 2.0
	pairPinDiameter   = 3.0
	pairPinLength     = 3.0
)

// Bolts builds the retention bolt parts for the configured style.
// All bolt solids stand knob-down with the knob base on z=0, centered on
// the Z axis.
func Bolts(ps *params.Set, k kernel.Kernel) []Part {
	full := ps.Float("bolt_length")
	half := ps.Float("half_bolt_length")
	clr := ps.Float("clearance")
	bd := ps.Float("bolt_diameter")

	switch ps.Enum("bolt_style") {
	case params.BoltKnob:
		return []Part{{Name: "knob", Solid: knob(ps, k)}}

	case params.BoltTwoPiece:
		bolt := withShaft(ps, k, knob(ps, k), bd, full)
		nut := k.Difference(knob(ps, k), boreDown(k, bd/2+clr, ps.Float("knob_height")))
		return []Part{
			{Name: "bolt", Solid: bolt},
			{Name: "bolt-nut", Solid: nut},
		}

	case params.BoltSheathPair:
		post := withShaft(ps, k, knob(ps, k), bd, half)
		pin := k.Translate(k.Cylinder(pairPinLength, pairPinDiameter/2),
			0, 0, ps.Float("knob_height")+half+pairPinLength/2)
		post = k.Union(post, pin)

		socket := withShaft(ps, k, knob(ps, k), bd, half)
		socket = k.Difference(socket,
			boreDown(k, pairPinDiameter/2+clr, ps.Float("knob_height")+half))
		return []Part{
			{Name: "bolt-post", Solid: post},
			{Name: "bolt-socket", Solid: socket},
		}

	default: // params.BoltSplitHalves
		bolt := withShaft(ps, k, knob(ps, k), bd, full)
		d := 2 * (ps.Float("knob_diameter") + full)
		halfBox := k.Translate(k.Box(d, d, d), -d/2, 0, -cutterOvercut)
		a := k.Intersection(bolt, halfBox)
		b := k.Difference(bolt, halfBox)
		return []Part{
			{Name: "bolt-half-a", Solid: a},
			{Name: "bolt-half-b", Solid: k.Rotate(b, 0, 0, 180)},
		}
	}
}

// knob builds the grip knob: an augmented cylinder with both rims
// chamfered, serrated by small cylinders subtracted around the perimeter.
func knob(ps *params.Set, k kernel.Kernel) kernel.Solid {
	kd := ps.Float("knob_diameter")
	kh := ps.Float("knob_height")
	c := chamferOpt(ps)

	s := solids.Cylinder(k, solids.CylSpec{
		H: kh, D: solids.Some(kd),
		C:  c,
		O1: overhangOpt(ps),
	})

	n := int(ps.Float("serration_count"))
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pin := k.Cylinder(kh+2*cutterOvercut, serrationDiameter/2)
		pin = k.Translate(pin, kd/2*math.Cos(a), kd/2*math.Sin(a), kh/2)
		s = k.Difference(s, pin)
	}
	return s
}

// withShaft unions a shaft of the given diameter and length on top of a
// knob, tip chamfered for easy insertion.
func withShaft(ps *params.Set, k kernel.Kernel, base kernel.Solid, d, length float64) kernel.Solid {
	shaft := solids.Cylinder(k, solids.CylSpec{
		H: length, D: solids.Some(d),
		C2: chamferOpt(ps),
	})
	return k.Union(base, k.Translate(shaft, 0, 0, ps.Float("knob_height")))
}

// boreDown builds a bore cutter descending from the top of a stack of the
// given height, overcut on both ends.
func boreDown(k kernel.Kernel, r, height float64) kernel.Solid {
	cyl := k.Cylinder(height+2*cutterOvercut, r)
	return k.Translate(cyl, 0, 0, height/2)
}
