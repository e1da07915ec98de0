package parts

import (
	"github.com/chazu/scabbard/pkg/kernel"
	"github.com/chazu/scabbard/pkg/params"
	"github.com/chazu/scabbard/pkg/profiles"
)

// cutterOvercut extends subtraction solids past the faces they pierce.
const cutterOvercut = 1.0

// Orientation marker engraved near the tip of the body.
const (
	markerSize   = 3.0
	markerDepth  = 0.4
	markerOffset = 8.0 // below the tip
)

// Body builds the main bar: a rounded bar with a diagonal tip cut, the
// belt attachment (hole or slot) near the top end, the retention notch
// matching the sleeve's bolt axis, and an engraved orientation marker.
// The bar occupies [0,W] x [0,T] x [0,L]; z=0 is the bottom (plate) end.
func Body(ps *params.Set, k kernel.Kernel) kernel.Solid {
	w := ps.Float("body_width")
	t := ps.Float("body_thickness")
	l := ps.Float("body_length")
	c := chamferOpt(ps)

	s := profiles.Bar(k, profiles.BarSpec{
		Width: w, Thickness: t, Length: l,
		C1: c, C2: c,
		O1: overhangOpt(ps),
	})

	if a := ps.Float("tip_cut_angle"); a > 0 {
		s = k.Difference(s, tipCutter(k, w, t, l, a))
	}

	switch ps.Enum("attachment") {
	case params.AttachHole:
		hole := crossDrill(k, ps.Float("hole_diameter")/2, t)
		s = k.Difference(s, k.Translate(hole, w/2, 0, l-ps.Float("hole_position")))

	case params.AttachSlot:
		slot := profiles.Slot(k, profiles.SlotSpec{
			Width:     ps.Float("slot_width"),
			Thickness: t + 2*cutterOvercut,
			Length:    ps.Float("slot_length"),
			Diagonal:  ps.Bool("slot_diagonal"),

			RightFactor: ps.Float("slot_right_factor"),
			BackFactor:  ps.Float("slot_back_factor"),
		})
		// Stand the slot up: thickness along Y, channel descending from
		// the given distance below the top end.
		slot = k.Rotate(slot, -90, 0, 0)
		s = k.Difference(s, k.Translate(slot, w/2, -cutterOvercut, l-ps.Float("slot_position")))
	}

	// Retention notch on the sleeve's bolt axis. Same derived offset as
	// the sleeve slot, so the parts stay aligned under parameter changes.
	notch := crossDrill(k, ps.Float("bolt_diameter")/2+ps.Float("clearance"), t)
	s = k.Difference(s, k.Translate(notch, w/2, 0, ps.Float("retention_offset")))

	s = k.Difference(s, k.Translate(marker(k), w/2, 0, l-markerOffset))
	return s
}

// crossDrill builds a through-hole cutter along the thickness (Y) axis.
func crossDrill(k kernel.Kernel, r, thickness float64) kernel.Solid {
	cyl := k.Cylinder(thickness+2*cutterOvercut, r)
	return k.Translate(k.Rotate(cyl, 90, 0, 0), 0, thickness/2, 0)
}

// tipCutter builds the diagonal tip cut: a half-space-sized box whose
// bottom plane passes through (0, *, L) and slopes down across the width
// at the given angle, truncating the tip corner on the +X side.
func tipCutter(k kernel.Kernel, w, t, l, angleDeg float64) kernel.Solid {
	d := 4 * (w + t)
	b := k.Box(d, t+2*cutterOvercut, d)
	b = k.Translate(b, -d/4, -(t+2*cutterOvercut)/2, 0)
	b = k.Rotate(b, 0, angleDeg, 0)
	return k.Translate(b, 0, t/2, l)
}

// marker builds the engraved orientation diamond, half sunk into the
// front face.
func marker(k kernel.Kernel) kernel.Solid {
	m := k.Box(markerSize, 2*markerDepth, markerSize)
	m = k.Translate(m, -markerSize/2, -markerDepth, -markerSize/2)
	return k.Rotate(m, 0, 45, 0)
}
