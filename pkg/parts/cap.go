package parts

import (
	"github.com/chazu/scabbard/pkg/kernel"
	"github.com/chazu/scabbard/pkg/params"
	"github.com/chazu/scabbard/pkg/profiles"
)

// Standoff bumps on the cap pocket floor, centering the body tip.
const (
	standoffDiameter = 2.0
	standoffHeight   = 1.0
)

// Cap builds the end cap: a short slice of the sleeve's outer cross-section
// with a pocket the body cross-section (plus clearance) drops into, and two
// standoff bumps on the pocket floor.
func Cap(ps *params.Set, k kernel.Kernel) kernel.Solid {
	ow := ps.Float("sleeve_outer_width")
	ot := ps.Float("sleeve_outer_thickness")
	iw := ps.Float("sleeve_inner_width")
	it := ps.Float("sleeve_inner_thickness")
	h := ps.Float("cap_height")
	depth := ps.Float("cap_pocket_depth")
	wall := ps.Float("wall_thickness")
	c := chamferOpt(ps)

	s := profiles.Bar(k, profiles.BarSpec{
		Width: ow, Thickness: ot, Length: h,
		C1: c,
		O1: overhangOpt(ps),
	})

	pocket := profiles.Bar(k, profiles.BarSpec{
		Width: iw, Thickness: it, Length: depth + cutterOvercut,
	})
	s = k.Difference(s, k.Translate(pocket, wall, wall, h-depth))

	floor := h - depth
	for _, dx := range []float64{-iw / 4, iw / 4} {
		bump := k.Translate(k.Cylinder(standoffHeight, standoffDiameter/2),
			ow/2+dx, ot/2, floor+standoffHeight/2)
		s = k.Union(s, bump)
	}
	return s
}
