package parts

import (
	"github.com/chazu/scabbard/pkg/kernel"
	"github.com/chazu/scabbard/pkg/params"
	"github.com/chazu/scabbard/pkg/profiles"
)

// Sleeve builds the outer sleeve: a rounded bar shell whose cavity is the
// body cross-section grown by the sliding clearance, pierced by the
// bayonet retention slot the bolt travels in. The mouth is at z=Length;
// z=0 is the capped end.
func Sleeve(ps *params.Set, k kernel.Kernel) kernel.Solid {
	ow := ps.Float("sleeve_outer_width")
	ot := ps.Float("sleeve_outer_thickness")
	iw := ps.Float("sleeve_inner_width")
	it := ps.Float("sleeve_inner_thickness")
	sl := ps.Float("sleeve_length")
	wall := ps.Float("wall_thickness")
	c := chamferOpt(ps)

	s := profiles.Bar(k, profiles.BarSpec{
		Width: ow, Thickness: ot, Length: sl,
		C1: c, C2: c,
		O1: overhangOpt(ps),
	})

	cavity := profiles.Bar(k, profiles.BarSpec{
		Width: iw, Thickness: it, Length: sl + 2*cutterOvercut,
	})
	s = k.Difference(s, k.Translate(cavity, wall, wall, -cutterOvercut))

	// Retention slot: the channel runs from the mouth down to the bolt
	// axis at retention_offset, where the lock extension turns off. Both
	// walls are pierced so the bolt can cross the sleeve.
	slot := profiles.Slot(k, profiles.SlotSpec{
		Width:     ps.Float("bolt_diameter") + 2*ps.Float("clearance"),
		Thickness: ot + 2*cutterOvercut,
		Length:    ps.Float("bolt_position"),
		Diagonal:  ps.Bool("slot_diagonal"),

		RightFactor: ps.Float("slot_right_factor"),
		BackFactor:  ps.Float("slot_back_factor"),
	})
	slot = k.Rotate(slot, 90, 0, 0)
	return k.Difference(s, k.Translate(slot, ow/2, ot+cutterOvercut, sl-ps.Float("bolt_position")))
}
