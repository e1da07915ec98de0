// Package parts assembles the finished parts of the sheath: the body, the
// sleeve it slides into, the end cap and the retention bolts. Every
// assembler derives its local dimensions from the same Parameter Set;
// cross-part fit comes only from shared derived parameters, never from one
// part reading another's geometry. Assemblers perform no validation: a
// parameter combination that yields negative sizes flows through and
// produces a degenerate solid.
package parts

import (
	"github.com/chazu/scabbard/pkg/kernel"
	"github.com/chazu/scabbard/pkg/params"
	"github.com/chazu/scabbard/pkg/solids"
)

// Part is one finished, independently fabricable solid.
type Part struct {
	Name  string
	Solid kernel.Solid
}

// Generate builds every part enabled by the generation toggles.
// The result is deterministic for a given Set.
func Generate(ps *params.Set, k kernel.Kernel) []Part {
	var out []Part
	if ps.Bool("generate_body") {
		out = append(out, Part{Name: "body", Solid: Body(ps, k)})
	}
	if ps.Bool("generate_sleeve") {
		out = append(out, Part{Name: "sleeve", Solid: Sleeve(ps, k)})
	}
	if ps.Bool("generate_cap") {
		out = append(out, Part{Name: "cap", Solid: Cap(ps, k)})
	}
	if ps.Bool("generate_bolts") {
		out = append(out, Bolts(ps, k)...)
	}
	return out
}

// chamferOpt returns the quality-gated edge chamfer as an override option:
// set when chamfering is enabled and nonzero, unset otherwise.
func chamferOpt(ps *params.Set) solids.Opt {
	if !ps.Bool("chamfer_enabled") {
		return solids.Opt{}
	}
	c := ps.Float("edge_chamfer")
	if c <= 0 {
		return solids.Opt{}
	}
	return solids.Some(c)
}

// overhangOpt returns the quality-gated overhang depth for the plate-side
// end of a part.
func overhangOpt(ps *params.Set) solids.Opt {
	if !ps.Bool("overhang_enabled") {
		return solids.Opt{}
	}
	o := ps.Float("overhang")
	if o <= 0 {
		return solids.Opt{}
	}
	return solids.Some(o)
}
