package params

import "fmt"

// draftCells is the marching-cubes resolution used when draft mode is on.
const draftCells = 48

// derivation defines one derived parameter: a pure function of primary
// parameters and other derived parameters. deps declares every parameter
// the function reads; the declared edges form the dependency DAG.
type derivation struct {
	key  string
	deps []string
	fn   func(s *Set) float64
}

// derivations is the full table of derived parameters.
var derivations = []derivation{
	{
		key:  "sleeve_inner_width",
		deps: []string{"body_width", "clearance"},
		fn:   func(s *Set) float64 { return s.Float("body_width") + 2*s.Float("clearance") },
	},
	{
		key:  "sleeve_inner_thickness",
		deps: []string{"body_thickness", "clearance"},
		fn:   func(s *Set) float64 { return s.Float("body_thickness") + 2*s.Float("clearance") },
	},
	{
		key:  "sleeve_outer_width",
		deps: []string{"sleeve_inner_width", "wall_thickness"},
		fn:   func(s *Set) float64 { return s.Float("sleeve_inner_width") + 2*s.Float("wall_thickness") },
	},
	{
		key:  "sleeve_outer_thickness",
		deps: []string{"sleeve_inner_thickness", "wall_thickness"},
		fn:   func(s *Set) float64 { return s.Float("sleeve_inner_thickness") + 2*s.Float("wall_thickness") },
	},
	{
		// Shaft long enough to cross the sleeve: body plus the clearance
		// and wall on both sides.
		key:  "bolt_length",
		deps: []string{"body_thickness", "clearance", "wall_thickness"},
		fn: func(s *Set) float64 {
			return s.Float("body_thickness") + 2*(s.Float("clearance")+s.Float("wall_thickness"))
		},
	},
	{
		key:  "half_bolt_length",
		deps: []string{"bolt_length"},
		fn:   func(s *Set) float64 { return s.Float("bolt_length") / 2 },
	},
	{
		key:  "cap_pocket_depth",
		deps: []string{"cap_height", "wall_thickness"},
		fn:   func(s *Set) float64 { return s.Float("cap_height") - s.Float("wall_thickness") },
	},
	{
		// Bolt axis measured from the closed end of the sleeve. The body's
		// matching retention notch uses the same value, which is what keeps
		// the two parts aligned under any parameter change.
		key:  "retention_offset",
		deps: []string{"sleeve_length", "bolt_position"},
		fn:   func(s *Set) float64 { return s.Float("sleeve_length") - s.Float("bolt_position") },
	},
	{
		key:  "mesh_cells",
		deps: []string{"resolution", "draft"},
		fn: func(s *Set) float64 {
			if s.Bool("draft") {
				return draftCells
			}
			return s.Float("resolution")
		},
	},
}

// derivationIndex maps derived key to its table position.
var derivationIndex = func() map[string]int {
	m := make(map[string]int, len(derivations))
	for i, d := range derivations {
		m[d.key] = i
	}
	return m
}()

// DerivedKeys returns the derived parameter names in table order.
func DerivedKeys() []string {
	keys := make([]string, len(derivations))
	for i, d := range derivations {
		keys[i] = d.key
	}
	return keys
}

// resolveDerived evaluates every derivation in dependency order using DFS
// with 3-color marking. White (0) = unvisited, gray (1) = on the current
// DFS path, black (2) = fully resolved. Encountering a gray node means the
// definitions are cyclic, which is a fail-fast DerivationError.
func (s *Set) resolveDerived() error {
	const (
		white = iota
		gray
		black
	)
	color := make(map[string]int, len(derivations))

	var visit func(key string) error
	visit = func(key string) error {
		switch color[key] {
		case black:
			return nil
		case gray:
			return &DerivationError{Key: key, Reason: "cyclic definition"}
		}
		color[key] = gray

		d := derivations[derivationIndex[key]]
		for _, dep := range d.deps {
			if _, primary := defIndex[dep]; primary {
				continue
			}
			if _, derived := derivationIndex[dep]; !derived {
				return &DerivationError{Key: key,
					Reason: fmt.Sprintf("references unresolved parameter %q", dep)}
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		s.floats[key] = d.fn(s)
		color[key] = black
		return nil
	}

	for _, d := range derivations {
		if err := visit(d.key); err != nil {
			return err
		}
	}
	return nil
}
