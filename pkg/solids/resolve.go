// Package solids builds the augmented primitives: cylinders and cubes with
// per-end/per-edge chamfers and 45-degree overhang reinforcement for
// additive manufacturing. All constructors are pure functions over a
// geometry kernel; they never validate dimensions — degenerate inputs
// produce degenerate solids.
package solids

// Opt is an optional scalar override. The zero value is "not set".
type Opt struct {
	set bool
	v   float64
}

// Some returns a set Opt holding v.
func Some(v float64) Opt {
	return Opt{set: true, v: v}
}

// IsSet reports whether the option holds a value.
func (o Opt) IsSet() bool {
	return o.set
}

// Resolve returns the first set value in the given priority order,
// or 0 when none is set. This is the single default-layering rule for
// every chamfer and overhang override in the package.
func Resolve(opts ...Opt) float64 {
	for _, o := range opts {
		if o.set {
			return o.v
		}
	}
	return 0
}

// times returns a set Opt scaled by f, or an unset Opt unchanged.
// Used to fold radius options into diameter priority chains.
func (o Opt) times(f float64) Opt {
	if !o.set {
		return o
	}
	return Some(o.v * f)
}
