package solids

import (
	"math"

	"github.com/chazu/scabbard/pkg/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// Axis identifies one of the three box axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// Face identifies one of the six box faces.
type Face int

const (
	FaceLeft   Face = iota // x = 0
	FaceRight              // x = size.X
	FaceFront              // y = 0
	FaceBack               // y = size.Y
	FaceBottom             // z = 0
	FaceTop                // z = size.Z
)

func (f Face) String() string {
	switch f {
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceBottom:
		return "bottom"
	case FaceTop:
		return "top"
	default:
		return "unknown"
	}
}

// CubeOpts carries the chamfer/overhang override table for one cube
// invocation. Chamfer resolves per edge as: specific edge > axis > global
// > 0. Overhang resolves per face as: specific face > z-face alias
// (O1 = bottom, O2 = top) > global > 0. The table is resolved once per
// invocation and never mutated.
//
// Edges are indexed 1-4 per axis. For an axis with cross axes (b, c) in
// cyclic order (x->yz, y->zx, z->xy), edge 1 sits at the origin corner
// (b min, c min) and the numbering proceeds around the axis:
// 2 = (b max, c min), 3 = (b max, c max), 4 = (b min, c max).
// Callers rely on this mapping staying fixed.
type CubeOpts struct {
	C          Opt    // global chamfer
	CX, CY, CZ Opt    // per-axis chamfer
	EX, EY, EZ [4]Opt // specific edges, indexed 1-4 (array slot 0-3)

	O      Opt // global overhang
	O1, O2 Opt // aliases for the bottom / top faces

	OLeft, ORight, OFront, OBack, OBottom, OTop Opt // specific faces
}

// EdgeChamfer resolves the effective chamfer for edge idx (1-4) of the
// given axis.
func (o CubeOpts) EdgeChamfer(a Axis, idx int) float64 {
	var edges [4]Opt
	var axis Opt
	switch a {
	case AxisX:
		edges, axis = o.EX, o.CX
	case AxisY:
		edges, axis = o.EY, o.CY
	case AxisZ:
		edges, axis = o.EZ, o.CZ
	}
	return Resolve(edges[idx-1], axis, o.C)
}

// FaceOverhang resolves the effective overhang depth for the given face.
func (o CubeOpts) FaceOverhang(f Face) float64 {
	switch f {
	case FaceLeft:
		return Resolve(o.OLeft, o.O)
	case FaceRight:
		return Resolve(o.ORight, o.O)
	case FaceFront:
		return Resolve(o.OFront, o.O)
	case FaceBack:
		return Resolve(o.OBack, o.O)
	case FaceBottom:
		return Resolve(o.OBottom, o.O1, o.O)
	case FaceTop:
		return Resolve(o.OTop, o.O2, o.O)
	}
	return 0
}

// Cube builds an augmented box with its minimum corner at the origin:
// the raw box, minus a triangular prism at every edge with a nonzero
// resolved chamfer, plus a truncated 45-degree pyramid flush against
// every face with a nonzero resolved overhang.
func Cube(k kernel.Kernel, size r3.Vec, opts CubeOpts) kernel.Solid {
	s := k.Box(size.X, size.Y, size.Z)

	for _, a := range []Axis{AxisX, AxisY, AxisZ} {
		for idx := 1; idx <= 4; idx++ {
			c := opts.EdgeChamfer(a, idx)
			if c > 0 {
				s = k.Difference(s, edgePrism(k, size, a, idx, c))
			}
		}
	}

	for _, f := range []Face{FaceLeft, FaceRight, FaceFront, FaceBack, FaceBottom, FaceTop} {
		o := opts.FaceOverhang(f)
		if o > 0 {
			s = k.Union(s, faceStump(k, size, f, o))
		}
	}

	return s
}

// axisSpan returns the edge length along axis a and the cross-axis extents
// (b, c) in cyclic order.
func axisSpan(size r3.Vec, a Axis) (length, b, c float64) {
	switch a {
	case AxisX:
		return size.X, size.Y, size.Z
	case AxisY:
		return size.Y, size.Z, size.X
	case AxisZ:
		return size.Z, size.X, size.Y
	}
	return 0, 0, 0
}

// cornerPos maps an edge index to its (b, c) corner coordinates.
func cornerPos(idx int, bMax, cMax float64) (b, c float64) {
	switch idx {
	case 1:
		return 0, 0
	case 2:
		return bMax, 0
	case 3:
		return bMax, cMax
	case 4:
		return 0, cMax
	}
	return 0, 0
}

// edgePrism builds the chamfer cutter for one edge: a square prism of side
// chamfer*sqrt(2), rotated 45 degrees about the edge axis and centered on
// the edge line, so its cross-section inside the box is a right triangle
// with both legs equal to the chamfer size. The prism runs slightly past
// both ends of the edge.
func edgePrism(k kernel.Kernel, size r3.Vec, a Axis, idx int, chamfer float64) kernel.Solid {
	length, bMax, cMax := axisSpan(size, a)
	side := chamfer * math.Sqrt2
	full := length + 2*sweepOvercut

	prism := k.Box(side, side, full)
	prism = k.Translate(prism, -side/2, -side/2, -full/2)
	prism = k.Rotate(prism, 0, 0, 45)

	b, c := cornerPos(idx, bMax, cMax)
	switch a {
	case AxisX:
		// Align the prism axis with +X; cross axes are (y, z).
		prism = k.Rotate(prism, 0, 90, 0)
		return k.Translate(prism, size.X/2, b, c)
	case AxisY:
		// Align with +Y; cross axes are (z, x).
		prism = k.Rotate(prism, -90, 0, 0)
		return k.Translate(prism, c, size.Y/2, b)
	default:
		// Already along +Z; cross axes are (x, y).
		return k.Translate(prism, b, c, size.Z/2)
	}
}

// faceStump builds and places the overhang pyramid for one face. The stump
// flares outward along the face plane and rises into the box interior, so
// it widens the footprint by the overhang depth without extending the box
// along the face normal.
func faceStump(k kernel.Kernel, size r3.Vec, f Face, o float64) kernel.Solid {
	switch f {
	case FaceBottom:
		return k.Translate(pyramidStump(k, size.X, size.Y, o), size.X/2, size.Y/2, 0)
	case FaceTop:
		s := k.Rotate(pyramidStump(k, size.X, size.Y, o), 180, 0, 0)
		return k.Translate(s, size.X/2, size.Y/2, size.Z)
	case FaceLeft:
		s := k.Rotate(pyramidStump(k, size.Z, size.Y, o), 0, 90, 0)
		return k.Translate(s, 0, size.Y/2, size.Z/2)
	case FaceRight:
		s := k.Rotate(pyramidStump(k, size.Z, size.Y, o), 0, -90, 0)
		return k.Translate(s, size.X, size.Y/2, size.Z/2)
	case FaceFront:
		s := k.Rotate(pyramidStump(k, size.X, size.Z, o), -90, 0, 0)
		return k.Translate(s, size.X/2, 0, size.Z/2)
	default: // FaceBack
		s := k.Rotate(pyramidStump(k, size.X, size.Z, o), 90, 0, 0)
		return k.Translate(s, size.X/2, size.Y, size.Z/2)
	}
}
