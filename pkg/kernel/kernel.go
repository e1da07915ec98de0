// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx) provide solid modeling and boolean operations
// behind this interface. The kernel abstraction allows swapping backends
// without changing the shape builders or part assemblers.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Solids are immutable; boolean operations and transforms always
// return a new Solid and never mutate their operands.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Primitives.
	// Box has its minimum corner at the origin. Cylinder and Cone are
	// centered at the origin with their axis along +Z; Cone takes
	// independent bottom/top radii (equal radii give a cylinder).
	// Extrude sweeps a closed 2D polygon along Z, centered on z=0.
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64) Solid
	Cone(height, rBottom, rTop float64) Solid
	Extrude(profile [][2]float64, height float64) Solid

	// Boolean operations.
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms.
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// Mesh output. cells controls marching-cubes resolution.
	ToMesh(s Solid, cells int) (*Mesh, error)
	WriteSTL(s Solid, path string, cells int) error
}
