package sdfx

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

const tol = 1e-9

func approxBox(t *testing.T, min, max [3]float64, wantMin, wantMax [3]float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-wantMin[i]) > tol || math.Abs(max[i]-wantMax[i]) > tol {
			t.Fatalf("bbox = %v %v, want %v %v", min, max, wantMin, wantMax)
		}
	}
}

func TestBoxMinCorner(t *testing.T) {
	k := New()
	min, max := k.Box(2, 4, 6).BoundingBox()
	approxBox(t, min, max, [3]float64{0, 0, 0}, [3]float64{2, 4, 6})
}

func TestCylinderCentered(t *testing.T) {
	k := New()
	min, max := k.Cylinder(10, 3).BoundingBox()
	approxBox(t, min, max, [3]float64{-3, -3, -5}, [3]float64{3, 3, 5})
}

func TestConeBounds(t *testing.T) {
	k := New()
	min, max := k.Cone(8, 4, 1).BoundingBox()
	approxBox(t, min, max, [3]float64{-4, -4, -4}, [3]float64{4, 4, 4})

	// Radius narrows towards the top.
	s := k.Cone(8, 4, 1)
	if d := Evaluate(s, 3, 0, -3.5); d >= 0 {
		t.Errorf("point near the wide base not inside, distance %g", d)
	}
	if d := Evaluate(s, 3, 0, 3.5); d <= 0 {
		t.Errorf("point near the narrow top is inside, distance %g", d)
	}
}

func TestExtrudeCentered(t *testing.T) {
	k := New()
	// Right triangle in the XY plane.
	s := k.Extrude([][2]float64{{0, 0}, {4, 0}, {0, 3}}, 2)
	min, max := s.BoundingBox()
	approxBox(t, min, max, [3]float64{0, 0, -1}, [3]float64{4, 3, 1})

	if d := Evaluate(s, 0.5, 0.5, 0); d >= 0 {
		t.Errorf("triangle interior not inside, distance %g", d)
	}
	if d := Evaluate(s, 3.5, 2.5, 0); d <= 0 {
		t.Errorf("point beyond the hypotenuse is inside, distance %g", d)
	}
}

func TestBooleans(t *testing.T) {
	k := New()
	a := k.Box(4, 4, 4)
	b := k.Translate(k.Box(4, 4, 4), 2, 0, 0)

	union := k.Union(a, b)
	if d := Evaluate(union, 5, 2, 2); d >= 0 {
		t.Errorf("union missing b-only region, distance %g", d)
	}

	diff := k.Difference(a, b)
	if d := Evaluate(diff, 3, 2, 2); d <= 0 {
		t.Errorf("difference kept subtracted region, distance %g", d)
	}
	if d := Evaluate(diff, 1, 2, 2); d >= 0 {
		t.Errorf("difference lost a-only region, distance %g", d)
	}

	inter := k.Intersection(a, b)
	if d := Evaluate(inter, 3, 2, 2); d >= 0 {
		t.Errorf("intersection missing overlap, distance %g", d)
	}
	if d := Evaluate(inter, 1, 2, 2); d <= 0 {
		t.Errorf("intersection kept a-only region, distance %g", d)
	}
}

func TestRotateAxes(t *testing.T) {
	k := New()
	// A unit-footprint post along +Z.
	post := k.Box(1, 1, 5)

	tests := []struct {
		name             string
		x, y, z          float64
		wantMin, wantMax [3]float64
	}{
		{"y+90 sends z to x", 0, 90, 0, [3]float64{0, 0, -1}, [3]float64{5, 1, 0}},
		{"y-90 sends z to -x", 0, -90, 0, [3]float64{-5, 0, 0}, [3]float64{0, 1, 1}},
		{"x-90 sends z to y", -90, 0, 0, [3]float64{0, 0, -1}, [3]float64{1, 5, 0}},
		{"x+90 sends z to -y", 90, 0, 0, [3]float64{0, -5, 0}, [3]float64{1, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := k.Rotate(post, tt.x, tt.y, tt.z).BoundingBox()
			approxBox(t, min, max, tt.wantMin, tt.wantMax)
		})
	}
}

func TestToMesh(t *testing.T) {
	k := New()
	m, err := k.ToMesh(k.Box(10, 10, 10), 32)
	if err != nil {
		t.Fatalf("ToMesh() error = %v", err)
	}
	if m.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if got := len(m.Vertices); got != m.TriangleCount()*9 {
		t.Errorf("vertex floats = %d, want %d", got, m.TriangleCount()*9)
	}
	if got := len(m.Normals); got != len(m.Vertices) {
		t.Errorf("normal floats = %d, want %d", got, len(m.Vertices))
	}
	if got := len(m.Indices); got != m.TriangleCount()*3 {
		t.Errorf("indices = %d, want %d", got, m.TriangleCount()*3)
	}
}

func TestWriteSTL(t *testing.T) {
	k := New()
	s := k.Box(10, 10, 10)
	path := filepath.Join(t.TempDir(), "box.stl")

	if err := k.WriteSTL(s, path, 32); err != nil {
		t.Fatalf("WriteSTL() error = %v", err)
	}

	m, err := k.ToMesh(s, 32)
	if err != nil {
		t.Fatalf("ToMesh() error = %v", err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	// 80-byte header + count + 50 bytes per facet.
	if want := int64(84 + 50*m.TriangleCount()); fi.Size() != want {
		t.Errorf("file size = %d, want %d", fi.Size(), want)
	}
}

func TestWriteSTLBadPath(t *testing.T) {
	k := New()
	err := k.WriteSTL(k.Box(1, 1, 1), filepath.Join(t.TempDir(), "missing", "box.stl"), 16)
	if err == nil {
		t.Fatal("WriteSTL() into a missing directory succeeded")
	}
}
