package kernel

import "testing"

func TestMeshCounts(t *testing.T) {
	m := &Mesh{
		Vertices: make([]float32, 9),
		Normals:  make([]float32, 9),
		Indices:  []uint32{0, 1, 2},
	}
	if got := m.VertexCount(); got != 3 {
		t.Errorf("VertexCount() = %d, want 3", got)
	}
	if got := m.TriangleCount(); got != 1 {
		t.Errorf("TriangleCount() = %d, want 1", got)
	}
	if m.IsEmpty() {
		t.Error("IsEmpty() = true for a populated mesh")
	}
}

func TestMeshEmpty(t *testing.T) {
	m := &Mesh{}
	if !m.IsEmpty() {
		t.Error("IsEmpty() = false for an empty mesh")
	}
	if m.VertexCount() != 0 || m.TriangleCount() != 0 {
		t.Errorf("counts = %d verts, %d tris, want 0, 0", m.VertexCount(), m.TriangleCount())
	}
}
