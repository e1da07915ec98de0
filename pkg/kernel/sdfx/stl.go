package sdfx

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/chazu/scabbard/pkg/kernel"
)

// stlHeader is the fixed 84-byte preamble of a binary STL file.
type stlHeader struct {
	_     [80]uint8
	Count uint32
}

// stlTriangle is the on-disk layout of one binary STL facet.
type stlTriangle struct {
	Normal [3]float32
	Vertex [3][3]float32
	_      uint16
}

// writeSTL writes a triangle mesh to path in binary STL format.
// sdfx's own STL writer logs IO failures instead of returning them,
// so the file is written here to keep errors on the caller's path.
func writeSTL(path string, m *kernel.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stl: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	hdr := stlHeader{Count: uint32(m.TriangleCount())}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("stl: header: %w", err)
	}

	var t stlTriangle
	for i := 0; i < m.TriangleCount(); i++ {
		for j := 0; j < 3; j++ {
			vi := int(m.Indices[i*3+j])
			t.Vertex[j][0] = m.Vertices[vi*3]
			t.Vertex[j][1] = m.Vertices[vi*3+1]
			t.Vertex[j][2] = m.Vertices[vi*3+2]
		}
		t.Normal[0] = m.Normals[int(m.Indices[i*3])*3]
		t.Normal[1] = m.Normals[int(m.Indices[i*3])*3+1]
		t.Normal[2] = m.Normals[int(m.Indices[i*3])*3+2]
		if err := binary.Write(w, binary.LittleEndian, &t); err != nil {
			return fmt.Errorf("stl: facet %d: %w", i, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("stl: flush: %w", err)
	}
	return nil
}
