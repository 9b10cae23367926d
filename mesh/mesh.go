// SPDX-License-Identifier: EPL-2.0

package mesh

import (
	"fmt"
	"math"
)

// Mesh stores vertices and triangles. The zero value is ready to use.
type Mesh struct {
	vertices []Vertex
	faces    []Face

	// truncated counts ring points dropped because the stitched rings
	// were of different length.
	truncated int
	stitches  int
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{}
}

// NewWithCapacity returns an empty mesh with room for n vertices and about
// as many faces. A non-positive n behaves like New.
func NewWithCapacity(n int) *Mesh {
	if n <= 0 {
		return New()
	}
	return &Mesh{
		vertices: make([]Vertex, 0, n),
		faces:    make([]Face, 0, n),
	}
}

// Stitch appends the points of a and b as interleaved pairs and fills the
// space between the two rings with triangles, two per segment.
//
// The shorter ring bounds the strip: trailing points of the longer ring are
// dropped and counted in Truncated. Empty rings add nothing.
// It returns the number of faces added.
func (m *Mesh) Stitch(a, b Ring) int {
	n := min(len(a), len(b))
	m.stitches++
	m.truncated += max(len(a), len(b)) - n
	if n == 0 {
		return 0
	}

	base := len(m.vertices)
	m.vertices = append(m.vertices, a[0], b[0])

	for i := 1; i < n; i++ {
		m.vertices = append(m.vertices, a[i], b[i])
		prev := base + 2*(i-1) // first of the previous pair
		m.faces = append(m.faces,
			Face{prev, prev + 1, prev + 2},
			Face{prev + 1, prev + 2, prev + 3},
		)
	}

	return 2 * (n - 1)
}

// Vertices returns the vertex store. The slice must not be modified.
func (m *Mesh) Vertices() []Vertex { return m.vertices }

// Faces returns the face store. The slice must not be modified.
func (m *Mesh) Faces() []Face { return m.faces }

// VertexCount returns the number of stored vertices.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// FaceCount returns the number of stored triangles.
func (m *Mesh) FaceCount() int { return len(m.faces) }

// Stitches returns how many times Stitch was called.
func (m *Mesh) Stitches() int { return m.stitches }

// Truncated returns how many ring points were dropped by stitching rings of
// unequal length.
func (m *Mesh) Truncated() int { return m.truncated }

// IsEmpty reports whether the mesh holds no triangles.
func (m *Mesh) IsEmpty() bool { return len(m.faces) == 0 }

// Triangle returns the three points of face i.
func (m *Mesh) Triangle(i int) [3]Vertex {
	f := m.faces[i]
	return [3]Vertex{m.vertices[f[0]], m.vertices[f[1]], m.vertices[f[2]]}
}

// Validate checks that every face references existing, distinct vertices.
func (m *Mesh) Validate() error {
	count := len(m.vertices)
	for i, f := range m.faces {
		for _, idx := range f {
			if idx < 0 || idx >= count {
				return fmt.Errorf("face %d index %d (vertices %d): %w", i, idx, count, ErrFaceOutOfRange)
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			return fmt.Errorf("face %d %v: %w", i, f, ErrDegenerateFace)
		}
	}
	return nil
}

// Bounds is an axis aligned bounding box.
type Bounds struct {
	Min, Max Vertex
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() Vertex { return b.Max.Sub(b.Min) }

// Bounds returns the bounding box of all stored vertices.
// An empty mesh yields the zero box.
func (m *Mesh) Bounds() Bounds {
	if len(m.vertices) == 0 {
		return Bounds{}
	}

	b := Bounds{
		Min: Vertex{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: Vertex{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
	for _, v := range m.vertices {
		b.Min.X = math.Min(b.Min.X, v.X)
		b.Min.Y = math.Min(b.Min.Y, v.Y)
		b.Min.Z = math.Min(b.Min.Z, v.Z)
		b.Max.X = math.Max(b.Max.X, v.X)
		b.Max.Y = math.Max(b.Max.Y, v.Y)
		b.Max.Z = math.Max(b.Max.Z, v.Z)
	}
	return b
}
