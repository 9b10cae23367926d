// SPDX-License-Identifier: EPL-2.0

package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/phonostl/mesh"
)

const (
	headerSize   = 80
	triangleSize = 50 // normal + 3 vertices as float32, uint16 attribute
)

// Mesh is what the writers need from a triangle mesh.
type Mesh interface {
	FaceCount() int
	Triangle(i int) [3]mesh.Vertex
	Validate() error
}

// Encoder writes meshes in a fixed format.
type Encoder struct {
	Format Format
	// Name is stored in the binary header or the ASCII solid line.
	Name string
	// Scale multiplies every coordinate. Zero means 1.
	Scale float64
}

// WriteBinary writes m to w as binary STL.
func WriteBinary(w io.Writer, m Mesh, name string) error {
	return Encoder{Format: Binary, Name: name}.Encode(w, m)
}

// WriteASCII writes m to w as ASCII STL.
func WriteASCII(w io.Writer, m Mesh, name string) error {
	return Encoder{Format: ASCII, Name: name}.Encode(w, m)
}

// Encode validates m and writes it to w.
func (e Encoder) Encode(w io.Writer, m Mesh) error {
	if m.FaceCount() == 0 {
		return ErrEmptyMesh
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("stl: %w", err)
	}

	switch e.Format {
	case Binary:
		return e.writeBinary(w, m)
	case ASCII:
		return e.writeASCII(w, m)
	default:
		return fmt.Errorf("%v: %w", e.Format, ErrUnknownFormat)
	}
}

func (e Encoder) scale() float64 {
	if e.Scale == 0 {
		return 1
	}
	return e.Scale
}

// Normal returns the unit normal of a triangle following the right hand
// rule, or the zero vector for a degenerate triangle.
func Normal(tri [3]mesh.Vertex) mesh.Vertex {
	return tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0])).Normalize()
}

func (e Encoder) writeBinary(w io.Writer, m Mesh) error {
	count := m.FaceCount()
	if uint64(count) > math.MaxUint32 {
		return fmt.Errorf("%d triangles: %w", count, ErrTooManyFaces)
	}

	header := make([]byte, headerSize+4)
	copy(header[:headerSize], e.Name)
	binary.LittleEndian.PutUint32(header[headerSize:], uint32(count))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	// Triangles are written in chunks to keep the number of writes low
	const chunkSize = 4096
	scale := e.scale()
	buf := make([]byte, min(count, chunkSize)*triangleSize)

	for i := 0; i < count; i += chunkSize {
		end := min(i+chunkSize, count)
		chunk := buf[:(end-i)*triangleSize]

		for j := i; j < end; j++ {
			tri := m.Triangle(j)
			out := chunk[(j-i)*triangleSize:]

			putVertex(out[0:12], Normal(tri), 1)
			putVertex(out[12:24], tri[0], scale)
			putVertex(out[24:36], tri[1], scale)
			putVertex(out[36:48], tri[2], scale)
			binary.LittleEndian.PutUint16(out[48:50], 0)
		}

		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

func putVertex(b []byte, v mesh.Vertex, scale float64) {
	binary.LittleEndian.PutUint32(b[0:4], math.Float32bits(float32(v.X*scale)))
	binary.LittleEndian.PutUint32(b[4:8], math.Float32bits(float32(v.Y*scale)))
	binary.LittleEndian.PutUint32(b[8:12], math.Float32bits(float32(v.Z*scale)))
}

func (e Encoder) writeASCII(w io.Writer, m Mesh) error {
	bw := bufio.NewWriter(w)
	scale := e.scale()

	fmt.Fprintf(bw, "solid %s\n", e.Name)
	for i := range m.FaceCount() {
		tri := m.Triangle(i)
		n := Normal(tri)

		fmt.Fprintf(bw, "  facet normal %e %e %e\n", n.X, n.Y, n.Z)
		bw.WriteString("    outer loop\n")
		for _, v := range tri {
			fmt.Fprintf(bw, "      vertex %e %e %e\n", v.X*scale, v.Y*scale, v.Z*scale)
		}
		bw.WriteString("    endloop\n")
		bw.WriteString("  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", e.Name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
