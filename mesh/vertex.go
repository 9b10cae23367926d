// SPDX-License-Identifier: EPL-2.0

package mesh

import "math"

// Vertex is a point in space, in inches.
type Vertex struct {
	X, Y, Z float64
}

// Sub returns v - o.
func (v Vertex) Sub(o Vertex) Vertex {
	return Vertex{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Cross returns the cross product v × o.
func (v Vertex) Cross(o Vertex) Vertex {
	return Vertex{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the euclidean length of v.
func (v Vertex) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length, or the zero vector when v has no length.
func (v Vertex) Normalize() Vertex {
	l := v.Length()
	if l == 0 {
		return Vertex{}
	}
	return Vertex{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// Face is a triangle given as three vertex indices. Order defines winding.
type Face [3]int

// Ring is an ordered run of points forming one edge of the solid.
// Closed rings repeat their first point as the last one.
type Ring []Vertex

// Close appends the first point of r to its end. Empty rings are returned as is.
func (r Ring) Close() Ring {
	if len(r) == 0 {
		return r
	}
	return append(r, r[0])
}

// Closed reports whether the last point of r equals the first.
func (r Ring) Closed() bool {
	return len(r) > 1 && r[0] == r[len(r)-1]
}
