// SPDX-License-Identifier: EPL-2.0

// Package mesh provides an append-only indexed triangle mesh.
//
// Vertices are stored once and referenced by index from faces. The only
// mutation primitive is Stitch, which joins two parallel rings of points
// into a strip of triangles:
//
//	m := mesh.New()
//	m.Stitch(lower, upper)
//
// Nothing is ever removed or rewritten, so an index handed out by the mesh
// stays valid for its whole lifetime.
//
// # Winding
//
// For rings A and B stitched as Stitch(A, B), vertices are appended as
// interleaved pairs A0, B0, A1, B1, ... and every segment i produces the
// triangles (A[i-1], B[i-1], A[i]) and (B[i-1], A[i], B[i]). Serializers must
// keep that order.
package mesh
