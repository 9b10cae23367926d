// SPDX-License-Identifier: EPL-2.0

// Package stl writes triangle meshes as STL files.
//
// Both the binary and the ASCII flavour are supported. Facet normals are
// derived from each triangle's winding, so the vertex order of the mesh is
// written unchanged:
//
//	f, _ := os.Create("record.stl")
//	defer f.Close()
//	err := stl.WriteBinary(f, m, "record")
//
// Coordinates are written as they are stored, optionally multiplied by
// Encoder.Scale (25.4 turns inches into millimetres).
package stl
