// SPDX-License-Identifier: EPL-2.0

package stl

import "errors"

var (
	// ErrEmptyMesh indicates a mesh without triangles.
	ErrEmptyMesh = errors.New("mesh has no triangles")
	// ErrTooManyFaces indicates more triangles than a binary STL can count.
	ErrTooManyFaces = errors.New("too many triangles for binary STL")
	// ErrUnknownFormat indicates an unsupported output format name.
	ErrUnknownFormat = errors.New("unknown STL format")
)
