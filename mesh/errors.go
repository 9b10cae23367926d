// SPDX-License-Identifier: EPL-2.0

package mesh

import "errors"

var (
	// ErrFaceOutOfRange indicates a face references a vertex that does not exist.
	ErrFaceOutOfRange = errors.New("face references vertex out of range")
	// ErrDegenerateFace indicates a face that uses the same vertex index twice.
	ErrDegenerateFace = errors.New("face repeats a vertex index")
)
