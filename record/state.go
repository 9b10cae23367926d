// SPDX-License-Identifier: EPL-2.0

package record

import "github.com/ik5/phonostl/mesh"

// Phase is a step of record construction.
type Phase int

const (
	PhaseShell Phase = iota
	PhaseStartCap
	PhaseSpiral
	PhasePenultimate
	PhaseLockedCircle
	PhaseCloseToHole
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseShell:
		return "shell"
	case PhaseStartCap:
		return "start-cap"
	case PhaseSpiral:
		return "spiral"
	case PhasePenultimate:
		return "penultimate"
	case PhaseLockedCircle:
		return "locked-circle"
	case PhaseCloseToHole:
		return "close-to-hole"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// State is carried from one construction step to the next.
type State struct {
	Phase Phase

	Mesh   *mesh.Mesh
	Cursor *SampleCursor

	// Radius is the outer bottom edge of the groove at the next angular step.
	Radius float64
	// LastEdge is the open ring the next piece of surface is stitched to.
	LastEdge mesh.Ring
	// Revolution counts completed ordinary spiral revolutions.
	Revolution int
	// Terminal is set once the spiral gave way to the locked groove.
	Terminal bool
}

// Stats summarizes a finished build.
type Stats struct {
	Revolutions     int
	Vertices        int
	Faces           int
	Truncated       int
	SamplesConsumed int
	FinalRadius     float64
}
