// SPDX-License-Identifier: EPL-2.0

package record

import "github.com/ik5/phonostl/mesh"

// Shell holds the rings of the record body that do not depend on audio.
type Shell struct {
	PerimeterUpper mesh.Ring
	PerimeterLower mesh.Ring
	HoleUpper      mesh.Ring
	HoleLower      mesh.Ring
}

// buildShell draws the bottom, the outer wall and the center hole wall,
// leaving the top open. The upper perimeter becomes the open edge.
func (b *Builder) buildShell(st State) (State, Shell) {
	p := b.params
	steps := p.Steps()
	outer := p.Diameter / 2
	hole := p.InnerHoleDiameter / 2

	sh := Shell{
		PerimeterUpper: make(mesh.Ring, 0, steps+1),
		PerimeterLower: make(mesh.Ring, 0, steps+1),
		HoleUpper:      make(mesh.Ring, 0, steps+1),
		HoleLower:      make(mesh.Ring, 0, steps+1),
	}

	for k := range steps {
		theta := p.Angle(k)
		sh.PerimeterUpper = append(sh.PerimeterUpper, b.rings.Point(outer, theta, p.RecordHeight))
		sh.PerimeterLower = append(sh.PerimeterLower, b.rings.Point(outer, theta, p.RecordFloor))
		sh.HoleUpper = append(sh.HoleUpper, b.rings.Point(hole, theta, p.RecordHeight))
		sh.HoleLower = append(sh.HoleLower, b.rings.Point(hole, theta, p.RecordFloor))
	}

	sh.PerimeterUpper = sh.PerimeterUpper.Close()
	sh.PerimeterLower = sh.PerimeterLower.Close()
	sh.HoleUpper = sh.HoleUpper.Close()
	sh.HoleLower = sh.HoleLower.Close()

	b.stitch(st, sh.HoleUpper, sh.HoleLower)
	b.stitch(st, sh.HoleLower, sh.PerimeterLower)
	b.stitch(st, sh.PerimeterLower, sh.PerimeterUpper)

	st.LastEdge = sh.PerimeterUpper
	st.Phase = PhaseStartCap
	return st, sh
}
