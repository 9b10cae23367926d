// SPDX-License-Identifier: EPL-2.0

package record

import "github.com/ik5/phonostl/mesh"

// beginStartCap closes the front of the very first groove at theta = 0 with
// a small patch between its upper and lower edges. The returned upper stop is
// needed again by finishStartCap.
func (b *Builder) beginStartCap(st State) (State, mesh.Ring) {
	p := b.params
	s := b.rings.Section(st.Radius, 0, p.GrooveHeight(st.Cursor.First()))

	upper := mesh.Ring{s.OuterUpper, s.InnerUpper}
	lower := mesh.Ring{s.OuterLower, s.InnerLower}
	b.emit(st.Phase, Stop, upper)
	b.stitch(st, upper, lower)

	st.Phase = PhaseSpiral
	return st, upper
}

// finishStartCap fills the wedge left between the record's perimeter at
// theta = 0 and the outer edge of the first groove after one revolution.
func (b *Builder) finishStartCap(st State, upper mesh.Ring, perimeter mesh.Vertex) {
	p := b.params
	edge := b.rings.Point(st.Radius+p.BevelOffset(), 0, p.RecordHeight)

	stop := mesh.Ring{perimeter, edge}
	b.emit(PhaseStartCap, Stop, stop)
	b.stitch(st, upper, stop)
}
