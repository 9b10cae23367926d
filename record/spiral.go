// SPDX-License-Identifier: EPL-2.0

package record

// radiusAt is the groove radius k angular steps after start.
func (b *Builder) radiusAt(start float64, k int) float64 {
	return start - float64(k)*b.params.RadiusStep()
}

// spiralRevolution draws one full turn of audio modulated groove, moving
// inward by one pitch, and stitches it to the open edge.
func (b *Builder) spiralRevolution(st State) State {
	p := b.params
	steps := p.Steps()
	start := st.Radius

	g := newGrooveRings(steps+1, st.Revolution == 0)
	for k := range steps {
		height := p.GrooveHeight(st.Cursor.Next())
		g.add(b.rings.Section(b.radiusAt(start, k), p.Angle(k), height))
	}

	// close the loop at theta = 0 without consuming a sample
	st.Radius = b.radiusAt(start, steps)
	g.add(b.rings.Section(st.Radius, 0, p.GrooveHeight(st.Cursor.Peek())))

	st = b.connect(st, g)
	st.Revolution++
	return st
}

// connect stitches a finished revolution to the open edge and leaves its
// inner upper edge open for the next one.
func (b *Builder) connect(st State, g *grooveRings) State {
	if g.withUpper {
		// first groove joins the record's perimeter
		b.emit(st.Phase, OuterUpper, g.outerUpper)
		b.stitch(st, st.LastEdge, g.outerUpper)
		b.stitch(st, g.outerUpper, g.outerLower)
	} else {
		b.stitch(st, st.LastEdge, g.outerLower)
	}

	b.emit(st.Phase, OuterLower, g.outerLower)
	b.emit(st.Phase, InnerLower, g.innerLower)
	b.emit(st.Phase, InnerUpper, g.innerUpper)

	b.stitch(st, g.outerLower, g.innerLower)
	b.stitch(st, g.innerLower, g.innerUpper)

	st.LastEdge = g.innerUpper
	return st
}
