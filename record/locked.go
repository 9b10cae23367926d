// SPDX-License-Identifier: EPL-2.0

package record

import (
	"math"

	"github.com/ik5/phonostl/mesh"
)

// MergeAngle is the angle at which the ridge between the last spiral groove
// and the locked groove has flattened out.
func (p Params) MergeAngle() float64 {
	return 2 * math.Pi * (0.5 * p.Amplitude) / (p.Amplitude + p.GrooveWidth)
}

// RidgeStep is how much the ridge drops per angular step.
func (p Params) RidgeStep() float64 {
	change := p.MergeAngle()
	if change <= 0 {
		return p.RecordHeight
	}
	return p.RecordHeight * p.AngularStep() / change
}

// RidgeHeight is the ridge crest height at theta. It falls linearly from
// the record's height at 0 to 0 at MergeAngle.
func (p Params) RidgeHeight(theta float64) float64 {
	change := p.MergeAngle()
	if change <= 0 {
		if theta <= 0 {
			return p.RecordHeight
		}
		return 0
	}
	return p.RecordHeight * (1 - theta/change)
}

// penultimate draws the last spiral turn. Up to MergeAngle it keeps the
// audio groove with a falling ridge on its inside; past that the groove runs
// silent and the ridge folds onto the groove floor, so the next circular
// groove merges with this one.
func (b *Builder) penultimate(st State) State {
	p := b.params
	steps := p.Steps()
	start := st.Radius
	change := p.MergeAngle()
	base := p.GrooveBase()
	inner := p.GrooveWidth + p.BevelOffset()

	g := newGrooveRings(steps+1, false)
	ridge := make(mesh.Ring, 0, steps+1)

	k := 0
	for ; k < steps && p.Angle(k) <= change; k++ {
		theta := p.Angle(k)
		r := b.radiusAt(start, k)
		ridge = append(ridge, b.rings.Point(r-inner, theta, p.RidgeHeight(theta)))
		g.add(b.rings.Section(r, theta, p.GrooveHeight(st.Cursor.Next())))
	}

	// seal the modulated part at the merge point
	theta := p.Angle(k)
	r := b.radiusAt(start, k)
	g.outerLower = append(g.outerLower, b.rings.Point(r, theta, base))
	g.innerLower = append(g.innerLower, b.rings.Point(r-p.GrooveWidth, theta, base))
	ridge = append(ridge, b.rings.Point(r-inner, theta, base))

	b.emit(st.Phase, InnerLower, g.innerLower)
	b.stitch(st, g.outerLower, g.innerLower)
	b.stitch(st, g.innerLower, ridge)

	// silent tail after the merge point, closing at theta = 0
	if k < steps {
		for k++; k < steps; k++ {
			theta := p.Angle(k)
			r := b.radiusAt(start, k)
			g.outerLower = append(g.outerLower, b.rings.Point(r, theta, base))
			ridge = append(ridge, b.rings.Point(r, theta, base))
		}
		r := b.radiusAt(start, steps)
		g.outerLower = append(g.outerLower, b.rings.Point(r, 0, base))
		ridge = append(ridge, b.rings.Point(r, 0, base))
	}

	b.emit(st.Phase, OuterLower, g.outerLower)
	b.emit(st.Phase, Ridge, ridge)
	b.stitch(st, st.LastEdge, g.outerLower)

	st.Radius = b.radiusAt(start, steps)
	st.LastEdge = ridge
	st.Terminal = true
	return st
}

// lockedCircle draws the final, perfectly circular groove that carries no
// audio. It never consumes samples.
func (b *Builder) lockedCircle(st State) State {
	p := b.params
	steps := p.Steps()
	base := p.GrooveBase()

	g := newGrooveRings(steps+1, false)
	for k := range steps {
		g.add(b.rings.Section(st.Radius, p.Angle(k), base))
	}
	g.add(b.rings.Section(st.Radius, 0, base))

	return b.connect(st, g)
}
