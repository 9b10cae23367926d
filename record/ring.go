// SPDX-License-Identifier: EPL-2.0

package record

import (
	"math"

	"github.com/ik5/phonostl/mesh"
)

// Edge names one edge of the groove cross-section.
type Edge int

const (
	OuterUpper Edge = iota // top of the outer wall, at record height
	OuterLower             // bottom of the outer wall
	InnerLower             // bottom of the inner wall
	InnerUpper             // top of the inner wall, at record height
	Ridge                  // crest between the last spiral and the locked groove
	Stop                   // start cap patch
)

func (e Edge) String() string {
	switch e {
	case OuterUpper:
		return "outer-upper"
	case OuterLower:
		return "outer-lower"
	case InnerLower:
		return "inner-lower"
	case InnerUpper:
		return "inner-upper"
	case Ridge:
		return "ridge"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Section is one angular sample of the groove cross-section.
type Section struct {
	OuterUpper mesh.Vertex
	OuterLower mesh.Vertex
	InnerLower mesh.Vertex
	InnerUpper mesh.Vertex
}

// RingBuilder places groove points on the record.
type RingBuilder struct {
	p Params
}

// NewRingBuilder returns a RingBuilder for p.
func NewRingBuilder(p Params) RingBuilder {
	return RingBuilder{p: p}
}

// Point converts the polar position (radius, theta) around the record's
// center to a vertex at height z.
func (b RingBuilder) Point(radius, theta, z float64) mesh.Vertex {
	c := b.p.Center()
	sin, cos := math.Sincos(theta)
	return mesh.Vertex{X: c + radius*cos, Y: c + radius*sin, Z: z}
}

// Section returns the four cross-section points of a groove whose outer
// bottom edge sits at radius, with its floor at height.
func (b RingBuilder) Section(radius, theta, height float64) Section {
	top := b.p.RecordHeight
	bevel := b.p.BevelOffset()
	width := b.p.GrooveWidth

	return Section{
		OuterUpper: b.Point(radius+bevel, theta, top),
		OuterLower: b.Point(radius, theta, height),
		InnerLower: b.Point(radius-width, theta, height),
		InnerUpper: b.Point(radius-width-bevel, theta, top),
	}
}

// grooveRings collects the four groove edges of one revolution.
type grooveRings struct {
	outerUpper mesh.Ring
	outerLower mesh.Ring
	innerLower mesh.Ring
	innerUpper mesh.Ring

	withUpper bool // outer-upper is only needed against the record's perimeter
}

func newGrooveRings(capacity int, withUpper bool) *grooveRings {
	g := &grooveRings{
		outerLower: make(mesh.Ring, 0, capacity),
		innerLower: make(mesh.Ring, 0, capacity),
		innerUpper: make(mesh.Ring, 0, capacity),
		withUpper:  withUpper,
	}
	if withUpper {
		g.outerUpper = make(mesh.Ring, 0, capacity)
	}
	return g
}

func (g *grooveRings) add(s Section) {
	if g.withUpper {
		g.outerUpper = append(g.outerUpper, s.OuterUpper)
	}
	g.outerLower = append(g.outerLower, s.OuterLower)
	g.innerLower = append(g.innerLower, s.InnerLower)
	g.innerUpper = append(g.innerUpper, s.InnerUpper)
}
