// SPDX-License-Identifier: EPL-2.0

package record

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ik5/phonostl/mesh"
)

type tracedRing struct {
	phase Phase
	edge  Edge
	ring  mesh.Ring
}

// smallParams keeps the default record geometry but uses 100 angular steps
// per revolution and no downsampling.
func smallParams() Params {
	p := DefaultParams()
	p.SamplingRate = 100
	p.RPM = 60
	p.DownsampleFactor = 1
	return p
}

func newTracedBuilder(t *testing.T, p Params, opts ...Option) (*Builder, *[]tracedRing) {
	t.Helper()

	b, err := NewBuilder(p, opts...)
	require.NoError(t, err)

	var rings []tracedRing
	b.trace = func(phase Phase, edge Edge, r mesh.Ring) {
		rings = append(rings, tracedRing{phase: phase, edge: edge, ring: r})
	}
	return b, &rings
}

// ramp returns n samples rising linearly from -amplitude to amplitude.
func ramp(n int, amplitude float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		v := -1 + 2*float64(i)/float64(n-1)
		out[i] = v * amplitude
	}
	return out
}

// readsBeforeMerge counts the angular steps at or below the merge angle.
func readsBeforeMerge(p Params) int {
	n := 0
	for k := 0; k < p.Steps() && p.Angle(k) <= p.MergeAngle(); k++ {
		n++
	}
	return n
}

func TestBuild_SilenceShorterThanOneRevolution(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	p.Amplitude = 0.001
	b, rings := newTracedBuilder(t, p)

	m, stats := b.Build(make([]float64, 200))

	require.NoError(t, m.Validate())
	assert.False(t, m.IsEmpty())
	assert.Zero(t, stats.Revolutions)
	assert.Zero(t, stats.Truncated)
	assert.Equal(t, readsBeforeMerge(p), stats.SamplesConsumed)

	// the shell is drawn first, starting with the center hole
	rb := NewRingBuilder(p)
	assert.Equal(t, rb.Point(p.InnerHoleDiameter/2, 0, p.RecordHeight), m.Vertices()[0])
	assert.Equal(t, rb.Point(p.InnerHoleDiameter/2, 0, p.RecordFloor), m.Vertices()[1])

	// without a full revolution the start cap is never finished
	stops := 0
	for _, r := range *rings {
		if r.edge == Stop {
			stops++
		}
		assert.NotEqual(t, PhaseSpiral, r.phase)
	}
	assert.Equal(t, 1, stops)
}

func TestBuild_RingLengths(t *testing.T) {
	t.Parallel()

	p := smallParams()
	b, rings := newTracedBuilder(t, p)

	_, stats := b.Build(make([]float64, 1000))
	require.Equal(t, 10, stats.Revolutions)

	counts := map[Edge]int{}
	for _, r := range *rings {
		if r.phase != PhaseSpiral {
			continue
		}
		counts[r.edge]++
		if r.edge != Stop {
			assert.Len(t, r.ring, p.Steps()+1, "%s ring", r.edge)
		}
	}

	assert.Equal(t, 1, counts[OuterUpper])
	assert.Equal(t, 10, counts[OuterLower])
	assert.Equal(t, 10, counts[InnerLower])
	assert.Equal(t, 10, counts[InnerUpper])
}

func TestBuild_GrooveHeightsStayInRange(t *testing.T) {
	t.Parallel()

	p := smallParams()
	b, rings := newTracedBuilder(t, p)

	_, stats := b.Build(ramp(4000, p.Amplitude))
	require.Positive(t, stats.Revolutions)

	low := p.RecordHeight - p.Depth - 2*p.Amplitude
	high := p.RecordHeight - p.Depth
	const eps = 1e-12

	checked := 0
	for _, r := range *rings {
		if r.edge != OuterLower && r.edge != InnerLower {
			continue
		}
		for _, v := range r.ring {
			assert.GreaterOrEqual(t, v.Z, low-eps)
			assert.LessOrEqual(t, v.Z, high+eps)
			checked++
		}
	}
	assert.Positive(t, checked)
}

func TestBuild_FaceCountMatchesStitches(t *testing.T) {
	t.Parallel()

	p := smallParams()
	b, err := NewBuilder(p)
	require.NoError(t, err)

	m, stats := b.Build(ramp(1500, p.Amplitude))

	require.NoError(t, m.Validate())
	require.Zero(t, stats.Truncated)
	// every stitch of two n-point rings adds 2n vertices and 2(n-1) faces
	assert.Equal(t, m.VertexCount()-2*m.Stitches(), m.FaceCount())
	assert.Equal(t, stats.Faces, m.FaceCount())
	assert.Equal(t, stats.Vertices, m.VertexCount())
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	p := smallParams()
	samples := ramp(2500, p.Amplitude)

	b1, err := NewBuilder(p)
	require.NoError(t, err)
	b2, err := NewBuilder(p)
	require.NoError(t, err)

	m1, s1 := b1.Build(samples)
	m2, s2 := b2.Build(samples)

	assert.Equal(t, s1, s2)
	assert.Equal(t, m1.Vertices(), m2.Vertices())
	assert.Equal(t, m1.Faces(), m2.Faces())
}

func TestBuild_SamplesConsumed(t *testing.T) {
	t.Parallel()

	p := smallParams()
	b, err := NewBuilder(p)
	require.NoError(t, err)

	_, stats := b.Build(make([]float64, 1000))

	assert.Equal(t, 10, stats.Revolutions)
	assert.Equal(t, 10*p.Steps()+readsBeforeMerge(p), stats.SamplesConsumed)
}

func TestBuild_StartCapFinishedAfterFirstRevolution(t *testing.T) {
	t.Parallel()

	p := smallParams()
	b, rings := newTracedBuilder(t, p)
	_, _ = b.Build(make([]float64, 300))

	var stops []mesh.Ring
	for _, r := range *rings {
		if r.edge == Stop {
			stops = append(stops, r.ring)
		}
	}
	require.Len(t, stops, 2)

	rb := NewRingBuilder(p)
	assert.Equal(t, rb.Point(p.Diameter/2, 0, p.RecordHeight), stops[1][0])
	assert.Equal(t, p.RecordHeight, stops[1][1].Z)
}

func TestBuild_RidgeFlattens(t *testing.T) {
	t.Parallel()

	p := smallParams()
	b, rings := newTracedBuilder(t, p)
	_, _ = b.Build(make([]float64, 500))

	var ridge mesh.Ring
	for _, r := range *rings {
		if r.edge == Ridge {
			ridge = r.ring
		}
	}
	require.Len(t, ridge, p.Steps()+1)

	merge := readsBeforeMerge(p)
	assert.Equal(t, p.RecordHeight, ridge[0].Z)
	for k := 1; k < merge; k++ {
		assert.Less(t, ridge[k].Z, ridge[k-1].Z)
	}
	for _, v := range ridge[merge:] {
		assert.Equal(t, p.GrooveBase(), v.Z)
	}
}

// angleOf is the polar angle of v around the record's center.
func angleOf(p Params, v mesh.Vertex) float64 {
	c := p.Center()
	return math.Atan2(v.Y-c, v.X-c)
}

func TestBuild_PenultimateTailFollowsOpenEdge(t *testing.T) {
	t.Parallel()

	p := smallParams()
	b, rings := newTracedBuilder(t, p)
	_, stats := b.Build(make([]float64, 500))
	require.Positive(t, stats.Revolutions)

	var lastEdge, outer, ridge mesh.Ring
	for _, r := range *rings {
		switch {
		case r.phase == PhaseSpiral && r.edge == InnerUpper:
			lastEdge = r.ring
		case r.phase == PhasePenultimate && r.edge == OuterLower:
			outer = r.ring
		case r.phase == PhasePenultimate && r.edge == Ridge:
			ridge = r.ring
		}
	}
	require.Len(t, outer, p.Steps()+1)
	require.Len(t, ridge, p.Steps()+1)
	require.Len(t, lastEdge, p.Steps()+1)

	seal := readsBeforeMerge(p)
	assert.NotEqual(t, outer[seal], outer[seal+1])
	assert.NotEqual(t, ridge[seal], ridge[seal+1])

	for i := 1; i < len(outer); i++ {
		assert.NotEqual(t, outer[i-1], outer[i], "outer lower %d", i)
		assert.NotEqual(t, ridge[i-1], ridge[i], "ridge %d", i)

		d := math.Remainder(angleOf(p, outer[i])-angleOf(p, lastEdge[i]), 2*math.Pi)
		assert.InDelta(t, 0, d, 1e-9, "outer lower %d lags the open edge", i)
	}

	// both rings end a full turn later, at the final radius
	c := mesh.Vertex{X: p.Center(), Y: p.Center(), Z: p.GrooveBase()}
	for _, last := range []mesh.Vertex{outer[len(outer)-1], ridge[len(ridge)-1]} {
		assert.InDelta(t, 0, math.Remainder(angleOf(p, last), 2*math.Pi), 1e-9)
		assert.InDelta(t, stats.FinalRadius, last.Sub(c).Length(), 1e-9)
	}
}

func TestBuild_SpiralMovesInward(t *testing.T) {
	t.Parallel()

	p := smallParams()
	b, rings := newTracedBuilder(t, p)
	_, stats := b.Build(make([]float64, 800))

	// every spiral turn and the penultimate one move one pitch inward
	want := p.OuterRadius - float64(stats.Revolutions+1)*p.Pitch()
	assert.InDelta(t, want, stats.FinalRadius, 1e-9)

	c := p.Center()
	prev := math.Inf(1)
	for _, r := range *rings {
		if r.phase != PhaseSpiral || r.edge != OuterLower {
			continue
		}
		first, last := r.ring[0], r.ring[len(r.ring)-1]
		assert.InDelta(t, c, last.Y, 1e-12, "revolution closes at angle zero")
		assert.Less(t, last.X, first.X)
		assert.Less(t, first.X, prev)
		prev = first.X
	}
}

func TestBuild_LockedCircleIsRound(t *testing.T) {
	t.Parallel()

	p := smallParams()
	b, rings := newTracedBuilder(t, p)
	_, stats := b.Build(make([]float64, 400))

	var circle mesh.Ring
	for _, r := range *rings {
		if r.phase == PhaseLockedCircle && r.edge == OuterLower {
			circle = r.ring
		}
	}
	require.Len(t, circle, p.Steps()+1)
	require.True(t, circle.Closed())

	c := mesh.Vertex{X: p.Center(), Y: p.Center(), Z: p.GrooveBase()}
	for _, v := range circle {
		assert.InDelta(t, stats.FinalRadius, v.Sub(c).Length(), 1e-9)
	}
}

func TestBuild_Logging(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	p := smallParams()
	b, err := NewBuilder(p, WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, stats := b.Build(make([]float64, 10050))
	require.Equal(t, 100, stats.Revolutions)

	assert.Equal(t, 1, logs.FilterMessage("100 of 100 grooves drawn").Len())
	assert.Equal(t, 1, logs.FilterMessage("record built").Len())
	assert.Zero(t, logs.FilterMessage("audio runs past the inner groove radius").Len())
}

func TestBuild_WarnsWhenAudioDoesNotFit(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	p := smallParams()
	p.InnerRadius = p.OuterRadius - 2*p.Pitch()

	b, err := NewBuilder(p, WithLogger(zap.New(core)))
	require.NoError(t, err)
	_, _ = b.Build(make([]float64, 1000))

	entries := logs.FilterMessage("audio runs past the inner groove radius").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(10), entries[0].ContextMap()["revolutions"])
}

func TestPhase_String(t *testing.T) {
	t.Parallel()

	tests := map[Phase]string{
		PhaseShell:        "shell",
		PhaseStartCap:     "start-cap",
		PhaseSpiral:       "spiral",
		PhasePenultimate:  "penultimate",
		PhaseLockedCircle: "locked-circle",
		PhaseCloseToHole:  "close-to-hole",
		PhaseDone:         "done",
		Phase(99):         "unknown",
	}
	for phase, want := range tests {
		assert.Equal(t, want, phase.String())
	}

	assert.Equal(t, "outer-upper", OuterUpper.String())
	assert.Equal(t, "ridge", Ridge.String())
	assert.Equal(t, "unknown", Edge(-1).String())
}
