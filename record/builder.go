// SPDX-License-Identifier: EPL-2.0

package record

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ik5/phonostl/mesh"
)

// progressEvery is how many revolutions pass between info level progress lines.
const progressEvery = 100

// Builder turns a normalized waveform into a record mesh.
type Builder struct {
	params Params
	rings  RingBuilder
	log    *zap.Logger

	// trace, when set, sees every ring that becomes part of the mesh.
	trace func(Phase, Edge, mesh.Ring)
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger makes the builder report progress to log.
func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// NewBuilder validates p and returns a Builder for it.
func NewBuilder(p Params, opts ...Option) (*Builder, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	b := &Builder{
		params: p,
		rings:  NewRingBuilder(p),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Params returns the parameters the builder was created with.
func (b *Builder) Params() Params { return b.params }

// Build constructs the whole record: body, start cap, spiral groove for as
// long as the waveform lasts, and the locked groove closing onto the center
// hole. samples must already be normalized to the groove amplitude.
//
// Build never fails: missing audio is drawn as silence.
func (b *Builder) Build(samples []float64) (*mesh.Mesh, Stats) {
	p := b.params
	thetaIter := p.ThetaIter()
	total := p.Revolutions(len(samples))

	if maxRev := p.MaxRevolutions(); total > maxRev {
		b.log.Warn("audio runs past the inner groove radius",
			zap.Int("revolutions", total),
			zap.Int("max_revolutions", maxRev),
			zap.Float64("capacity_seconds", p.Capacity()),
		)
	}

	st := State{
		Phase:  PhaseShell,
		Mesh:   mesh.NewWithCapacity(b.estimateVertices(total)),
		Cursor: NewSampleCursor(samples, p.DownsampleFactor),
		Radius: p.OuterRadius,
	}

	st, shell := b.buildShell(st)
	b.log.Debug("record drawn, starting grooves", zap.Int("steps_per_revolution", p.Steps()))

	st, stop := b.beginStartCap(st)

	for st.Cursor.HasRevolution(thetaIter) {
		st = b.spiralRevolution(st)
		if st.Revolution == 1 {
			b.finishStartCap(st, stop, shell.PerimeterUpper[0])
		}

		b.log.Debug("groove drawn",
			zap.Int("groove", st.Revolution),
			zap.Int("total", total),
			zap.Float64("radius", st.Radius),
		)
		if st.Revolution%progressEvery == 0 {
			b.log.Info(fmt.Sprintf("%d of %d grooves drawn", st.Revolution, total))
		}
	}

	st.Phase = PhasePenultimate
	st = b.penultimate(st)

	st.Phase = PhaseLockedCircle
	st = b.lockedCircle(st)

	st.Phase = PhaseCloseToHole
	b.stitch(st, st.LastEdge, shell.HoleUpper)
	st.Phase = PhaseDone

	stats := Stats{
		Revolutions:     st.Revolution,
		Vertices:        st.Mesh.VertexCount(),
		Faces:           st.Mesh.FaceCount(),
		Truncated:       st.Mesh.Truncated(),
		SamplesConsumed: st.Cursor.Position(),
		FinalRadius:     st.Radius,
	}

	b.log.Info("record built",
		zap.Int("revolutions", stats.Revolutions),
		zap.Int("vertices", stats.Vertices),
		zap.Int("faces", stats.Faces),
		zap.Float64("final_radius", stats.FinalRadius),
	)
	if stats.Truncated > 0 {
		b.log.Warn("stitched rings of unequal length", zap.Int("dropped_points", stats.Truncated))
	}

	return st.Mesh, stats
}

func (b *Builder) stitch(st State, a, c mesh.Ring) {
	if len(a) != len(c) {
		b.log.Debug("ring length mismatch",
			zap.Stringer("phase", st.Phase),
			zap.Int("a", len(a)),
			zap.Int("b", len(c)),
		)
	}
	st.Mesh.Stitch(a, c)
}

func (b *Builder) emit(phase Phase, edge Edge, r mesh.Ring) {
	if b.trace != nil {
		b.trace(phase, edge, r)
	}
}

// estimateVertices sizes the mesh for the shell, the given number of
// spiral revolutions and the locked groove.
func (b *Builder) estimateVertices(revolutions int) int {
	perStitch := 2 * (b.params.Steps() + 1)
	return (3 + 3*(revolutions+2) + 2) * perStitch
}
