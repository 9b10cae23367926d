// SPDX-License-Identifier: EPL-2.0

package phonostl

import (
	"fmt"
	"io"
	"time"

	"github.com/ik5/phonostl/audio"
	"github.com/ik5/phonostl/formats/aiff"
	"github.com/ik5/phonostl/formats/mp3"
	"github.com/ik5/phonostl/formats/vorbis"
	"github.com/ik5/phonostl/formats/wav"
	"github.com/ik5/phonostl/mesh"
	"github.com/ik5/phonostl/record"
	"github.com/ik5/phonostl/stl"
)

// DefaultRegistry returns a registry with every bundled decoder, keyed by
// file extension.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	return r
}

// LoadOptions controls how a decoded stream becomes a waveform.
type LoadOptions struct {
	// Mode and Channel pick how channels fold to mono.
	Mode    audio.ChannelMode
	Channel int
	// Resample converts the stream to the record's sampling rate. Without
	// it the waveform keeps the rate of the source.
	Resample bool
}

// Waveform is mono audio scaled for the groove.
type Waveform struct {
	// Samples peak at Amplitude.
	Samples    []float64
	SampleRate int
	Amplitude  float64
}

// Duration is the playing time of the waveform.
func (w Waveform) Duration() time.Duration {
	if w.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(w.Samples)) * time.Second / time.Duration(w.SampleRate)
}

// WriteWAV stores the waveform, rescaled to full range, as 16-bit mono PCM.
// A waveform with zero amplitude falls back to its own peak, and silence is
// written as silence.
func (w Waveform) WriteWAV(dst io.WriteSeeker) error {
	scale := w.Amplitude
	if !(scale > 0) {
		scale = audio.Peak(w.Samples)
	}

	scaled := make([]float64, len(w.Samples))
	for i, v := range w.Samples {
		if scale > 0 {
			scaled[i] = v / scale
		}
	}
	return wav.WriteMono16(dst, w.SampleRate, scaled)
}

// LoadSamples drains src through the resample and mono stages and scales the
// result so its peak equals p.Amplitude. src is not closed.
func LoadSamples(src audio.Source, p record.Params, opts LoadOptions) (Waveform, error) {
	stream := src
	if opts.Resample && src.SampleRate() != int(p.SamplingRate) {
		stream = audio.NewResampler(stream, int(p.SamplingRate))
	}

	stream, err := audio.ToMono(stream, opts.Mode, opts.Channel)
	if err != nil {
		return Waveform{}, err
	}

	samples, err := audio.Collect(stream)
	if err != nil {
		return Waveform{}, fmt.Errorf("load audio: %w", err)
	}

	if err := audio.Normalize(samples, p.Amplitude); err != nil {
		return Waveform{}, fmt.Errorf("load audio: %w", err)
	}

	return Waveform{
		Samples:    samples,
		SampleRate: stream.SampleRate(),
		Amplitude:  p.Amplitude,
	}, nil
}

// Generate builds the record mesh for samples, which must already be scaled
// to p.Amplitude.
func Generate(samples []float64, p record.Params, opts ...record.Option) (*mesh.Mesh, record.Stats, error) {
	b, err := record.NewBuilder(p, opts...)
	if err != nil {
		return nil, record.Stats{}, err
	}

	m, stats := b.Build(samples)
	if err := m.Validate(); err != nil {
		return nil, stats, fmt.Errorf("generate: %w", err)
	}
	return m, stats, nil
}

// WriteSTL serializes m in the given format.
func WriteSTL(w io.Writer, m *mesh.Mesh, format stl.Format, name string) error {
	return stl.Encoder{Format: format, Name: name}.Encode(w, m)
}
