// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer decoders to float sample streams.
package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// ErrBitDepth is returned for sample widths other than 8, 16, 24 or 32 bits.
var ErrBitDepth = errors.New("unsupported bit depth")

// Reader is the part of the go-audio wav and aiff decoders a Source needs.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads integer PCM from a Reader and scales it to [-1, 1).
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	scale      float32
	bias       int
	buf        *goaudio.IntBuffer
}

// Option tunes a Source.
type Option func(*Source)

// Unsigned marks samples as unsigned, centred on half the range. 8-bit WAV
// stores samples this way.
func Unsigned() Option {
	return func(s *Source) {
		s.bias = int(s.scale)
	}
}

// NewSource wraps dec, whose samples are bitDepth wide.
func NewSource(dec Reader, bitDepth int, opts ...Option) (*Source, error) {
	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, fmt.Errorf("pcm format %+v: %w", format, io.ErrUnexpectedEOF)
	}

	scale, err := FullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	s := &Source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      scale,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// FullScale is the magnitude of the most negative sample at bitDepth.
func FullScale(bitDepth int) (float32, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
		return float32(uint64(1) << (bitDepth - 1)), nil
	default:
		return 0, fmt.Errorf("%d bits: %w", bitDepth, ErrBitDepth)
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v-s.bias) / s.scale
	}

	if n < len(dst) || errors.Is(err, io.EOF) {
		return n, io.EOF
	}
	return n, nil
}

// Seekable returns r as an io.ReadSeeker, buffering it in memory when it
// cannot seek.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffer input: %w", err)
	}
	return bytes.NewReader(data), nil
}
