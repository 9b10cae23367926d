// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/phonostl/audio"
)

// go-mp3 always emits interleaved stereo, 16-bit little endian.
const (
	channels       = 2
	bytesPerSample = 2
)

// pcmStream is the part of gomp3.Decoder a source reads from.
type pcmStream interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec  pcmStream
	buf  []byte
	odd  []byte // a half sample left over by the last read
	done bool
}

func newSource(dec pcmStream) *source {
	return &source{
		dec: dec,
		buf: make([]byte, 8192),
		odd: make([]byte, 0, 1),
	}
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	need := len(dst) * bytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	carried := copy(s.buf, s.odd)
	s.odd = s.odd[:0]

	n, err := s.dec.Read(s.buf[carried:])
	n += carried
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("decode mp3: %w", err)
		}
		s.done = true
	}

	whole := n / bytesPerSample
	if n%bytesPerSample != 0 {
		s.odd = append(s.odd, s.buf[n-1])
	}

	for i := range whole {
		v := int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:]))
		dst[i] = float32(v) / 32768
	}

	if s.done {
		if whole == 0 {
			return 0, io.EOF
		}
		return whole, io.EOF
	}
	return whole, nil
}

// Decoder reads MPEG-1/2 Layer III streams through github.com/hajimehoshi/go-mp3.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3, err)
	}
	return newSource(dec), nil
}
