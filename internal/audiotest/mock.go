// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of channel ch at frame i.
type Waveform func(i, ch int) float32

// Source generates frames from a Waveform. It satisfies audio.Source without
// importing it.
type Source struct {
	rate     int
	channels int
	frames   int
	pos      int
	wave     Waveform

	// MaxRead caps the values returned per read when positive, to exercise
	// short reads.
	MaxRead int
	// Err, when set, is returned by every read.
	Err error
	// Stalls is the number of upcoming reads that return no data and no
	// error.
	Stalls int
	// Closed counts calls to Close.
	Closed int
}

func New(rate, channels, frames int, wave Waveform) *Source {
	return &Source{rate: rate, channels: channels, frames: frames, wave: wave}
}

// Silence yields zeros.
func Silence(rate, channels, frames int) *Source {
	return Constant(rate, channels, frames, 0)
}

func Constant(rate, channels, frames int, v float32) *Source {
	return New(rate, channels, frames, func(int, int) float32 { return v })
}

// Sine yields a full-scale sine of freq Hz on every channel.
func Sine(rate, channels, frames int, freq float64) *Source {
	return New(rate, channels, frames, func(i, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(i) / float64(rate)))
	})
}

// Values plays back interleaved data once.
func Values(rate, channels int, data ...float32) *Source {
	return New(rate, channels, len(data)/channels, func(i, ch int) float32 {
		return data[i*channels+ch]
	})
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }

func (s *Source) Close() error {
	s.Closed++
	return nil
}

// Rewind starts the stream over.
func (s *Source) Rewind() { s.pos = 0 }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	if s.Stalls > 0 {
		s.Stalls--
		return 0, nil
	}
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	limit := len(dst)
	if s.MaxRead > 0 {
		limit = min(limit, s.MaxRead)
	}

	frames := min(limit/s.channels, s.frames-s.pos)
	for f := range frames {
		for ch := range s.channels {
			dst[f*s.channels+ch] = s.wave(s.pos+f, ch)
		}
	}
	s.pos += frames

	if s.pos >= s.frames {
		return frames * s.channels, io.EOF
	}
	return frames * s.channels, nil
}
