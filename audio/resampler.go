// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/phonostl/utils"
)

// Resampler converts src to another sample rate with Catmull-Rom
// interpolation over a sliding window of four frames. Channel layout is
// kept. A one-pole low pass runs on the input when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// window[1] and window[2] bracket the output position; window[0] and
	// window[3] are the outer control points.
	window [4][]float32
	primed bool
	ended  bool
	tail   int // frames appended after the source ended

	frac float64
	in   []float32

	lowpass bool
	warm    bool
	alpha   float32
	state   []float32
}

// NewResampler converts src to dstRate Hz.
func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		channels: channels,
		in:       make([]float32, channels),
		state:    make([]float32, channels),
	}
	if r.step > 1 {
		r.lowpass = true
		r.alpha = 0.5
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame pulls one frame from src into frame. It reports false once the
// source is drained.
func (r *Resampler) readFrame(frame []float32) (bool, error) {
	if r.ended {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.in)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("%w", err)
	}
	if n < r.channels {
		r.ended = true
		return false, nil
	}
	if errors.Is(err, io.EOF) {
		r.ended = true
	}

	copy(frame, r.in)
	if r.lowpass {
		if !r.warm {
			copy(r.state, frame)
			r.warm = true
		}
		for c := range frame {
			frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.state[c]
			r.state[c] = frame[c]
		}
	}
	return true, nil
}

// prime fills the window. The first frame doubles as the left control point.
func (r *Resampler) prime() (bool, error) {
	r.primed = true

	ok, err := r.readFrame(r.window[1])
	if err != nil || !ok {
		return false, err
	}
	copy(r.window[0], r.window[1])

	for i := 2; i < len(r.window); i++ {
		ok, err := r.readFrame(r.window[i])
		if err != nil {
			return false, err
		}
		if !ok {
			copy(r.window[i], r.window[i-1])
			r.tail++
		}
	}
	return true, nil
}

// advance slides the window by one frame. It reports false when window[1]
// would become padding.
func (r *Resampler) advance() (bool, error) {
	if r.tail >= 2 {
		return false, nil
	}

	oldest := r.window[0]
	copy(r.window[:], r.window[1:])
	r.window[3] = oldest

	ok, err := r.readFrame(oldest)
	if err != nil {
		return false, err
	}
	if !ok {
		copy(oldest, r.window[2])
		r.tail++
	}
	return true, nil
}

// ReadSamples writes interleaved samples at the target rate. len(dst) must be
// a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		ok, err := r.prime()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, io.EOF
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		for r.frac >= 1 {
			ok, err := r.advance()
			if err != nil {
				return written * r.channels, err
			}
			if !ok {
				return written * r.channels, io.EOF
			}
			r.frac--
		}

		x := float32(r.frac)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CatmullRom(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.frac += r.step
	}

	return written * r.channels, nil
}
