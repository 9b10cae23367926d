// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"strings"
)

// ChannelMode selects how a multi-channel source becomes mono.
type ChannelMode int

const (
	// MixChannels averages all channels of a frame.
	MixChannels ChannelMode = iota
	// SingleChannel keeps one channel and drops the others.
	SingleChannel
)

// ParseChannelMode accepts "mix", "left" (channel 0) and "right" (channel 1).
// It returns the mode and the channel it selects.
func ParseChannelMode(s string) (ChannelMode, int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mix":
		return MixChannels, 0, nil
	case "left":
		return SingleChannel, 0, nil
	case "right":
		return SingleChannel, 1, nil
	default:
		return MixChannels, 0, fmt.Errorf("channel mode %q: %w", s, ErrInvalidChannel)
	}
}

// MonoMixer turns an interleaved source into a mono one.
type MonoMixer struct {
	src     Source
	mode    ChannelMode
	channel int
	tmp     []float32
}

// NewMonoMixer averages every frame of src into one sample.
func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 0, 4096),
	}
}

// NewChannelPicker keeps only the given channel of src.
func NewChannelPicker(src Source, channel int) (*MonoMixer, error) {
	if channel < 0 || channel >= src.Channels() {
		return nil, fmt.Errorf("channel %d of %d: %w", channel, src.Channels(), ErrInvalidChannel)
	}

	return &MonoMixer{
		src:     src,
		mode:    SingleChannel,
		channel: channel,
		tmp:     make([]float32, 0, 4096),
	}, nil
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples fills dst with up to len(dst) mono samples.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	frames := n / channels

	if m.mode == SingleChannel {
		for f := range frames {
			dst[f] = m.tmp[f*channels+m.channel]
		}
		return frames, err
	}

	inv := 1 / float32(channels)
	for f := range frames {
		var sum float32
		for _, v := range m.tmp[f*channels : (f+1)*channels] {
			sum += v
		}
		dst[f] = sum * inv
	}
	return frames, err
}
