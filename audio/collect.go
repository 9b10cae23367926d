// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// ToMono wraps src so it yields one channel. Mono sources are returned as is.
func ToMono(src Source, mode ChannelMode, channel int) (Source, error) {
	if src.Channels() == 1 {
		return src, nil
	}

	if mode == SingleChannel {
		return NewChannelPicker(src, channel)
	}
	return NewMonoMixer(src), nil
}

// maxEmptyReads is how many reads in a row may return nothing before
// Collect gives up on src.
const maxEmptyReads = 100

// Collect drains a mono src into memory until io.EOF. It does not close src.
// A source that keeps returning no data without an error fails with
// io.ErrNoProgress.
func Collect(src Source) ([]float64, error) {
	if src.Channels() != 1 {
		return nil, fmt.Errorf("collect %d channels: %w", src.Channels(), ErrInvalidChannel)
	}

	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}
	buf := make([]float32, size)
	out := make([]float64, 0, size)

	empty := 0
	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			out = append(out, float64(v))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}
		if n > 0 {
			empty = 0
			continue
		}
		empty++
		if empty >= maxEmptyReads {
			return nil, fmt.Errorf("read samples: %w", io.ErrNoProgress)
		}
	}

	if len(out) == 0 {
		return nil, ErrNoSamples
	}
	return out, nil
}
