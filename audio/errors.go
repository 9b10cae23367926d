// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	// ErrUnknownFormat indicates no decoder is registered for a format.
	ErrUnknownFormat = errors.New("unknown audio format")
	// ErrNoSamples indicates a stream ended before yielding any sample.
	ErrNoSamples = errors.New("audio stream has no samples")
	// ErrSilentInput indicates a waveform whose peak is zero, which cannot be
	// scaled to a target amplitude.
	ErrSilentInput = errors.New("audio is silent")
	// ErrInvalidChannel indicates a channel index the source does not have.
	ErrInvalidChannel = errors.New("channel out of range")
)
