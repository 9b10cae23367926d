// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	// ErrNotPCM is returned for compressed or floating point WAV data.
	ErrNotPCM = errors.New("WAV data is not integer PCM")
)
