// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio with github.com/hajimehoshi/go-mp3.
//
// The decoder always produces interleaved stereo; mono files come out with
// both channels equal. Samples are float32 in [-1, 1).
package mp3
