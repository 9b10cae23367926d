// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio with github.com/jfreymuth/oggvorbis.
//
// The library already produces float32 samples in [-1, 1], so the source is
// a thin pass-through that only keeps reads aligned to whole frames.
package vorbis
