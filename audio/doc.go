// SPDX-License-Identifier: EPL-2.0

// Package audio holds the streaming side of the record pipeline: the Source
// interface every decoder implements, a Registry that picks a decoder by file
// extension, and the stages that turn a decoded stream into the flat mono
// waveform the groove is cut from.
//
// A typical chain resamples first, then folds channels, then collects:
//
//	src, _ := registry.ForPath("take.wav")
//	s, _ := src.Decode(f)
//	s = audio.NewResampler(s, 44100)
//	s, _ = audio.ToMono(s, audio.MixChannels, 0)
//	samples, _ := audio.Collect(s)
//	_ = audio.Normalize(samples, 24)
//
// Samples travel as float32 in [-1, 1] while streaming and become float64
// once collected. Sources report the end of data with io.EOF, possibly
// together with the last values.
package audio
