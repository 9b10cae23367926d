// SPDX-License-Identifier: EPL-2.0

// Package phonostl turns recorded audio into a 3-D printable record.
//
// The waveform is cut as a spiral groove into a disc shaped solid, which
// ends in a locked groove around the center hole, and the result is written
// as an STL mesh. The work is split in three steps:
//
//	wave, err := phonostl.LoadSamples(src, params, phonostl.LoadOptions{Resample: true})
//	m, stats, err := phonostl.Generate(wave.Samples, params)
//	err = phonostl.WriteSTL(out, m, stl.Binary, "my record")
//
// LoadSamples accepts any audio.Source; DefaultRegistry knows how to open
// WAV, AIFF, MP3 and Ogg Vorbis files. All lengths are in inches.
package phonostl
