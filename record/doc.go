// SPDX-License-Identifier: EPL-2.0

// Package record builds a printable phonograph record whose groove is cut
// by an audio waveform.
//
// # Construction
//
// A Builder walks a spiral from the outer groove radius inward, one angular
// sample at a time. Each sample yields a groove cross-section with four
// edges (outer-upper, outer-lower, inner-lower, inner-upper); the floor of
// the groove is raised or lowered by the audio sample. After every
// revolution the edges are stitched to the previously open edge of the
// surface:
//
//	shell -> start cap -> spiral (repeated) -> penultimate -> locked circle -> center hole
//
// The spiral stops once less audio is left than one revolution needs. The
// last spiral turn merges into a circular locked groove over a ridge that
// flattens out, and the locked groove is closed against the center hole.
//
// # Audio
//
// Samples passed to Build must be mono and normalized so their peak equals
// Params.Amplitude. Every DownsampleFactor-th sample is used; once the
// waveform runs out the groove continues as silence.
//
//	b, err := record.NewBuilder(record.DefaultParams())
//	if err != nil {
//	    return err
//	}
//	m, stats := b.Build(samples)
//
// Building is strictly sequential; each revolution depends on the radius,
// open edge and sample position left by the previous one.
package record
