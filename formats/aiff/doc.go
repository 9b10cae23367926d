// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes Audio Interchange File Format files.
//
// Samples are big-endian signed integers of 8, 16, 24 or 32 bits; the
// decoder hands them out as float32 in [-1, 1) like every other format.
// AIFF-C compressed variants are not supported.
//
//	f, _ := os.Open("take.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
package aiff
