// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files through github.com/go-audio/wav.
//
// Decoder accepts integer PCM at 8, 16, 24 or 32 bits, with any channel count
// and sample rate. Eight-bit data is unsigned on disk and is re-centred so
// that silence reads as 0. Compressed and floating point files are rejected
// with ErrNotPCM.
//
// WriteMono16 stores a processed waveform as a mono 16-bit file, which is how
// the record pipeline lets a user listen to what will be cut into the groove:
//
//	f, _ := os.Create("preview.wav")
//	defer f.Close()
//	err := wav.WriteMono16(f, 44100, samples)
//
// Inputs that cannot seek are buffered in memory before decoding, since the
// go-audio decoder needs random access to the chunk list.
package wav
