// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/phonostl/utils"
)

const chunkFrames = 8192

// WriteMono16 writes samples, which must lie in [-1, 1], as a mono 16-bit
// PCM WAV. The header is patched on completion so w must seek.
func WriteMono16(w io.WriteSeeker, sampleRate int, samples []float64) error {
	enc := gowav.NewEncoder(w, sampleRate, 16, 1, formatPCM)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, 0, min(len(samples), chunkFrames)),
		SourceBitDepth: 16,
	}

	for start := 0; start < len(samples); start += chunkFrames {
		chunk := samples[start:min(start+chunkFrames, len(samples))]

		buf.Data = buf.Data[:0]
		for _, v := range chunk {
			buf.Data = append(buf.Data, utils.ToPCM16(v))
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("write wav samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finish wav: %w", err)
	}
	return nil
}
