// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// Peak returns the largest absolute value in samples.
func Peak(samples []float64) float64 {
	var peak float64
	for _, v := range samples {
		peak = max(peak, math.Abs(v))
	}
	return peak
}

// Normalize scales samples in place so their peak becomes target.
func Normalize(samples []float64, target float64) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}

	peak := Peak(samples)
	if peak == 0 {
		return ErrSilentInput
	}

	gain := target / peak
	for i := range samples {
		samples[i] *= gain
	}
	return nil
}
