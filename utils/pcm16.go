// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
)

// ToPCM16 maps x in [-1, 1] to a signed 16-bit sample, rounding to nearest.
// Values outside the range clip.
func ToPCM16(x float64) int {
	x = max(-1, min(1, x))
	return int(math.Round(x * math.MaxInt16))
}
