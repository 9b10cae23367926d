// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestToPCM16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  int
	}{
		{name: "zero", input: 0, want: 0},
		{name: "full positive", input: 1, want: math.MaxInt16},
		{name: "full negative", input: -1, want: -math.MaxInt16},
		{name: "half rounds up", input: 0.5, want: 16384},
		{name: "small negative", input: -0.001, want: -33},
		{name: "clip high", input: 1.5, want: math.MaxInt16},
		{name: "clip low", input: -100, want: -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ToPCM16(tt.input); got != tt.want {
				t.Errorf("ToPCM16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestToPCM16Symmetric(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0.1, 0.25, 0.75, 0.99} {
		if pos, neg := ToPCM16(v), ToPCM16(-v); pos != -neg {
			t.Errorf("ToPCM16(%v) = %d but ToPCM16(-%v) = %d", v, pos, v, neg)
		}
	}
}

func TestToPCM16Monotonic(t *testing.T) {
	t.Parallel()

	prev := ToPCM16(-1)
	for i := -99; i <= 100; i++ {
		curr := ToPCM16(float64(i) / 100)
		if curr < prev {
			t.Fatalf("ToPCM16(%v) = %d after %d", float64(i)/100, curr, prev)
		}
		prev = curr
	}
}

func BenchmarkToPCM16(b *testing.B) {
	b.ReportAllocs()

	var sink int
	for i := range b.N {
		sink = ToPCM16(float64(i%200-100) / 100)
	}
	_ = sink
}
