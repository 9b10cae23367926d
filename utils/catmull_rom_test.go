// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCatmullRom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		p0, p1, p2, p3 float32
		t              float32
		want           float32
	}{
		{name: "start hits p1", p0: 0, p1: 1, p2: 2, p3: 3, t: 0, want: 1},
		{name: "end hits p2", p0: 0, p1: 1, p2: 2, p3: 3, t: 1, want: 2},
		{name: "line stays linear", p0: 1, p1: 2, p2: 3, p3: 4, t: 0.25, want: 2.25},
		{name: "symmetric crossing", p0: -1, p1: -0.5, p2: 0.5, p3: 1, t: 0.5, want: 0},
		{name: "flat", p0: 0.3, p1: 0.3, p2: 0.3, p3: 0.3, t: 0.7, want: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CatmullRom(tt.p0, tt.p1, tt.p2, tt.p3, tt.t)
			if math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("CatmullRom() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCatmullRomEndpoints(t *testing.T) {
	t.Parallel()

	for i := range 50 {
		p := float32(i)
		if got := CatmullRom(p*2, p, -p, p/2, 0); got != p {
			t.Errorf("t=0: got %v, want %v", got, p)
		}
	}
}

func TestCatmullRom_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = CatmullRom(0.5, 1.0, 0.8, 0.3, 0.5)
	})
	if allocs > 0 {
		t.Errorf("CatmullRom allocated %v times, want 0", allocs)
	}
}

func BenchmarkCatmullRom(b *testing.B) {
	b.ReportAllocs()

	var sink float32
	for i := range b.N {
		sink = CatmullRom(0.1, 0.5, 0.3, -0.2, float32(i%100)/100)
	}
	_ = sink
}
