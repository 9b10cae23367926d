// SPDX-License-Identifier: EPL-2.0

package record

import (
	"errors"
	"fmt"
	"math"
)

const (
	micronsPerInch  = 25400.0
	micronsPerLayer = 16.0 // vertical resolution of the reference printer
	printerDPI      = 600.0
	secondsPerMin   = 60.0
)

// Params holds the physical and audio constants of a record. Lengths are in inches.
type Params struct {
	Diameter          float64 `yaml:"diameter"`
	InnerHoleDiameter float64 `yaml:"inner_hole_diameter"`
	InnerRadius       float64 `yaml:"inner_radius"` // innermost groove
	OuterRadius       float64 `yaml:"outer_radius"` // outermost groove
	RecordHeight      float64 `yaml:"record_height"`
	RecordFloor       float64 `yaml:"record_floor"`
	Amplitude         float64 `yaml:"amplitude"`
	GrooveWidth       float64 `yaml:"groove_width"`
	Bevel             float64 `yaml:"bevel"`
	Depth             float64 `yaml:"depth"` // from the top surface to the tops of the wave
	SamplingRate      float64 `yaml:"sampling_rate"`
	RPM               float64 `yaml:"rpm"`
	DownsampleFactor  float64 `yaml:"downsample_factor"`
}

// DefaultParams returns a 12" record at 33⅓ rpm sized for a 600 dpi printer
// with 16 micron layers.
func DefaultParams() Params {
	return Params{
		Diameter:          11.8,
		InnerHoleDiameter: 0.286,
		InnerRadius:       2.35,
		OuterRadius:       5.75,
		RecordHeight:      0.06,
		RecordFloor:       0,
		Amplitude:         24 * micronsPerLayer / micronsPerInch,
		GrooveWidth:       2 / printerDPI,
		Bevel:             0.5,
		Depth:             6 * micronsPerLayer / micronsPerInch,
		SamplingRate:      44100,
		RPM:               33.3,
		DownsampleFactor:  4,
	}
}

// ThetaIter is the number of angular samples per revolution.
func (p Params) ThetaIter() float64 {
	return p.SamplingRate * secondsPerMin / (p.DownsampleFactor * p.RPM)
}

// AngularStep is the angle between two consecutive groove samples.
func (p Params) AngularStep() float64 {
	return 2 * math.Pi / p.ThetaIter()
}

// Steps is the number of angular samples k*AngularStep in [0, 2π).
func (p Params) Steps() int {
	t := p.ThetaIter()
	n := int(math.Ceil(t))
	// guard float noise around an integral ThetaIter
	if float64(n)-t > 1-1e-9 {
		n--
	}
	return n
}

// Angle returns the angle of step k.
func (p Params) Angle(k int) float64 {
	return float64(k) * p.AngularStep()
}

// RadiusStep is how far the groove moves inward per angular sample.
func (p Params) RadiusStep() float64 {
	return (p.GrooveWidth + 2*p.Bevel*p.Amplitude) / p.ThetaIter()
}

// GrooveBase is the groove bottom height for a silent sample.
func (p Params) GrooveBase() float64 {
	return p.RecordHeight - p.Depth - p.Amplitude
}

// GrooveHeight returns the groove bottom height for a normalized sample.
func (p Params) GrooveHeight(sample float64) float64 {
	return p.GrooveBase() + sample
}

// BevelOffset is the horizontal distance between a groove wall's bottom and top edge.
func (p Params) BevelOffset() float64 {
	return p.Amplitude * p.Bevel
}

// Center is the X and Y coordinate of the record's center.
func (p Params) Center() float64 {
	return p.Diameter / 2
}

// Pitch is the radial distance between two neighbouring groove revolutions.
func (p Params) Pitch() float64 {
	return p.GrooveWidth + 2*p.Bevel*p.Amplitude
}

// MaxRevolutions is the number of groove revolutions between the outer and
// inner groove radius.
func (p Params) MaxRevolutions() int {
	pitch := p.Pitch()
	if pitch <= 0 {
		return 0
	}
	return int((p.OuterRadius - p.InnerRadius) / pitch)
}

// Capacity is the playing time in seconds that fits between the outer and
// inner groove radius.
func (p Params) Capacity() float64 {
	return float64(p.MaxRevolutions()) * secondsPerMin / p.RPM
}

// Revolutions returns how many ordinary spiral revolutions a waveform of
// the given length produces.
func (p Params) Revolutions(samples int) int {
	c := &SampleCursor{length: samples, factor: p.DownsampleFactor}
	steps := p.Steps()
	n := 0
	for c.HasRevolution(p.ThetaIter()) {
		c.pos += steps
		n++
	}
	return n
}

// Validate reports every inconsistency in p. The returned error wraps
// ErrInvalidParams.
func (p Params) Validate() error {
	var errs []error
	check := func(bad bool, format string, args ...any) {
		if bad {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(!(p.Diameter > 0), "diameter %v must be positive", p.Diameter)
	check(!(p.InnerHoleDiameter > 0), "inner hole diameter %v must be positive", p.InnerHoleDiameter)
	check(p.InnerHoleDiameter >= p.Diameter, "inner hole diameter %v must be smaller than diameter %v", p.InnerHoleDiameter, p.Diameter)
	check(!(p.InnerRadius < p.OuterRadius), "inner radius %v must be smaller than outer radius %v", p.InnerRadius, p.OuterRadius)
	check(p.InnerRadius-p.GrooveWidth-p.BevelOffset() <= p.InnerHoleDiameter/2,
		"inner radius %v leaves no room around the center hole", p.InnerRadius)
	check(p.OuterRadius+p.BevelOffset() >= p.Diameter/2,
		"outer radius %v with bevel does not fit inside diameter %v", p.OuterRadius, p.Diameter)
	check(!(p.RecordHeight > p.RecordFloor), "record height %v must be above floor %v", p.RecordHeight, p.RecordFloor)
	check(p.Amplitude < 0, "amplitude %v must not be negative", p.Amplitude)
	check(p.Depth < 0, "depth %v must not be negative", p.Depth)
	check(p.Bevel < 0, "bevel %v must not be negative", p.Bevel)
	check(!(p.GrooveWidth > 0), "groove width %v must be positive", p.GrooveWidth)
	check(p.GrooveBase()-p.Amplitude < p.RecordFloor,
		"groove bottom %v cuts through the floor %v", p.GrooveBase()-p.Amplitude, p.RecordFloor)
	check(!(p.SamplingRate > 0), "sampling rate %v must be positive", p.SamplingRate)
	check(!(p.RPM > 0), "rpm %v must be positive", p.RPM)
	check(!(p.DownsampleFactor > 0), "downsample factor %v must be positive", p.DownsampleFactor)

	if len(errs) == 0 {
		t := p.ThetaIter()
		check(math.IsInf(t, 0) || math.IsNaN(t) || t < 3,
			"angular resolution %v is below 3 samples per revolution", t)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidParams, errors.Join(errs...))
	}
	return nil
}
