// SPDX-License-Identifier: EPL-2.0

package record

// SampleCursor reads a normalized waveform one groove sample at a time.
//
// Every read advances the logical position by one. The sample returned for
// logical position k is samples[k*factor]; past the end of the waveform the
// cursor yields silence instead of failing, which models the lead-out.
type SampleCursor struct {
	samples []float64
	length  int
	factor  float64
	pos     int
}

// NewSampleCursor returns a cursor over samples that skips factor physical
// samples per read.
func NewSampleCursor(samples []float64, factor float64) *SampleCursor {
	return &SampleCursor{
		samples: samples,
		length:  len(samples),
		factor:  factor,
	}
}

func (c *SampleCursor) physical(pos int) int {
	return int(c.factor * float64(pos))
}

func (c *SampleCursor) at(pos int) float64 {
	idx := c.physical(pos)
	if idx < 0 || idx >= c.length {
		return 0
	}
	return c.samples[idx]
}

// Next returns the sample at the current position and advances.
func (c *SampleCursor) Next() float64 {
	v := c.at(c.pos)
	c.pos++
	return v
}

// Peek returns the sample at the current position without advancing.
func (c *SampleCursor) Peek() float64 {
	return c.at(c.pos)
}

// First returns the very first sample of the waveform, or silence when it is
// empty. The position is not changed.
func (c *SampleCursor) First() float64 {
	return c.at(0)
}

// Position is the number of reads so far.
func (c *SampleCursor) Position() int { return c.pos }

// PhysicalIndex is the waveform index the next read will use.
func (c *SampleCursor) PhysicalIndex() int { return c.physical(c.pos) }

// Len is the length of the waveform.
func (c *SampleCursor) Len() int { return c.length }

// Exhausted reports whether further reads return silence.
func (c *SampleCursor) Exhausted() bool {
	return c.PhysicalIndex() >= c.length
}

// Remaining is the number of physical samples not yet passed.
func (c *SampleCursor) Remaining() int {
	return max(c.length-c.PhysicalIndex(), 0)
}

// HasRevolution reports whether enough waveform is left for one more full
// revolution of thetaIter reads.
func (c *SampleCursor) HasRevolution(thetaIter float64) bool {
	return c.factor*float64(c.pos) < float64(c.length)-c.factor*thetaIter+1
}
