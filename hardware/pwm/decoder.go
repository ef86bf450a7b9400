// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package pwm measures the duty cycle of an externally timed pulse-width
// modulated line and converts each measured period into a signed audio
// sample: 0% duty is the minimum sample, 50% is zero and 100% is the maximum.
//
// The line is not synchronised to the system clock so it passes through a
// three stage shift register before any edge decisions are made. edges are
// classified on the two oldest stages only. the delay this adds is the
// agreed mitigation for sampling the line mid-transition and must not be
// shortcut.
//
// Division by the measured period is approximated with a shift by the
// expected nominal period. precision degrades if the real PWM rate drifts
// far from the configured expectation but the 0%/50%/100% reference points
// are exact.
package pwm

import (
	"fmt"
	"math/bits"
)

// ExpectedPeriod is the nominal length in ticks of one period of the
// external line. at a 50Mhz tick this is a PWM rate of about 390kHz
const ExpectedPeriod = 128

// Decoder measures the duty cycle of the external line
type Decoder struct {
	// nominal period, the shift approximating division by it, and the
	// counter cap of twice the nominal period
	expected uint32
	shift    uint32
	timeout  uint32

	// the synchroniser. index zero is the newest sample and index two is the
	// oldest. all decisions are made on the two oldest stages
	sync [3]bool

	periodCt  uint32
	highCt    uint32
	measuring bool

	sample      int16
	sampleValid bool
}

func NewDecoder(expectedPeriod uint32) *Decoder {
	return &Decoder{
		expected: expectedPeriod,
		shift:    uint32(bits.Len32(expectedPeriod - 1)),
		timeout:  expectedPeriod * 2,
	}
}

func (dec *Decoder) String() string {
	return fmt.Sprintf("period=%d high=%d measuring=%v sample=%d",
		dec.periodCt, dec.highCt, dec.measuring, dec.sample)
}

// Reset the decoder to its initial state
func (dec *Decoder) Reset() {
	dec.sync = [3]bool{}
	dec.periodCt = 0
	dec.highCt = 0
	dec.measuring = false
	dec.sample = 0
	dec.sampleValid = false
}

// convert a captured high count to a signed sample. the clamp matters when
// the line runs slower than expected and the high count exceeds the nominal
// period
func (dec *Decoder) convert(high uint32) int16 {
	v := int32((high<<16)>>dec.shift) - 32768
	v = max(min(v, 32767), -32768)
	return int16(v)
}

// Tick samples the external line. the sample valid output is true for
// exactly one tick per completed measurement
func (dec *Decoder) Tick(line bool, enable bool) {
	dec.sampleValid = false

	// the synchroniser runs unconditionally. it models flip-flops that are
	// clocked whether or not the decoder is interested in the result
	dec.sync[2] = dec.sync[1]
	dec.sync[1] = dec.sync[0]
	dec.sync[0] = line

	if !enable {
		dec.periodCt = 0
		dec.highCt = 0
		dec.measuring = false
		return
	}

	rising := dec.sync[1] && !dec.sync[2]

	if rising {
		// a full period has elapsed if a measurement was in progress.
		// capture it before restarting
		if dec.measuring {
			dec.sample = dec.convert(dec.highCt)
			dec.sampleValid = true
		}

		// the edge tick is the first tick of the new period
		dec.periodCt = 1
		dec.highCt = 0
		dec.measuring = true
		return
	}

	// both counters saturate at the timeout threshold
	if dec.periodCt < dec.timeout {
		dec.periodCt++
		if dec.sync[2] {
			dec.highCt++
		}
	}

	if dec.periodCt >= dec.timeout {
		// no edge for two nominal periods. synthesise a measurement from the
		// static line level rather than stalling: a line held high is the
		// maximum sample and a line held low is the minimum
		if dec.sync[2] {
			dec.sample = dec.convert(dec.timeout)
		} else {
			dec.sample = dec.convert(0)
		}
		dec.sampleValid = dec.measuring
		dec.measuring = false
		dec.periodCt = 0
		dec.highCt = 0
	}
}

// Sample returns the most recent decoded sample. the value holds between
// measurements
func (dec *Decoder) Sample() int16 {
	return dec.sample
}

// SampleValid is true for the one tick on which a new sample was captured
func (dec *Decoder) SampleValid() bool {
	return dec.sampleValid
}

// Measuring is true when the decoder has seen a rising edge and is counting
// towards the next one
func (dec *Decoder) Measuring() bool {
	return dec.measuring
}
