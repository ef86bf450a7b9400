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

package fmtx

import "github.com/jetsetilly/testfmtx/hardware/tuning"

// CarrierIncrement is the phase increment of the unmodulated carrier: a 10Mhz
// centre frequency from the 50Mhz tick
const CarrierIncrement = 0x33333333

// DeviationStep is the carrier increment added per semitone of the current
// note. roughly 6.1kHz of deviation per semitone
const DeviationStep = 0x80000

// ToneIncrement is the phase increment of the tone output at the reference
// pitch. roughly 523Hz (C5) from the 50Mhz tick
const ToneIncrement = 44947

// DecoderScale converts a decoded PWM sample to a carrier increment offset.
// a full scale sample deviates the carrier by a little under 50kHz
const DecoderScale = 128

// carrierMapper converts the current note to a carrier phase increment. the
// output is registered so a new note is reflected one tick later, which is
// imperceptible at the carrier's timescale
type carrierMapper struct {
	base      uint32
	step      uint32
	increment uint32
}

func (m *carrierMapper) reset() {
	m.base = CarrierIncrement
	m.step = DeviationStep
	m.increment = m.base
}

// tick latches the carrier increment for the note. a rest or an invalid note
// never silences the carrier: it transmits the unmodulated centre frequency.
// the deviation sum is computed wide and clamped at zero because a frequency
// cannot be negative
func (m *carrierMapper) tick(note tuning.Note, valid bool) {
	if !valid || note.IsRest() {
		m.increment = m.base
		return
	}

	v := int64(m.base) + int64(note.Pitch())*int64(m.step)
	if v < 0 {
		v = 0
	}
	m.increment = uint32(v)
}

// toneIncrement converts the current note to a tone phase increment using
// the equal tempered ratio table. a rest maps to an increment of zero and
// the tone synthesizer independently gates its output to silence
func toneIncrement(note tuning.Note, valid bool) uint32 {
	if !valid || note.IsRest() {
		return 0
	}
	return uint32(uint64(ToneIncrement) * uint64(tuning.Ratio(note.Pitch())) / tuning.RatioScale)
}

// decoderIncrement converts a decoded PWM sample to a carrier phase
// increment, clamped at zero like the note mapping
func decoderIncrement(sample int16) uint32 {
	v := int64(CarrierIncrement) + int64(sample)*DecoderScale
	if v < 0 {
		v = 0
	}
	return uint32(v)
}
