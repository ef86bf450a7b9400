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

// ActivityTimeout is the number of ticks the external modulation source
// remains selected after its most recent valid sample
const ActivityTimeout = 255

// selector arbitrates between the two modulation sources for the carrier.
// external PWM audio wins while it is active. activity is a latch armed by
// every valid decoder sample and cleared by a countdown reaching zero
//
// only the carrier is affected. the tone path always follows the sequencer
type selector struct {
	active    bool
	countdown uint32
	increment uint32
}

func (sel *selector) reset() {
	sel.active = false
	sel.countdown = 0
	sel.increment = CarrierIncrement
}

func (sel *selector) tick(sampleValid bool, sample int16) {
	if sampleValid {
		sel.active = true
		sel.countdown = ActivityTimeout
		sel.increment = decoderIncrement(sample)
		return
	}

	if sel.active {
		if sel.countdown == 0 {
			sel.active = false
		} else {
			sel.countdown--
		}
	}
}

// selected increment for the carrier this tick. the sequencer derived
// increment is used whenever the external source is inactive
func (sel *selector) selected(seqIncrement uint32) uint32 {
	if sel.active {
		return sel.increment
	}
	return seqIncrement
}
