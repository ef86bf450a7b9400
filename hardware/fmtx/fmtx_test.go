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

package fmtx_test

import (
	"testing"

	"github.com/jetsetilly/testfmtx/hardware/fmtx"
	"github.com/jetsetilly/testfmtx/hardware/tuning"
	"github.com/jetsetilly/testfmtx/melody"
	"github.com/jetsetilly/testfmtx/test"
)

func TestScalePlayback(t *testing.T) {
	fm := fmtx.Create(melody.Scale)
	fm.Registers.Tempo = 8

	in := fmtx.Inputs{Enable: true}

	// the scale is fifteen 8th notes and a closing quarter note: 34
	// sixteenths in all. every note costs a fetch tick and an advance tick on
	// top of its duration and the first tick is spent leaving idle
	expected := 1 + 8*34 + 2*16

	for i := 1; i <= expected; i++ {
		fm.Step(in)
		if i < expected {
			test.ExpectEquality(t, fm.EndPulse(), false)
		}
	}
	test.ExpectEquality(t, fm.EndPulse(), true)
	test.ExpectEquality(t, fm.Playing(), true)

	// the end pulse is one tick wide and playing falls on the following tick
	fm.Step(in)
	test.ExpectEquality(t, fm.EndPulse(), false)
	test.ExpectEquality(t, fm.Playing(), false)
}

func TestRestKeepsCarrierOnAir(t *testing.T) {
	tbl := melody.Melody{
		tuning.NewNote(0, tuning.Dur16th),
		tuning.NewRest(tuning.Dur16th),
		tuning.NewNote(0, tuning.Dur16th),
	}

	fm := fmtx.Create(tbl)
	fm.Registers.Tempo = 16

	in := fmtx.Inputs{Enable: true}

	restTicks := 0
	carrierEdges := 0
	prevCarrier := fm.CarrierOut()

	for range 16 * 3 * 2 {
		fm.Step(in)
		if fm.Playing() && fm.Seq.Valid() && fm.Seq.Note().IsRest() {
			restTicks++

			// the tone is gated to silence over the rest
			test.ExpectEquality(t, fm.ToneOut(), false)

			// but the carrier keeps toggling at the centre frequency
			if fm.CarrierOut() != prevCarrier {
				carrierEdges++
			}
		}
		prevCarrier = fm.CarrierOut()
	}

	test.ExpectEquality(t, restTicks, 16)
	test.ExpectSuccess(t, carrierEdges > 0)
}

func TestPWMOverridesCarrier(t *testing.T) {
	// a single rest as the melody. it plays out almost immediately and the
	// sequencer idles for the rest of the test while enable stays high for
	// the decoder
	tbl := melody.Melody{tuning.NewRest(tuning.Dur16th)}

	fm := fmtx.Create(tbl)
	fm.Registers.Tempo = 4

	in := fmtx.Inputs{Enable: true}

	for range 20 {
		fm.Step(in)
	}
	test.ExpectEquality(t, fm.Playing(), false)
	test.ExpectEquality(t, fm.ExternalActive(), false)
	test.ExpectEquality(t, fm.CarrierPhaseIncrement(), uint32(fmtx.CarrierIncrement))

	// drive the pwm audio line at a 25% duty cycle for four full periods. the
	// second rising edge completes the first measurement
	const high = 32
	for range 4 {
		for i := 0; i < 128; i++ {
			in.PWMAudio = i < high
			fm.Step(in)
		}
	}

	// 25% duty is a sample of -16384 and the carrier deviates below centre
	expected := uint32(int64(fmtx.CarrierIncrement) + int64(high*512-32768)*fmtx.DecoderScale)
	test.ExpectEquality(t, fm.ExternalActive(), true)
	test.ExpectEquality(t, fm.CarrierPhaseIncrement(), expected)

	// when the line goes quiet the activity latch holds for the timeout and
	// then the carrier returns to the sequencer path. the quiet line first
	// produces synthetic held-low measurements which re-arm the latch, so run
	// well past the timeout
	in.PWMAudio = false
	for range 4096 {
		fm.Step(in)
	}
	test.ExpectEquality(t, fm.ExternalActive(), false)
	test.ExpectEquality(t, fm.CarrierPhaseIncrement(), uint32(fmtx.CarrierIncrement))
}

func TestStatusByte(t *testing.T) {
	fm := fmtx.Create(melody.Scale)
	fm.Registers.Tempo = 8

	// disabled: no playing bit, no index
	fm.Step(fmtx.Inputs{})
	test.ExpectEquality(t, fm.StatusByte()&0xfc, uint8(0))

	in := fmtx.Inputs{Enable: true}

	// the first enabled tick leaves idle; playing asserts on the next
	fm.Step(in)
	test.ExpectEquality(t, fm.StatusByte()&0x04, uint8(0))
	fm.Step(in)
	test.ExpectEquality(t, fm.StatusByte()&0x04, uint8(0x04))

	// play into the second note and check the index nibble
	for fm.NoteIndex() != 1 {
		fm.Step(in)
	}
	test.ExpectEquality(t, fm.StatusByte()>>4, uint8(1))

	// the end pulse appears in bit 3 for one tick
	for !fm.EndPulse() {
		fm.Step(in)
	}
	test.ExpectEquality(t, fm.StatusByte()&0x08, uint8(0x08))
	fm.Step(in)
	test.ExpectEquality(t, fm.StatusByte()&0x08, uint8(0))
}

func TestDoubler(t *testing.T) {
	count := func(double bool) int {
		fm := fmtx.Create(melody.Scale)
		in := fmtx.Inputs{Double: double}

		edges := 0
		prev := fm.CarrierOut()
		for range 10000 {
			fm.Step(in)
			if fm.CarrierOut() != prev {
				edges++
			}
			prev = fm.CarrierOut()
		}
		return edges
	}

	single := count(false)
	doubled := count(true)

	// doubling the accumulation rate doubles the output frequency. the edge
	// counts are not exactly 2:1 because an edge can land between the two
	// accumulations of a doubled tick
	test.ExpectSuccess(t, single > 0)
	test.ExpectSuccess(t, doubled >= 2*single-4)
	test.ExpectSuccess(t, doubled <= 2*single+4)
}
