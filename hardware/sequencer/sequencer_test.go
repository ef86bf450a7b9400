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

package sequencer_test

import (
	"testing"

	"github.com/jetsetilly/testfmtx/hardware/clocks"
	"github.com/jetsetilly/testfmtx/hardware/sequencer"
	"github.com/jetsetilly/testfmtx/hardware/tuning"
	"github.com/jetsetilly/testfmtx/melody"
	"github.com/jetsetilly/testfmtx/test"
)

// count the ticks spent in the Play state for the current note
func playTicks(seq *sequencer.Sequencer, loop bool) int {
	var ct int

	// run to the start of the next Play period
	for seq.State() != sequencer.Play {
		seq.Tick(true, loop)
	}
	for seq.State() == sequencer.Play {
		seq.Tick(true, loop)
		ct++
	}
	return ct
}

func TestDurationTiming(t *testing.T) {
	const tempo = 10

	mel := melody.Melody{
		tuning.NewNote(0, tuning.Dur16th),
		tuning.NewNote(2, tuning.Dur8th),
		tuning.NewNote(4, tuning.DurQuarter),
		tuning.NewNote(5, tuning.DurDotted8th),
		tuning.NewNote(7, tuning.DurWhole),
	}

	seq := sequencer.NewSequencer(mel)
	seq.SetTempo(tempo)

	test.ExpectEquality(t, playTicks(seq, false), tempo*1)
	test.ExpectEquality(t, playTicks(seq, false), tempo*2)
	test.ExpectEquality(t, playTicks(seq, false), tempo*4)
	test.ExpectEquality(t, playTicks(seq, false), tempo*3)
	test.ExpectEquality(t, playTicks(seq, false), tempo*16)
}

func TestEndOfMelody(t *testing.T) {
	const tempo = 5

	seq := sequencer.NewSequencer(melody.Scale)
	seq.SetTempo(tempo)

	// the melody is fifteen 8th notes and one quarter note. each note also
	// requires a fetch and a bookkeeping tick, and the very first tick is
	// spent leaving the idle state
	total := 1 + tempo*(15*2+4) + 2*melody.Scale.Len()

	for i := range total - 1 {
		seq.Tick(true, false)
		if seq.EndPulse() {
			t.Fatalf("end pulse raised early (tick %d)", i)
		}
	}

	// the final bookkeeping tick raises the pulse. playing is still high
	seq.Tick(true, false)
	test.ExpectSuccess(t, seq.EndPulse())
	test.ExpectSuccess(t, seq.Playing())

	// pulse is exactly one tick wide and playing drops on the next tick
	seq.Tick(true, false)
	test.ExpectFailure(t, seq.EndPulse())
	test.ExpectFailure(t, seq.Playing())

	// the sequencer stays idle while enable remains high
	for range 100 {
		seq.Tick(true, false)
	}
	test.ExpectEquality(t, seq.State(), sequencer.Idle)
	test.ExpectFailure(t, seq.Playing())
}

func TestLoopRestart(t *testing.T) {
	const tempo = 5

	seq := sequencer.NewSequencer(melody.Scale)
	seq.SetTempo(tempo)

	total := 1 + tempo*(15*2+4) + 2*melody.Scale.Len()

	for range total {
		seq.Tick(true, true)
		if seq.State() == sequencer.Idle {
			t.Fatal("looping melody passed through the idle state")
		}
		if seq.EndPulse() {
			t.Fatal("end pulse raised during loop")
		}
	}

	// the wrap takes us straight back to the first note
	test.ExpectEquality(t, seq.State(), sequencer.Fetch)
	test.ExpectEquality(t, seq.Index(), 0)

	seq.Tick(true, true)
	test.ExpectEquality(t, seq.State(), sequencer.Play)
	test.ExpectEquality(t, seq.Note().Pitch(), int8(0))
	test.ExpectSuccess(t, seq.Valid())
}

func TestEnableDrop(t *testing.T) {
	const tempo = 100

	seq := sequencer.NewSequencer(melody.Scale)
	seq.SetTempo(tempo)

	// play partway into the second note
	for range tempo + 50 {
		seq.Tick(true, false)
	}
	test.ExpectEquality(t, seq.Index(), 1)

	// dropping enable returns to idle immediately
	seq.Tick(false, false)
	test.ExpectEquality(t, seq.State(), sequencer.Idle)
	test.ExpectFailure(t, seq.Playing())

	// a further enable restarts from the first note with no memory of the
	// discarded duration progress
	seq.Tick(true, false)
	seq.Tick(true, false)
	seq.Tick(true, false)
	test.ExpectEquality(t, seq.Index(), 0)
	test.ExpectEquality(t, seq.State(), sequencer.Play)
	test.ExpectEquality(t, seq.Note().Pitch(), int8(0))
}

func TestEnableLevelDoesNotRetrigger(t *testing.T) {
	seq := sequencer.NewSequencer(melody.Melody{
		tuning.NewNote(0, tuning.Dur16th),
	})
	seq.SetTempo(2)

	// run the single-note melody to completion
	var pulse bool
	for range 10 {
		seq.Tick(true, false)
		pulse = pulse || seq.EndPulse()
	}
	test.ExpectSuccess(t, pulse)

	// a held enable is not a rising edge. the melody must not restart
	for range 10 {
		seq.Tick(true, false)
		test.ExpectEquality(t, seq.State(), sequencer.Idle)
	}
}

// the cycle-accurate scenario from the hardware testbench: the built-in scale
// at the default tempo. skipped in short mode because it runs the sequencer
// for over 200 million ticks
func TestScaleAtDefaultTempo(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	seq := sequencer.NewSequencer(melody.Scale)

	// tempo register of zero selects the compiled-in default
	seq.SetTempo(0)

	expected := 1 + clocks.TicksPer16th*(15*2+4) + 2*melody.Scale.Len()

	var ticks int
	for !seq.EndPulse() {
		seq.Tick(true, false)
		ticks++
	}
	test.ExpectEquality(t, ticks, expected)
}
