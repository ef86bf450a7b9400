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

// Package sequencer walks the melody table and times each note. it is a four
// state machine:
//
//	Idle -> Fetch -> Play -> Next -> Fetch (or Idle)
//
// Fetch exists only to absorb the one tick of read latency on the melody
// table. Next is a single tick of bookkeeping at the end of each note, where
// the decision to advance, loop or stop is made.
//
// The end pulse is raised for exactly one tick and only on the definitive
// non-loop stop. when loop mode is enabled the wrap from the last note to the
// first happens without passing through Idle and without a pulse.
package sequencer

import (
	"fmt"

	"github.com/jetsetilly/testfmtx/hardware/clocks"
	"github.com/jetsetilly/testfmtx/hardware/tuning"
)

// Table is the connection to the melody data. reads have one tick of latency
// which the sequencer absorbs in the Fetch state
type Table interface {
	Len() int
	Note(idx int) tuning.Note
}

// State is the tagged state of the sequencer machine
type State int

const (
	Idle State = iota
	Fetch
	Play
	Next
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Fetch:
		return "fetch"
	case Play:
		return "play"
	case Next:
		return "next"
	}
	return "unknown"
}

// inputs gathers everything the transition function is allowed to see
type inputs struct {
	enable       bool
	enableRising bool
	loop         bool
	atTarget     bool
	lastNote     bool
}

// transition is the pure next-state function. it inspects but never mutates
// the datapath
func transition(s State, in inputs) State {
	if !in.enable {
		return Idle
	}

	switch s {
	case Idle:
		if in.enableRising {
			return Fetch
		}
		return Idle
	case Fetch:
		return Play
	case Play:
		if in.atTarget {
			return Next
		}
		return Play
	case Next:
		if in.lastNote && !in.loop {
			return Idle
		}
		return Fetch
	}

	return Idle
}

// Sequencer is the melody sequencing state machine
type Sequencer struct {
	table Table

	// runtime tempo register. a value of zero selects the compiled-in
	// default of clocks.TicksPer16th
	tempo uint32

	state      State
	index      int
	word       tuning.Note
	durationCt uint32

	prevEnable bool

	playing  bool
	valid    bool
	endPulse bool
}

func NewSequencer(table Table) *Sequencer {
	return &Sequencer{
		table: table,
	}
}

func (seq *Sequencer) String() string {
	return fmt.Sprintf("%s: note %d/%d (%s) dur=%d/%d",
		seq.state, seq.index, seq.table.Len()-1, seq.word, seq.durationCt, seq.target())
}

// Reset the sequencer to its initial state
func (seq *Sequencer) Reset() {
	seq.state = Idle
	seq.index = 0
	seq.word = 0
	seq.durationCt = 0
	seq.prevEnable = false
	seq.playing = false
	seq.valid = false
	seq.endPulse = false
}

// SetTempo sets the runtime tempo register: the number of ticks in a 16th
// note. zero selects the compiled-in default
func (seq *Sequencer) SetTempo(ticksPer16th uint32) {
	seq.tempo = ticksPer16th
}

// SetTable replaces the melody table. the sequencer is reset because an index
// into the old table means nothing in the new one
func (seq *Sequencer) SetTable(table Table) {
	seq.table = table
	seq.Reset()
}

func (seq *Sequencer) target() uint32 {
	t := seq.tempo
	if t == 0 {
		t = clocks.TicksPer16th
	}
	return t * seq.word.Multiplier()
}

// Tick advances the state machine. enable and loop are level inputs sampled
// once per tick
func (seq *Sequencer) Tick(enable bool, loop bool) {
	// the end pulse is exactly one tick wide
	seq.endPulse = false

	in := inputs{
		enable:       enable,
		enableRising: enable && !seq.prevEnable,
		loop:         loop,
		lastNote:     seq.index >= seq.table.Len()-1,
	}
	seq.prevEnable = enable

	// the playing output reflects the state the machine is in during this
	// tick, not the state it is about to move to. this keeps the end pulse
	// inside the playing period
	seq.playing = in.enable && seq.state != Idle

	// state-dependent datapath
	if !in.enable {
		// dropping enable discards any duration progress. the next enable
		// rising edge restarts the melody from the beginning
		seq.durationCt = 0
		seq.valid = false
	} else {
		switch seq.state {
		case Idle:
			seq.index = 0
			seq.durationCt = 0
			seq.valid = false
		case Fetch:
			// registered read of the melody table. the note word becomes
			// observable in the Play state
			seq.word = seq.table.Note(seq.index)
			seq.durationCt = 0
			seq.valid = false
		case Play:
			seq.valid = true
			in.atTarget = seq.durationCt >= seq.target()-1
			seq.durationCt++
		case Next:
			seq.valid = false
			if in.lastNote {
				if in.loop {
					seq.index = 0
				} else {
					seq.endPulse = true
				}
			} else {
				seq.index++
			}
		}
	}

	seq.state = transition(seq.state, in)
}

// State returns the current machine state
func (seq *Sequencer) State() State {
	return seq.state
}

// Playing is true whenever the sequencer is working through the melody,
// including the bookkeeping ticks between notes
func (seq *Sequencer) Playing() bool {
	return seq.playing
}

// Valid is true when the pitch returned by Note() is the note currently
// sounding. it is false during the bookkeeping ticks between notes
func (seq *Sequencer) Valid() bool {
	return seq.valid
}

// Note returns the most recently fetched note word
func (seq *Sequencer) Note() tuning.Note {
	return seq.word
}

// Index returns the current position in the melody table
func (seq *Sequencer) Index() int {
	return seq.index
}

// EndPulse is true for exactly one tick when a non-looping melody finishes
func (seq *Sequencer) EndPulse() bool {
	return seq.endPulse
}
