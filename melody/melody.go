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

// Package melody is the note table played by the sequencer. the table is
// immutable once created and is injected into the sequencer on construction,
// meaning alternative melodies can be substituted without the sequencer
// knowing or caring.
//
// The hardware reads the table through a registered lookup with one tick of
// latency. the sequencer's Fetch state exists to absorb that latency.
package melody

import "github.com/jetsetilly/testfmtx/hardware/tuning"

// Melody is an ordered, fixed-length sequence of note words
type Melody []tuning.Note

// Len returns the number of notes in the melody
func (mel Melody) Len() int {
	return len(mel)
}

// Note returns the note word at the specified index. out of range indices
// return a rest, mirroring the undefined-read behaviour of the hardware table
func (mel Melody) Note(idx int) tuning.Note {
	if idx < 0 || idx >= len(mel) {
		return tuning.NewRest(tuning.Dur8th)
	}
	return mel[idx]
}

// Scale is the melody in the transmitter ROM: the major scale on the
// reference pitch, ascending and descending. fifteen 8th notes with a
// quarter note to finish
var Scale = Melody{
	tuning.NewNote(0, tuning.Dur8th),
	tuning.NewNote(2, tuning.Dur8th),
	tuning.NewNote(4, tuning.Dur8th),
	tuning.NewNote(5, tuning.Dur8th),
	tuning.NewNote(7, tuning.Dur8th),
	tuning.NewNote(9, tuning.Dur8th),
	tuning.NewNote(11, tuning.Dur8th),
	tuning.NewNote(12, tuning.Dur8th),
	tuning.NewNote(12, tuning.Dur8th),
	tuning.NewNote(11, tuning.Dur8th),
	tuning.NewNote(9, tuning.Dur8th),
	tuning.NewNote(7, tuning.Dur8th),
	tuning.NewNote(5, tuning.Dur8th),
	tuning.NewNote(4, tuning.Dur8th),
	tuning.NewNote(2, tuning.Dur8th),
	tuning.NewNote(0, tuning.DurQuarter),
}
