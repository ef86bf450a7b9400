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

package tuning

import "fmt"

// Note is the 16bit note word stored in the melody table
//
// bits 15 to 8 are the signed semitone offset from the reference pitch, with
// the value 0x80 reserved as the rest sentinel. bits 7 and 6 are reserved and
// should be zero. bits 5 to 0 are the duration code
type Note uint16

// the rest sentinel occupies the most negative value of the pitch field,
// leaving a usable pitch range of -127 to +127 semitones
const restSentinel = 0x80

// Duration codes understood by the sequencer. codes outside this list are
// played as an 8th note
const (
	Dur16th uint8 = iota
	Dur8th
	DurQuarter
	DurHalf
	DurWhole
	DurDotted8th
)

func NewNote(pitch int8, duration uint8) Note {
	return Note(uint16(uint8(pitch))<<8 | uint16(duration&0x3f))
}

func NewRest(duration uint8) Note {
	return Note(restSentinel<<8 | uint16(duration&0x3f))
}

func (n Note) String() string {
	if n.IsRest() {
		return fmt.Sprintf("rest (dur %02x)", n.Duration())
	}
	return fmt.Sprintf("pitch %+d (dur %02x)", n.Pitch(), n.Duration())
}

// Pitch returns the semitone offset from the reference pitch. the result is
// meaningless if the note is a rest
func (n Note) Pitch() int8 {
	return int8(n >> 8)
}

func (n Note) IsRest() bool {
	return uint8(n>>8) == restSentinel
}

// Duration returns the raw 6bit duration code
func (n Note) Duration() uint8 {
	return uint8(n & 0x3f)
}

// Multiplier converts the duration code to the number of 16th notes the note
// occupies. unrecognised codes default to the 8th note multiplier
func (n Note) Multiplier() uint32 {
	switch n.Duration() {
	case Dur16th:
		return 1
	case Dur8th:
		return 2
	case DurQuarter:
		return 4
	case DurHalf:
		return 8
	case DurWhole:
		return 16
	case DurDotted8th:
		return 3
	}
	return 2
}
