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

package melody_test

import (
	"testing"

	"github.com/jetsetilly/testfmtx/hardware/tuning"
	"github.com/jetsetilly/testfmtx/melody"
	"github.com/jetsetilly/testfmtx/test"
)

func TestScaleMelody(t *testing.T) {
	test.ExpectEquality(t, melody.Scale.Len(), 16)

	// first and last notes are the reference pitch. the last note is the
	// only quarter note
	test.ExpectEquality(t, melody.Scale.Note(0).Pitch(), int8(0))
	test.ExpectEquality(t, melody.Scale.Note(15).Pitch(), int8(0))
	test.ExpectEquality(t, melody.Scale.Note(15).Duration(), tuning.DurQuarter)

	// the peak of the scale is the octave
	test.ExpectEquality(t, melody.Scale.Note(7).Pitch(), int8(12))
	test.ExpectEquality(t, melody.Scale.Note(8).Pitch(), int8(12))

	// out of range reads return a rest
	test.ExpectSuccess(t, melody.Scale.Note(16).IsRest())
	test.ExpectSuccess(t, melody.Scale.Note(-1).IsRest())
}

func TestParse(t *testing.T) {
	mel, err := melody.Parse("C5 D5 E5/4 R/2 c6")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mel.Len(), 5)

	test.ExpectEquality(t, mel.Note(0).Pitch(), int8(0))
	test.ExpectEquality(t, mel.Note(0).Duration(), tuning.Dur8th)
	test.ExpectEquality(t, mel.Note(1).Pitch(), int8(2))
	test.ExpectEquality(t, mel.Note(2).Duration(), tuning.DurQuarter)
	test.ExpectSuccess(t, mel.Note(3).IsRest())
	test.ExpectEquality(t, mel.Note(3).Duration(), tuning.DurHalf)
	test.ExpectEquality(t, mel.Note(4).Pitch(), int8(12))
}

func TestParseAccidentals(t *testing.T) {
	mel, err := melody.Parse("C#5 Bb4")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mel.Note(0).Pitch(), int8(1))
	test.ExpectEquality(t, mel.Note(1).Pitch(), int8(-2))
}

func TestParseComments(t *testing.T) {
	mel, err := melody.Parse("; scale fragment\nC5 D5\n; another comment\nE5")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mel.Len(), 3)
}

func TestParseErrors(t *testing.T) {
	_, err := melody.Parse("")
	test.ExpectFailure(t, err)

	_, err = melody.Parse("H5")
	test.ExpectFailure(t, err)

	_, err = melody.Parse("C5/3")
	test.ExpectFailure(t, err)
}
