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

package tuning_test

import (
	"testing"

	"github.com/jetsetilly/testfmtx/hardware/tuning"
	"github.com/jetsetilly/testfmtx/test"
)

func TestNoteWord(t *testing.T) {
	n := tuning.NewNote(-5, tuning.DurQuarter)
	test.ExpectEquality(t, n.Pitch(), int8(-5))
	test.ExpectEquality(t, n.Duration(), tuning.DurQuarter)
	test.ExpectFailure(t, n.IsRest())

	r := tuning.NewRest(tuning.Dur8th)
	test.ExpectSuccess(t, r.IsRest())
	test.ExpectEquality(t, r.Duration(), tuning.Dur8th)
}

func TestMultipliers(t *testing.T) {
	test.ExpectEquality(t, tuning.NewNote(0, tuning.Dur16th).Multiplier(), uint32(1))
	test.ExpectEquality(t, tuning.NewNote(0, tuning.Dur8th).Multiplier(), uint32(2))
	test.ExpectEquality(t, tuning.NewNote(0, tuning.DurQuarter).Multiplier(), uint32(4))
	test.ExpectEquality(t, tuning.NewNote(0, tuning.DurHalf).Multiplier(), uint32(8))
	test.ExpectEquality(t, tuning.NewNote(0, tuning.DurWhole).Multiplier(), uint32(16))
	test.ExpectEquality(t, tuning.NewNote(0, tuning.DurDotted8th).Multiplier(), uint32(3))

	// unrecognised codes play as an 8th note
	test.ExpectEquality(t, tuning.NewNote(0, 0x3f).Multiplier(), uint32(2))
	test.ExpectEquality(t, tuning.NewNote(0, 17).Multiplier(), uint32(2))
}

func TestRatios(t *testing.T) {
	// reference points of the equal tempered table
	test.ExpectEquality(t, tuning.Ratio(0), uint32(65536))
	test.ExpectEquality(t, tuning.Ratio(12), uint32(131072))
	test.ExpectEquality(t, tuning.Ratio(7), uint32(98193))

	// unmapped pitches default to the reference ratio, not to silence
	test.ExpectEquality(t, tuning.Ratio(1), uint32(65536))
	test.ExpectEquality(t, tuning.Ratio(-3), uint32(65536))
	test.ExpectEquality(t, tuning.Ratio(127), uint32(65536))
}
