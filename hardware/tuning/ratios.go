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

// RatioScale is the fixed point scale factor of the values in the ratio
// table. a ratio equal to RatioScale means the reference pitch itself
const RatioScale = 65536

// equal tempered frequency ratios (multiplied by RatioScale) for the eight
// degrees of the major scale starting on the reference pitch. these are the
// only pitches the built-in melody uses so the hardware carries nothing more
//
// ratio = 65536 * 2^(semitones/12)
var ratios = map[int8]uint32{
	0:  65536,  // reference
	2:  73562,  // major 2nd
	4:  82570,  // major 3rd
	5:  87480,  // perfect 4th
	7:  98193,  // perfect 5th
	9:  110218, // major 6th
	11: 123715, // major 7th
	12: 131072, // octave
}

// Ratio returns the fixed point frequency ratio for a semitone offset from
// the reference pitch. offsets without a table entry return the reference
// ratio. this is hardware policy and not an error: an unmapped pitch plays
// the reference pitch rather than silence
func Ratio(pitch int8) uint32 {
	if r, ok := ratios[pitch]; ok {
		return r
	}
	return RatioScale
}
