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

// Package dds implements the direct digital synthesis primitive used by both
// output paths of the transmitter: a 32bit phase accumulator whose most
// significant bit is the output waveform.
//
// The frequency of the output is a simple function of the phase increment
// added to the accumulator on every tick:
//
//	freq = increment / 2^32 * tickrate
//
// Wraparound of the accumulator is the mechanism by which the waveform
// repeats. It is intentional and not an error condition.
package dds
