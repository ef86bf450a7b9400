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

// doubler is the edge detect pulse generator behind the clock doubling
// trick: a pulse on every level change of its input. in the hardware the
// input is the system clock itself and the pulse train runs at twice the
// clock rate. in the emulation the chip feeds the doubler an internal toggle
// and advances the carrier an extra time on every pulse, which amounts to
// the same thing
type doubler struct {
	toggle bool
	prev   bool
}

func (d *doubler) reset() {
	d.toggle = false
	d.prev = false
}

// tick flips the internal toggle and reports whether an edge was seen. when
// the doubler is in use this is every tick
func (d *doubler) tick() bool {
	d.toggle = !d.toggle
	pulse := d.toggle != d.prev
	d.prev = d.toggle
	return pulse
}
