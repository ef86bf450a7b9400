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

import (
	"fmt"

	"github.com/jetsetilly/testfmtx/hardware/clocks"
)

// Registers are the runtime configurable values of the chip
type Registers struct {
	// number of ticks in a 16th note. zero selects the compiled-in default
	// of clocks.TicksPer16th
	Tempo uint32
}

func (reg Registers) String() string {
	t := reg.Tempo
	if t == 0 {
		t = clocks.TicksPer16th
	}
	bpm := float64(clocks.Tick) * 60 / (float64(t) * 4)
	return fmt.Sprintf("tempo: %d ticks per 16th (%.1f BPM)", t, bpm)
}
