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

package dds

import "fmt"

// DisablePolicy controls what happens to an accumulator on ticks when it is
// not enabled
type DisablePolicy int

const (
	// the accumulator freezes and the output holds its last level. used by
	// the carrier path, where the carrier must stay on the air even when the
	// melody is not playing
	Hold DisablePolicy = iota

	// the accumulator is forced to zero on every disabled tick and the output
	// goes to the silent (low) level. used by the tone path
	ResetToZero
)

// Accumulator is a fixed-width phase accumulator. the zero value is an
// accumulator with the Hold disable policy
type Accumulator struct {
	policy DisablePolicy
	phase  uint32
}

func NewAccumulator(policy DisablePolicy) *Accumulator {
	return &Accumulator{
		policy: policy,
	}
}

func (ac *Accumulator) String() string {
	return fmt.Sprintf("phase=%08x out=%d", ac.phase, ac.outputBit())
}

// Reset the accumulator phase. the disable policy is unaffected
func (ac *Accumulator) Reset() {
	ac.phase = 0
}

// Phase returns the current value of the accumulator
func (ac *Accumulator) Phase() uint32 {
	return ac.phase
}

func (ac *Accumulator) outputBit() uint8 {
	return uint8(ac.phase >> 31)
}

// Tick advances the accumulator by increment and returns the output level.
// when enabled is false the result depends on the disable policy given at
// creation
func (ac *Accumulator) Tick(increment uint32, enabled bool) bool {
	if enabled {
		ac.phase += increment
	} else if ac.policy == ResetToZero {
		ac.phase = 0
	}
	return ac.phase&0x80000000 == 0x80000000
}
