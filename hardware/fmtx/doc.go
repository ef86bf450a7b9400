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

// Package fmtx implements the FM melody transmitter. the chip plays a stored
// melody on two outputs at once: a frequency modulated carrier, where the
// pitch of the current note deviates the carrier from its centre frequency,
// and a direct audio-frequency square wave.
//
// An external PWM encoded audio signal can substitute for the melody as the
// carrier's modulation source. whenever the duty cycle decoder is producing
// valid samples the carrier follows the external audio and the melody's
// carrier mapping is ignored. the tone output always follows the melody.
//
// Everything in the chip advances in lockstep, once per call to Step(). the
// only input not synchronised to that clock is the PWM line, which is passed
// through the decoder's synchroniser before use.
//
// The pin assignment matches the original hardware:
//
//	in[0]  enable     out[0]  carrier
//	in[1]  loop       out[1]  tone
//	in[2]  pwm audio  out[2]  playing
//	in[3]  double     out[3]  end pulse
//	                  out[7:4] note index (low nibble)
package fmtx
