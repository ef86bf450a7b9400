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
	"strings"

	"github.com/jetsetilly/testfmtx/hardware/dds"
	"github.com/jetsetilly/testfmtx/hardware/pwm"
	"github.com/jetsetilly/testfmtx/hardware/sequencer"
)

// Inputs are the chip's input pins, sampled once per tick. all of them are
// levels rather than pulses
type Inputs struct {
	// start/stop the melody. a rising edge restarts from the first note
	Enable bool

	// wrap from the last note to the first rather than stopping
	Loop bool

	// the externally timed PWM audio line
	PWMAudio bool

	// advance the carrier at twice the tick rate
	Double bool
}

// FMTX is the FM melody transmitter chip
type FMTX struct {
	Seq *sequencer.Sequencer
	Dec *pwm.Decoder

	// runtime configurable registers
	Registers Registers

	carrier *dds.Accumulator
	tone    *dds.Accumulator

	cmap carrierMapper
	sel  selector
	dbl  doubler

	carrierOut bool
	toneOut    bool
}

// Create is the preferred method of initialisation for the FMTX chip. the
// melody table is injected and never copied: it is owned by the caller and
// must not change while the chip is running
func Create(table sequencer.Table) *FMTX {
	fm := &FMTX{
		Seq:     sequencer.NewSequencer(table),
		Dec:     pwm.NewDecoder(pwm.ExpectedPeriod),
		carrier: dds.NewAccumulator(dds.Hold),
		tone:    dds.NewAccumulator(dds.ResetToZero),
	}
	fm.Reset()
	return fm
}

func (fm *FMTX) Label() string {
	return "FMTX"
}

func (fm *FMTX) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s  ", fm.Seq))
	s.WriteString(fmt.Sprintf("carrier=%08x ", fm.sel.selected(fm.cmap.increment)))
	if fm.sel.active {
		s.WriteString("(ext) ")
	}
	s.WriteString(fmt.Sprintf("out=%d/%d", boolToBit(fm.carrierOut), boolToBit(fm.toneOut)))
	return s.String()
}

// SetTable replaces the melody table. the chip is reset as a side effect, as
// if the melody ROM had been physically swapped
func (fm *FMTX) SetTable(table sequencer.Table) {
	fm.Seq.SetTable(table)
	fm.Reset()
}

// Reset the chip to its power-on state. reset is asynchronous in the
// hardware and may be called between any two ticks
func (fm *FMTX) Reset() {
	fm.Seq.Reset()
	fm.Dec.Reset()
	fm.carrier.Reset()
	fm.tone.Reset()
	fm.cmap.reset()
	fm.sel.reset()
	fm.dbl.reset()
	fm.carrierOut = false
	fm.toneOut = false
}

// Step advances every component of the chip by one tick
func (fm *FMTX) Step(in Inputs) {
	// runtime tempo register. zero selects the compiled-in default
	fm.Seq.SetTempo(fm.Registers.Tempo)

	// the decoder and sequencer run first. each owns its state exclusively
	// so the order of the two does not matter
	fm.Dec.Tick(in.PWMAudio, in.Enable)
	fm.Seq.Tick(in.Enable, in.Loop)

	// note to increment mapping for both paths. the carrier mapping is
	// registered; the tone mapping is combinatorial
	fm.cmap.tick(fm.Seq.Note(), fm.Seq.Valid())
	tinc := toneIncrement(fm.Seq.Note(), fm.Seq.Valid())

	// modulation arbitration for the carrier path
	fm.sel.tick(fm.Dec.SampleValid(), fm.Dec.Sample())
	cinc := fm.sel.selected(fm.cmap.increment)

	// the carrier is always on the air: the accumulator never disables.
	// with the doubler engaged it advances twice per tick
	fm.carrierOut = fm.carrier.Tick(cinc, true)
	if in.Double && fm.dbl.tick() {
		fm.carrierOut = fm.carrier.Tick(cinc, true)
	}

	// the tone output is gated to silence for rests and between notes. the
	// reset-to-zero policy holds the output at the silent level
	gate := fm.Seq.Valid() && !fm.Seq.Note().IsRest()
	fm.toneOut = fm.tone.Tick(tinc, gate)
}

// CarrierOut is the frequency modulated carrier output pin
func (fm *FMTX) CarrierOut() bool {
	return fm.carrierOut
}

// ToneOut is the audio frequency tone output pin
func (fm *FMTX) ToneOut() bool {
	return fm.toneOut
}

// Playing mirrors the sequencer's playing output
func (fm *FMTX) Playing() bool {
	return fm.Seq.Playing()
}

// EndPulse mirrors the sequencer's end pulse output
func (fm *FMTX) EndPulse() bool {
	return fm.Seq.EndPulse()
}

// NoteIndex returns the sequencer's position in the melody, for status
// reporting
func (fm *FMTX) NoteIndex() int {
	return fm.Seq.Index()
}

// CarrierPhaseIncrement returns the increment that fed the carrier
// accumulator this tick, for status reporting
func (fm *FMTX) CarrierPhaseIncrement() uint32 {
	return fm.sel.selected(fm.cmap.increment)
}

// ExternalActive is true while the PWM audio source is selected in
// preference to the melody
func (fm *FMTX) ExternalActive() bool {
	return fm.sel.active
}

// StatusByte packs the output pins as the original hardware presents them
func (fm *FMTX) StatusByte() uint8 {
	var b uint8
	if fm.carrierOut {
		b |= 0x01
	}
	if fm.toneOut {
		b |= 0x02
	}
	if fm.Seq.Playing() {
		b |= 0x04
	}
	if fm.Seq.EndPulse() {
		b |= 0x08
	}
	b |= uint8(fm.Seq.Index()&0x0f) << 4
	return b
}

func boolToBit(b bool) int {
	if b {
		return 1
	}
	return 0
}
