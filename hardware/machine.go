package hardware

import (
	"fmt"

	"github.com/jetsetilly/testfmtx/hardware/clocks"
	"github.com/jetsetilly/testfmtx/hardware/fmtx"
	"github.com/jetsetilly/testfmtx/hardware/sequencer"
	"github.com/jetsetilly/testfmtx/melody"
	"github.com/jetsetilly/testfmtx/ui"
)

// the hook function supplied to Run() is called once per audio sample period.
// events raised by the chip between hook calls are latched in Events
const hookInterval = clocks.TicksPerSample

// the number of audio samples produced between limiter waits
const limiterBlock = 256

// Machine wraps the chip with everything needed to run it interactively: the
// input pin levels, the audio buffer, the scope and the speed limiter
type Machine struct {
	FM *fmtx.FMTX

	// the input pin levels presented to the chip on every tick. the
	// debugger and the gui flip these directly
	Pins fmtx.Inputs

	Audio *AudioBuffer
	Scope *Scope

	ui   *ui.UI
	lmtr *limiter

	// when non-nil the generator drives the external pwm audio pin,
	// overriding the level in Pins
	pwm *pwmGenerator

	// number of ticks since the last reset
	TickCount uint64

	events Events
}

// Events latches chip activity between hook calls during Run()
type Events struct {
	EndPulse   bool
	NoteChange bool
}

func Create(u *ui.UI) *Machine {
	m := &Machine{
		FM:    fmtx.Create(melody.Scale),
		Audio: &AudioBuffer{},
		Scope: newScope(u),
		ui:    u,
		lmtr:  newLimiter(float64(clocks.SampleFreq) / limiterBlock),
	}
	m.Audio.nudge = m.lmtr.Nudge

	if u.RegisterAudio != nil {
		select {
		case u.RegisterAudio <- m.Audio:
		default:
		}
	}

	return m
}

// Reset the chip to its power-on state. the input pin levels are switches and
// keep their positions across a reset
func (m *Machine) Reset() {
	m.FM.Reset()
	m.Audio.flush()
	m.Scope.clear()
	m.TickCount = 0
	m.events = Events{}
}

// SetMelody replaces the melody table, resetting the chip
func (m *Machine) SetMelody(table sequencer.Table) {
	m.FM.SetTable(table)
	m.Audio.flush()
	m.TickCount = 0
}

// SetPWMGenerator attaches a synthetic signal to the external pwm audio pin.
// a period of zero detaches the generator and returns the pin to direct
// control
func (m *Machine) SetPWMGenerator(period uint32, dutyPct uint32) {
	if period == 0 {
		m.pwm = nil
		m.Pins.PWMAudio = false
		return
	}
	m.pwm = newPWMGenerator(period, dutyPct)
}

// Step the machine by one tick
func (m *Machine) Step() {
	if m.pwm != nil {
		m.Pins.PWMAudio = m.pwm.tick()
	}

	prevIndex := m.FM.NoteIndex()
	m.FM.Step(m.Pins)
	m.TickCount++

	m.Audio.step(m.FM.ToneOut())
	m.Scope.step(m.FM.CarrierOut(), m.FM.ToneOut())

	if m.FM.EndPulse() {
		m.events.EndPulse = true
	}
	if m.FM.NoteIndex() != prevIndex {
		m.events.NoteChange = true
	}
}

// Events returns and clears the latched chip events
func (m *Machine) Events() Events {
	e := m.events
	m.events = Events{}
	return e
}

// Run the machine until the hook returns an error or the stop channel yields.
// the hook is called once per audio sample period
func (m *Machine) Run(stop chan bool, hook func() error) error {
	var samples int

	for {
		select {
		case <-stop:
			return nil
		default:
		}

		m.PollInput()

		for range hookInterval {
			m.Step()
		}

		samples++
		if samples >= limiterBlock {
			m.lmtr.Wait()
			samples = 0
		}

		if err := hook(); err != nil {
			return err
		}
	}
}

// PollInput drains any pending user input from the gui and applies it to the
// input pins
func (m *Machine) PollInput() {
	for {
		select {
		case inp := <-m.ui.UserInput:
			m.applyInput(inp)
		default:
			return
		}
	}
}

func (m *Machine) applyInput(inp ui.Input) {
	switch inp.Action {
	case ui.Enable:
		if !inp.Release {
			m.Pins.Enable = !m.Pins.Enable
		}
	case ui.Loop:
		if !inp.Release {
			m.Pins.Loop = !m.Pins.Loop
		}
	case ui.Double:
		if !inp.Release {
			m.Pins.Double = !m.Pins.Double
		}
	case ui.PWMLine:
		// the pin follows the key unless the generator owns it
		if m.pwm == nil {
			m.Pins.PWMAudio = !inp.Release
		}
	}
}

// ShortString is used for the debugger prompt
func (m *Machine) ShortString() string {
	return fmt.Sprintf("T%d %s", m.TickCount, m.FM.Seq.State())
}
