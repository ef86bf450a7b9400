package hardware_test

import (
	"testing"

	"github.com/jetsetilly/testfmtx/hardware"
	"github.com/jetsetilly/testfmtx/hardware/clocks"
	"github.com/jetsetilly/testfmtx/test"
	"github.com/jetsetilly/testfmtx/ui"
)

func TestMachineEvents(t *testing.T) {
	u := ui.NewUI()
	m := hardware.Create(u)
	m.FM.Registers.Tempo = 8
	m.Pins.Enable = true

	// the builtin scale at 8 ticks per 16th
	for range 1 + 8*34 + 2*16 {
		m.Step()
	}

	ev := m.Events()
	test.ExpectSuccess(t, ev.EndPulse)
	test.ExpectSuccess(t, ev.NoteChange)

	// events are cleared on consumption
	ev = m.Events()
	test.ExpectEquality(t, ev.EndPulse, false)
	test.ExpectEquality(t, ev.NoteChange, false)
}

func TestMachineAudio(t *testing.T) {
	u := ui.NewUI()
	m := hardware.Create(u)

	for range clocks.TicksPerSample * 4 {
		m.Step()
	}

	// four sample periods is four mono 16bit samples
	buf := make([]uint8, 64)
	n, err := m.Audio.Read(buf)
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, n, 8)
}

func TestMachinePWMGenerator(t *testing.T) {
	u := ui.NewUI()
	m := hardware.Create(u)
	m.Pins.Enable = true
	m.SetPWMGenerator(128, 50)

	for range 128 * 4 {
		m.Step()
	}
	test.ExpectSuccess(t, m.FM.ExternalActive())

	// detaching the generator releases the pin and the override decays
	m.SetPWMGenerator(0, 0)
	for range 4096 {
		m.Step()
	}
	test.ExpectEquality(t, m.FM.ExternalActive(), false)
}

func TestMachineUserInput(t *testing.T) {
	u := ui.NewUI()
	m := hardware.Create(u)

	u.UserInput <- ui.Input{Action: ui.Enable}
	m.PollInput()
	test.ExpectSuccess(t, m.Pins.Enable)

	// a release does not toggle
	u.UserInput <- ui.Input{Action: ui.Enable, Release: true}
	m.PollInput()
	test.ExpectSuccess(t, m.Pins.Enable)

	// the pwm line follows the key
	u.UserInput <- ui.Input{Action: ui.PWMLine}
	m.PollInput()
	test.ExpectSuccess(t, m.Pins.PWMAudio)
	u.UserInput <- ui.Input{Action: ui.PWMLine, Release: true}
	m.PollInput()
	test.ExpectEquality(t, m.Pins.PWMAudio, false)
}
