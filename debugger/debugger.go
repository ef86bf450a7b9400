package debugger

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jetsetilly/testfmtx/hardware"
	"github.com/jetsetilly/testfmtx/hardware/clocks"
	"github.com/jetsetilly/testfmtx/logger"
	"github.com/jetsetilly/testfmtx/melody"
	"github.com/jetsetilly/testfmtx/ui"
)

type input struct {
	s   string
	err error
}

type debugger struct {
	guiQuit chan bool
	sig     chan os.Signal
	input   chan input

	// this channel is passed to the debugger during creation via the UI type
	state chan ui.State

	machine *hardware.Machine

	// rule for stepping. by default (the field is nil) the step will move
	// forward one tick
	stepRule func() bool

	// printing styles
	styles styles
}

func (m *debugger) reset() {
	m.machine.Reset()
	fmt.Println(m.styles.debugger.Render("machine reset"))
	fmt.Println(m.styles.chip.Render(m.machine.FM.String()))
}

func (m *debugger) loadMelody(filename string) {
	tbl, err := melody.Load(filename)
	if err != nil {
		fmt.Println(m.styles.err.Render(err.Error()))
		return
	}

	m.machine.SetMelody(tbl)
	fmt.Println(m.styles.debugger.Render(
		fmt.Sprintf("%d notes from %s", tbl.Len(), filepath.Base(filename)),
	))
}

// step advances the emulation according to the current step rule. the rule is
// reset after the step has completed
//
// returns true if quit signal has been received
func (m *debugger) step() bool {
	// the number of ticks stepped over
	var ct int

	var done bool
	for !done {
		select {
		case <-m.sig:
			done = true
			continue // for loop
		case <-m.guiQuit:
			return true
		default:
		}

		m.machine.Step()
		ct++

		if m.stepRule == nil {
			done = true
		} else {
			done = m.stepRule()
		}
	}

	m.machine.Scope.PushRender()

	// report how many ticks were stepped if it is more than one
	if ct > 1 {
		fmt.Println(m.styles.debugger.Render(
			fmt.Sprintf("%d ticks stepped", ct),
		))
	}

	fmt.Println(m.styles.note.Render(m.machine.FM.Seq.Note().String()))
	fmt.Println(m.styles.chip.Render(m.machine.FM.String()))

	m.stepRule = nil

	return false
}

func (m *debugger) parseStepRule(args []string) bool {
	arg := strings.ToUpper(args[0])

	switch arg {
	case "NOTE":
		// step until the sequencer moves to another note or the melody ends
		idx := m.machine.FM.NoteIndex()
		m.stepRule = func() bool {
			return m.machine.FM.NoteIndex() != idx || m.machine.FM.EndPulse()
		}
	case "END":
		m.stepRule = func() bool {
			return m.machine.FM.EndPulse()
		}
	case "SAMPLE":
		// one audio sample period
		var ct int
		m.stepRule = func() bool {
			ct++
			return ct >= clocks.TicksPerSample
		}
	default:
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("cannot step by %s", args[0]),
			))
			return false
		}
		var ct int
		m.stepRule = func() bool {
			ct++
			return ct >= n
		}
	}

	return true
}

// returns true if quit signal has been received
func (m *debugger) run() bool {
	fmt.Println(m.styles.debugger.Render("emulation running"))

	// we measure the number of ticks in the time period of the running emulation
	startCt := m.machine.TickCount
	var startTime time.Time

	// sentinal errors
	var (
		endRunErr = errors.New("end run")
		quitErr   = errors.New("quit")
	)

	// hook is called once per audio sample period
	hook := func() error {
		select {
		case <-m.sig:
			return endRunErr
		case <-m.guiQuit:
			return quitErr
		default:
		}

		ev := m.machine.Events()
		if ev.EndPulse {
			fmt.Println(m.styles.debugger.Render("end of melody"))
		}

		return nil
	}

	startTime = time.Now()

	m.state <- ui.StateRunning
	err := m.machine.Run(nil, hook)
	m.state <- ui.StatePaused

	if errors.Is(err, quitErr) {
		return true
	}

	m.machine.Scope.PushRender()

	if errors.Is(err, endRunErr) {
		ct := m.machine.TickCount - startCt
		dur := time.Since(startTime).Seconds()
		fmt.Println(m.styles.debugger.Render(
			fmt.Sprintf("%d ticks in %.02f seconds (%.02f%% of full speed)",
				ct, dur, float64(ct)/dur/clocks.Tick*100),
		))
	} else if err != nil {
		fmt.Println(m.styles.err.Render(err.Error()))
	}

	// it's useful to see the state of the chip at the end of the run
	fmt.Println(m.styles.chip.Render(m.machine.FM.String()))

	return false
}

func (m *debugger) pins() {
	p := m.machine.Pins
	fmt.Println(m.styles.chip.Render(
		fmt.Sprintf("enable=%v loop=%v pwm=%v double=%v  status=%02x",
			p.Enable, p.Loop, p.PWMAudio, p.Double, m.machine.FM.StatusByte()),
	))
}

func (m *debugger) loop() {
	for {
		fmt.Printf("%s> ", m.machine.ShortString())

		var cmd []string

		select {
		case input := <-m.input:
			if input.err != nil {
				fmt.Println(m.styles.err.Render(input.err.Error()))
				return
			}
			cmd = strings.Fields(input.s)
			if len(cmd) == 0 {
				cmd = []string{"STEP"}
			}
		case <-m.sig:
			fmt.Print("\r")
			return
		case <-m.guiQuit:
			fmt.Print("\n")
			return
		}

		// apply any input pin changes made through the gui while we were
		// waiting at the prompt
		m.machine.PollInput()

		switch strings.ToUpper(cmd[0]) {
		case "R", "RUN":
			if m.run() {
				return
			}
		case "ST", "STEP":
			if len(cmd) > 1 {
				if !m.parseStepRule(cmd[1:]) {
					break // switch
				}
			}
			if m.step() {
				return
			}
		case "RESET":
			m.reset()
		case "CHIP":
			fmt.Println(m.styles.chip.Render(m.machine.FM.String()))
		case "SEQ":
			fmt.Println(m.styles.seq.Render(m.machine.FM.Seq.String()))
		case "PWM":
			fmt.Println(m.styles.pwm.Render(m.machine.FM.Dec.String()))
		case "REG":
			fmt.Println(m.styles.chip.Render(m.machine.FM.Registers.String()))
		case "TEMPO":
			if len(cmd) < 2 {
				fmt.Println(m.styles.chip.Render(m.machine.FM.Registers.String()))
				break // switch
			}
			n, err := strconv.Atoi(cmd[1])
			if err != nil || n < 0 {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("cannot use TEMPO %s", cmd[1]),
				))
				break // switch
			}
			m.machine.FM.Registers.Tempo = uint32(n)
			fmt.Println(m.styles.chip.Render(m.machine.FM.Registers.String()))
		case "ENABLE":
			m.machine.Pins.Enable = !m.machine.Pins.Enable
			m.pins()
		case "LOOP":
			m.machine.Pins.Loop = !m.machine.Pins.Loop
			m.pins()
		case "DOUBLE":
			m.machine.Pins.Double = !m.machine.Pins.Double
			m.pins()
		case "PINS":
			m.pins()
		case "MELODY":
			if len(cmd) < 2 {
				fmt.Println(m.styles.err.Render(
					"MELODY requires a melody file",
				))
				break // switch
			}
			m.loadMelody(cmd[1])
		case "PWMGEN":
			if len(cmd) < 2 {
				fmt.Println(m.styles.err.Render(
					"PWMGEN requires a duty percentage or OFF",
				))
				break // switch
			}
			if strings.ToUpper(cmd[1]) == "OFF" {
				m.machine.SetPWMGenerator(0, 0)
				fmt.Println(m.styles.debugger.Render("pwm generator detached"))
				break // switch
			}
			duty, err := strconv.Atoi(cmd[1])
			if err != nil || duty < 0 || duty > 100 {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("cannot use PWMGEN %s", cmd[1]),
				))
				break // switch
			}
			period := 128
			if len(cmd) > 2 {
				period, err = strconv.Atoi(cmd[2])
				if err != nil || period < 2 {
					fmt.Println(m.styles.err.Render(
						fmt.Sprintf("cannot use PWMGEN period %s", cmd[2]),
					))
					break // switch
				}
			}
			m.machine.SetPWMGenerator(uint32(period), uint32(duty))
			fmt.Println(m.styles.debugger.Render(
				fmt.Sprintf("pwm generator: %d%% duty, period %d ticks", duty, period),
			))
		case "LOG":
			logger.Tail(os.Stdout, -1)
		case "QUIT":
			return
		default:
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("unrecognised command: %s", strings.Join(cmd, " ")),
			))
		}
	}
}

const programName = "testfmtx"

func Launch(guiQuit chan bool, u *ui.UI, args []string) error {
	var melodyFile string
	var profile bool
	var enable bool
	var loop bool

	flgs := flag.NewFlagSet(programName, flag.ExitOnError)
	flgs.BoolVar(&profile, "profile", false, "create CPU profile for emulator")
	flgs.BoolVar(&enable, "enable", false, "raise the enable pin on startup")
	flgs.BoolVar(&loop, "loop", false, "raise the loop pin on startup")
	err := flgs.Parse(args)
	if err != nil {
		return err
	}
	args = flgs.Args()

	if len(args) == 1 {
		melodyFile = args[0]
	} else if len(args) > 1 {
		return fmt.Errorf("too many arguments to debugger")
	}

	m := &debugger{
		guiQuit: guiQuit,
		state:   u.State,
		sig:     make(chan os.Signal, 1),
		input:   make(chan input, 1),
		styles:  newStyles(),
	}
	m.machine = hardware.Create(u)
	m.machine.Pins.Enable = enable
	m.machine.Pins.Loop = loop

	signal.Notify(m.sig, syscall.SIGINT)

	go func() {
		r := bufio.NewReader(os.Stdin)
		b := make([]byte, 256)
		for {
			n, err := r.Read(b)
			select {
			case m.input <- input{
				s:   strings.TrimSpace(string(b[:n])),
				err: err,
			}:
			default:
			}
		}
	}()

	if melodyFile != "" {
		m.loadMelody(melodyFile)
	}

	if profile {
		f, err := os.Create("cpu.profile")
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			err := f.Close()
			if err != nil {
				logger.Log(logger.Allow, "performance", err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	m.loop()

	return nil
}
