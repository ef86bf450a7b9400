package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/testfmtx/logger"
	"github.com/jetsetilly/testfmtx/ui"
	"github.com/jetsetilly/testfmtx/version"
	input "github.com/quasilyte/ebitengine-input"
)

type gui struct {
	started bool

	endGui chan bool
	u      *ui.UI

	state ui.State
	audio *audioPlayer

	image  *ebiten.Image
	width  int
	height int

	inputHandler *input.Handler
	inputSystem  input.System
}

const (
	ActionEnable  = input.Action(ui.Enable)
	ActionLoop    = input.Action(ui.Loop)
	ActionDouble  = input.Action(ui.Double)
	ActionPWMLine = input.Action(ui.PWMLine)
)

func (g *gui) initialise() {
	keymap := input.Keymap{
		ActionEnable:  {input.KeyE, input.KeyEnter},
		ActionLoop:    {input.KeyL},
		ActionDouble:  {input.KeyD},
		ActionPWMLine: {input.KeyGamepadA, input.KeySpace},
	}
	g.inputHandler = g.inputSystem.NewHandler(uint8(0), keymap)
	g.started = true
}

func (g *gui) input() {
	g.inputSystem.Update()

	var inp ui.Input

	if g.inputHandler.ActionIsJustPressed(ActionEnable) {
		inp = ui.Input{Action: ui.Enable}
	}
	if g.inputHandler.ActionIsJustPressed(ActionLoop) {
		inp = ui.Input{Action: ui.Loop}
	}
	if g.inputHandler.ActionIsJustPressed(ActionDouble) {
		inp = ui.Input{Action: ui.Double}
	}
	if g.inputHandler.ActionIsJustPressed(ActionPWMLine) {
		inp = ui.Input{Action: ui.PWMLine}
	}
	if g.inputHandler.ActionIsJustReleased(ActionPWMLine) {
		inp = ui.Input{Action: ui.PWMLine, Release: true}
	}

	if inp.Action != ui.Nothing {
		select {
		case g.u.UserInput <- inp:
		default:
		}
	}
}

func (g *gui) Update() error {
	if !g.started {
		g.initialise()
	}

	g.input()

	// change state if necessary
	select {
	case g.state = <-g.u.State:
		if g.audio != nil {
			g.audio.setState(g.state)
		}
	default:
	}

	select {
	case <-g.endGui:
		if g.audio != nil {
			g.audio.close()
		}
		return ebiten.Termination
	case img := <-g.u.SetImage:
		dim := img.Bounds()
		if g.image == nil || g.image.Bounds() != dim {
			g.width = dim.Dx()
			g.height = dim.Dy()
			g.image = ebiten.NewImage(g.width, g.height)
		}
		g.image.WritePixels(img.Pix)
	default:
	}
	return nil
}

const (
	pixelWidth = 2
)

func (g *gui) Draw(screen *ebiten.Image) {
	if g.image != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(pixelWidth, 1)
		screen.DrawImage(g.image, op)
	}
}

func (g *gui) Layout(width, height int) (int, int) {
	if g.image != nil {
		return g.width * pixelWidth, g.height
	}
	return width, height
}

func Launch(endGui chan bool, u *ui.UI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g := &gui{
		endGui: endGui,
		u:      u,
	}

	g.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	if err := onWindowOpen(); err != nil {
		logger.Log(logger.Allow, "gui", err)
	}
	defer func() {
		if err := onCloseWindow(); err != nil {
			logger.Log(logger.Allow, "gui", err)
		}
	}()

	if u.RegisterAudio != nil {
		g.audio = createAudioPlayer(u)
	}

	return ebiten.RunGame(g)
}
