package hardware

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jetsetilly/testfmtx/hardware/clocks"
	"github.com/jetsetilly/testfmtx/ui"
)

const (
	scopeWidth  = 320
	scopeHeight = 128

	// one scope column summarises one audio sample period. a full sweep is
	// therefore about ten milliseconds of emulated time
	ticksPerColumn = clocks.TicksPerSample
)

var (
	scopeBackground = color.RGBA{R: 10, G: 10, B: 20, A: 255}
	scopeCarrier    = color.RGBA{R: 255, G: 160, B: 40, A: 255}
	scopeTone       = color.RGBA{R: 80, G: 220, B: 100, A: 255}
	scopeBaseline   = color.RGBA{R: 50, G: 50, B: 60, A: 255}
)

// Scope renders the two output pins of the chip as a pair of traces. the
// upper trace is the duty of the carrier pin over each column period and the
// lower trace is the duty of the tone pin. the rendered image is forwarded to
// the gui over the SetImage channel
type Scope struct {
	ui  *ui.UI
	img *image.RGBA

	col        int
	carrierSum int
	toneSum    int
	ct         int
}

func newScope(u *ui.UI) *Scope {
	sc := &Scope{
		ui:  u,
		img: image.NewRGBA(image.Rect(0, 0, scopeWidth, scopeHeight)),
	}
	sc.clear()
	return sc
}

func (sc *Scope) clear() {
	draw.Draw(sc.img, sc.img.Bounds(), image.NewUniform(scopeBackground), image.Point{}, draw.Src)
	for x := range scopeWidth {
		sc.img.SetRGBA(x, scopeHeight/4, scopeBaseline)
		sc.img.SetRGBA(x, 3*scopeHeight/4, scopeBaseline)
	}
	sc.col = 0
}

// step accumulates one tick of the two output pins
func (sc *Scope) step(carrier bool, tone bool) {
	if carrier {
		sc.carrierSum++
	}
	if tone {
		sc.toneSum++
	}
	sc.ct++
	if sc.ct < ticksPerColumn {
		return
	}

	// plot the column. duty zero is the bottom of the band and full duty the
	// top. a trace sitting on the centre of its band is a square wave
	half := scopeHeight / 2

	y := half - 1 - (sc.carrierSum*(half-2))/ticksPerColumn
	sc.img.SetRGBA(sc.col, y, scopeCarrier)

	y = scopeHeight - 1 - (sc.toneSum*(half-2))/ticksPerColumn
	sc.img.SetRGBA(sc.col, y, scopeTone)

	sc.carrierSum = 0
	sc.toneSum = 0
	sc.ct = 0

	sc.col++
	if sc.col >= scopeWidth {
		sc.PushRender()
		sc.clear()
	}
}

// PushRender forwards the current image to the gui. the send never blocks: if
// the gui has not consumed the previous image this one is dropped
func (sc *Scope) PushRender() {
	img := image.NewRGBA(sc.img.Bounds())
	copy(img.Pix, sc.img.Pix)

	select {
	case sc.ui.SetImage <- img:
	default:
	}
}
