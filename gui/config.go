package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/testfmtx/resources"
)

// window geometry is remembered between sessions

func onWindowOpen() error {
	content, err := resources.Read("window")
	if err != nil {
		return err
	}
	if content == "" {
		return nil
	}

	var x, y, w, h int

	n, err := fmt.Sscanf(content, "%d %d %d %d", &x, &y, &w, &h)
	if err != nil {
		return err
	}
	if n != 4 {
		return fmt.Errorf("window geometry is malformed")
	}

	ebiten.SetWindowPosition(x, y)
	ebiten.SetWindowSize(w, h)

	return nil
}

func onCloseWindow() error {
	x, y := ebiten.WindowPosition()
	w, h := ebiten.WindowSize()
	return resources.Write("window", fmt.Sprintf("%d %d %d %d", x, y, w, h))
}
