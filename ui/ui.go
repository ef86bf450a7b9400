// Package ui is the connective tissue between the debugger and the gui. the
// two run in different goroutines and communicate only through the channels
// in the UI type.
package ui

import (
	"image"
	"io"
)

// State of the emulation as seen by the gui. it affects whether audio is
// being consumed and how the scope image is presented
type State int

const (
	StatePaused State = iota
	StateRunning
)

type UI struct {
	State         chan State
	SetImage      chan *image.RGBA
	RegisterAudio chan io.Reader
	UserInput     chan Input
}

func NewUI() *UI {
	return &UI{
		State:     make(chan State, 1),
		SetImage:  make(chan *image.RGBA, 1),
		UserInput: make(chan Input, 1),
	}
}

// WithAudio adds the audio registration channel. a UI without audio is used
// for headless testing
func (u *UI) WithAudio() *UI {
	u.RegisterAudio = make(chan io.Reader, 1)
	return u
}
