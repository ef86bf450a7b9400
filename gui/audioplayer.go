package gui

import (
	"io"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/testfmtx/hardware/clocks"
	"github.com/jetsetilly/testfmtx/ui"
)

type audioPlayer struct {
	p *oto.Player
	r io.Reader
}

func (s *audioPlayer) Read(buf []uint8) (int, error) {
	return s.r.Read(buf)
}

func createAudioPlayer(u *ui.UI) *audioPlayer {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   clocks.SampleFreq,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})

	if err != nil {
		panic(err)
	}

	<-ready

	s := &audioPlayer{
		r: <-u.RegisterAudio,
	}
	s.p = ctx.NewPlayer(s)
	s.p.Play()

	return s
}

func (s *audioPlayer) setState(state ui.State) {
	if s.p == nil {
		return
	}
	if state == ui.StatePaused {
		s.p.Pause()
	} else {
		s.p.Play()
	}
}

func (s *audioPlayer) close() {
	if s.p != nil {
		s.p.Close()
	}
}
