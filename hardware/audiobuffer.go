package hardware

import (
	"sync"

	"github.com/jetsetilly/testfmtx/hardware/clocks"
	"github.com/jetsetilly/testfmtx/hardware/mix"
)

// amplitude of the tone square wave before soft clipping
const audioAmplitude = 12000

// the buffer is capped to about half a second of audio. if the emulation runs
// ahead of the sound card the oldest samples are dropped
const maxBufferBytes = clocks.SampleFreq

// when the buffer drains below this the emulation is nudged to catch up
const lowWaterBytes = 4096

// AudioBuffer is an io.Reader implementation that forwards tone audio
// generated by the chip to something that can play it back (or store it, etc.)
//
// samples are mono, signed 16bit little-endian, at clocks.SampleFreq. the
// tone output pin is averaged over each sample period, which acts as a crude
// low pass filter on the square wave
type AudioBuffer struct {
	crit sync.Mutex
	data []uint8

	// called when the buffer is running low. wired to the limiter
	nudge func()

	// accumulation of the tone level over the current sample period
	sum int
	ct  int
}

// step accumulates one tick of the tone output. called from the emulation
// goroutine only
func (b *AudioBuffer) step(tone bool) {
	if tone {
		b.sum++
	}
	b.ct++
	if b.ct < clocks.TicksPerSample {
		return
	}

	v := int32(b.sum)*2*audioAmplitude/clocks.TicksPerSample - audioAmplitude
	s := mix.Clip(v)
	b.sum = 0
	b.ct = 0

	b.crit.Lock()
	defer b.crit.Unlock()

	b.data = append(b.data, uint8(s), uint8(s>>8))
	if len(b.data) > maxBufferBytes {
		b.data = b.data[len(b.data)-maxBufferBytes:]
	}
}

func (b *AudioBuffer) Read(buf []uint8) (int, error) {
	b.crit.Lock()
	defer b.crit.Unlock()

	n := min(len(b.data), len(buf))
	copy(buf, b.data[:n])
	b.data = b.data[n:]

	if len(b.data) < lowWaterBytes && b.nudge != nil {
		b.nudge()
	}

	// returning zero bytes is fine for the oto player. it pads the stream
	// with silence on underrun
	return n, nil
}

// drop any buffered audio. used on reset so stale samples from before the
// reset are not heard after it
func (b *AudioBuffer) flush() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.data = b.data[:0]
	b.sum = 0
	b.ct = 0
}
