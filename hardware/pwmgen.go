package hardware

// pwmGenerator produces a synthetic pulse-width modulated signal for the
// external audio input pin. it stands in for the off-board audio source when
// testing the external modulation path from the debugger
type pwmGenerator struct {
	period uint32
	high   uint32
	ct     uint32
}

func newPWMGenerator(period uint32, dutyPct uint32) *pwmGenerator {
	return &pwmGenerator{
		period: period,
		high:   period * dutyPct / 100,
	}
}

// tick returns the level of the generated line for this tick
func (g *pwmGenerator) tick() bool {
	v := g.ct < g.high
	g.ct++
	if g.ct >= g.period {
		g.ct = 0
	}
	return v
}
