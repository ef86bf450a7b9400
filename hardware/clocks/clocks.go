package clocks

const Mhz = 1000000

// the transmitter is designed around a 50Mhz system clock. every component in
// the hardware package advances once per tick of this clock
const Tick = 50 * Mhz

// the default tempo is 120BPM, meaning eight 16th notes per second. the
// sequencer multiplies this by the duration multiplier of the current note
//
// a runtime tempo register value of zero causes the sequencer to fall back to
// this value
const TicksPer16th = Tick / 8

// the rate at which the tone output is sampled for audio playback. the tone
// level is averaged over Tick/SampleFreq ticks for every sample produced
const SampleFreq = 31250

const TicksPerSample = Tick / SampleFreq
