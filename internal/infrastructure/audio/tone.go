package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// oscillator produces a fixed-length wave whose frequency slides linearly
// from freq to freq+sweep
type oscillator struct {
	freq     float64
	sweep    float64
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
	phase    float64
	position int
	duration int
}

func newOscillator(t Tone, rate beep.SampleRate, rng *rand.Rand) *oscillator {
	return &oscillator{
		freq:     t.Freq,
		sweep:    t.Sweep,
		wave:     t.Wave,
		rate:     rate,
		rng:      rng,
		duration: rate.N(t.Duration),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		// Linear release over the whole tone
		val *= 1 - float64(o.position)/float64(o.duration)
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Tone describes a synthesized cue
type Tone struct {
	Freq     float64
	Sweep    float64
	Wave     Wave
	Duration time.Duration
	Gain     float64 // 0..1
}

// Streamer renders t at rate
func (t Tone) Streamer(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return newVolume(newOscillator(t, rate, rng), t.Gain)
}

// newVolume wraps s in a volume effect; zero volume is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
