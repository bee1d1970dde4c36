// Package audio turns effect lists into synthesized sound through beep.
package audio

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/spritecore/internal/domain/sprite"
	"github.com/younwookim/spritecore/internal/infrastructure/config"
)

// maxVoices caps the cues mixed in one Play call
const maxVoices = 8

// Dispatcher plays the sound cue of every effect it is given.
// Until Init succeeds every call is a no-op.
type Dispatcher struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	buffer      time.Duration
	volume      float64
	enabled     bool
	initialized bool
	mixer       *beep.Mixer
	rng         *rand.Rand
}

// NewDispatcher creates a dispatcher from cfg
func NewDispatcher(cfg config.AudioConfig) *Dispatcher {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	buffer := time.Duration(cfg.BufferMs) * time.Millisecond
	if buffer <= 0 {
		buffer = 100 * time.Millisecond
	}
	return &Dispatcher{
		rate:    beep.SampleRate(rate),
		buffer:  buffer,
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		mixer:   &beep.Mixer{},
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Init opens the speaker. Disabled dispatchers skip it.
func (d *Dispatcher) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized || !d.enabled {
		return nil
	}
	if err := speaker.Init(d.rate, d.rate.N(d.buffer)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(newVolume(d.mixer, d.volume))
	d.initialized = true
	return nil
}

// Ready reports whether sound is actually played
func (d *Dispatcher) Ready() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.initialized
}

// Play queues the cues for fx
func (d *Dispatcher) Play(fx []sprite.Effect) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return
	}

	streams := d.streamers(fx)
	if len(streams) == 0 {
		return
	}
	speaker.Lock()
	d.mixer.Add(streams...)
	speaker.Unlock()
}

// streamers renders the cues of fx, at most maxVoices of them
func (d *Dispatcher) streamers(fx []sprite.Effect) []beep.Streamer {
	var out []beep.Streamer
	for _, e := range fx {
		tones := Cue(e)
		if len(tones) == 0 {
			continue
		}
		parts := make([]beep.Streamer, 0, len(tones))
		for _, t := range tones {
			parts = append(parts, t.Streamer(d.rate, d.rng))
		}
		out = append(out, beep.Seq(parts...))
		if len(out) == maxVoices {
			break
		}
	}
	return out
}

// Close silences everything still playing
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return
	}
	speaker.Lock()
	d.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	d.initialized = false
}
