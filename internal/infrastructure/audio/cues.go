package audio

import (
	"time"

	"github.com/younwookim/spritecore/internal/domain/sprite"
)

// Cue returns the tones played for an effect. Effects without a sound
// (camera shake) return nil.
func Cue(e sprite.Effect) []Tone {
	switch e.Kind {
	case sprite.EffectFire:
		return []Tone{{Freq: 1200, Sweep: -800, Wave: WaveSquare, Duration: 70 * time.Millisecond, Gain: 0.25}}
	case sprite.EffectImpact:
		return []Tone{{Wave: WaveNoise, Duration: 60 * time.Millisecond, Gain: 0.3}}
	case sprite.EffectHurt:
		return []Tone{{Freq: 180, Sweep: -60, Wave: WaveSquare, Duration: 150 * time.Millisecond, Gain: 0.35}}
	case sprite.EffectDeath:
		// Noise burst followed by a falling tone
		return []Tone{
			{Wave: WaveNoise, Duration: 200 * time.Millisecond, Gain: 0.4},
			{Freq: 220, Sweep: -160, Wave: WaveSine, Duration: 250 * time.Millisecond, Gain: 0.4},
		}
	default:
		return nil
	}
}
