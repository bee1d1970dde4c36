package controller

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ScoreCounter accumulates the weighted score
type ScoreCounter struct {
	score      int
	multiplier int
}

// NewScoreCounter creates a counter at zero with multiplier 1
func NewScoreCounter() *ScoreCounter {
	return &ScoreCounter{multiplier: 1}
}

// Add adds delta*multiplier to the score and remembers the multiplier
func (c *ScoreCounter) Add(delta, multiplier int) {
	c.score += delta * multiplier
	c.multiplier = multiplier
}

// Score returns the total
func (c *ScoreCounter) Score() int { return c.score }

// Multiplier returns the last multiplier passed to Add
func (c *ScoreCounter) Multiplier() int { return c.multiplier }

// Text returns the score zero-padded to 11 digits
func (c *ScoreCounter) Text() string { return fmt.Sprintf("%011d", c.score) }

// MultiplierText returns the multiplier label
func (c *ScoreCounter) MultiplierText() string { return fmt.Sprintf("x%d", c.multiplier) }

// Level returns the level derived from the multiplier
func (c *ScoreCounter) Level() int { return c.multiplier / 10 }

// LevelText returns the level label
func (c *ScoreCounter) LevelText() string { return fmt.Sprintf("Level %d", c.Level()) }

// Colour returns the fully saturated colour whose hue is the multiplier
func (c *ScoreCounter) Colour() color.RGBA {
	hue := float64(c.multiplier % 360)
	if hue < 0 {
		hue += 360
	}
	r, g, b := colorful.Hsv(hue, 1, 1).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Reset zeroes the score and the multiplier
func (c *ScoreCounter) Reset() {
	c.score = 0
	c.multiplier = 1
}
