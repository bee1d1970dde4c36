package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// LevelConfig is a character grid mapped to tiles
type LevelConfig struct {
	TileSize    int                          `json:"tileSize" yaml:"tileSize"`
	Rows        []string                     `json:"rows" yaml:"rows"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping" yaml:"tileMapping"`
}

type TileMappingConfig struct {
	Type  string `json:"type" yaml:"type"`
	Solid bool   `json:"solid" yaml:"solid"`
}

// Tile is one placed grid cell
type Tile struct {
	X, Y  float64
	Type  string
	Solid bool
}

var errEmptyLevel = errors.New("level has no rows")

// Validate checks the grid is rectangular and every character is mapped
func (l LevelConfig) Validate() error {
	if l.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d", l.TileSize)
	}
	if len(l.Rows) == 0 {
		return errEmptyLevel
	}
	width := utf8.RuneCountInString(l.Rows[0])
	for y, row := range l.Rows {
		cells := []rune(row)
		if len(cells) != width {
			return fmt.Errorf("row %d has width %d, want %d", y, len(cells), width)
		}
		for x, ch := range cells {
			if _, ok := l.TileMapping[string(ch)]; !ok {
				return fmt.Errorf("unmapped tile %q at %d,%d", ch, x, y)
			}
		}
	}
	return nil
}

// Size returns the level size in pixels
func (l LevelConfig) Size() (w, h int) {
	if len(l.Rows) == 0 {
		return 0, 0
	}
	return utf8.RuneCountInString(l.Rows[0]) * l.TileSize, len(l.Rows) * l.TileSize
}

// Tiles returns every mapped cell in row-major order.
// Columns count characters, not bytes.
func (l LevelConfig) Tiles() []Tile {
	var tiles []Tile
	for y, row := range l.Rows {
		for x, ch := range []rune(row) {
			m, ok := l.TileMapping[string(ch)]
			if !ok {
				continue
			}
			tiles = append(tiles, Tile{
				X:     float64(x * l.TileSize),
				Y:     float64(y * l.TileSize),
				Type:  m.Type,
				Solid: m.Solid,
			})
		}
	}
	return tiles
}
