package config

// DisplayConfig is the root config for display.yaml
type DisplayConfig struct {
	Title        string      `json:"title" yaml:"title"`
	ScreenWidth  int         `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int         `json:"screenHeight" yaml:"screenHeight"`
	Scale        int         `json:"scale" yaml:"scale"`
	Framerate    int         `json:"framerate" yaml:"framerate"`
	Debug        DebugConfig `json:"debug" yaml:"debug"`
	Audio        AudioConfig `json:"audio" yaml:"audio"`
	Assets       AssetConfig `json:"assets" yaml:"assets"`
}

// DefaultDisplay returns the display settings used for missing keys
func DefaultDisplay() *DisplayConfig {
	return &DisplayConfig{
		Title:        "spritecore",
		ScreenWidth:  800,
		ScreenHeight: 400,
		Scale:        1,
		Framerate:    60,
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
			BufferMs:   100,
		},
	}
}

type DebugConfig struct {
	BoundingBoxes bool `json:"boundingBoxes" yaml:"boundingBoxes"`
}

type AudioConfig struct {
	Enabled    bool    `json:"enabled" yaml:"enabled"`
	SampleRate int     `json:"sampleRate" yaml:"sampleRate"`
	Volume     float64 `json:"volume" yaml:"volume"` // 0..1
	BufferMs   int     `json:"bufferMs" yaml:"bufferMs"`
}

// AssetConfig points at an optional directory of PNG frames.
// Keys without a file fall back to generated placeholders.
type AssetConfig struct {
	Dir   string            `json:"dir" yaml:"dir"`
	Files map[string]string `json:"files" yaml:"files"` // frame key -> file name
}

type CameraConfig struct {
	// Strategy is one of "simple", "bounded", "lerp" or "fixed"
	Strategy   string  `json:"strategy" yaml:"strategy"`
	Lerp       float64 `json:"lerp" yaml:"lerp"`
	ShakeDecay float64 `json:"shakeDecay" yaml:"shakeDecay"`
}

type PositionConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}
