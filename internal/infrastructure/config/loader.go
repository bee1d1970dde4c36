package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display *DisplayConfig
	Shooter *ShooterConfig
	Chase   *ChaseConfig
}

// Loader loads game configuration from YAML or JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load decodes the named file into out.
// .yaml and .yml files are decoded as YAML, everything else as JSON.
func (l *Loader) Load(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	switch path.Ext(name) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, out)
	default:
		err = json.Unmarshal(data, out)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadDisplay loads display.yaml
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	cfg := DefaultDisplay()
	if err := l.Load("display.yaml", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadShooter loads shooter.yaml
func (l *Loader) LoadShooter() (*ShooterConfig, error) {
	var cfg ShooterConfig
	if err := l.Load("shooter.yaml", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadChase loads chase.yaml and validates its level
func (l *Loader) LoadChase() (*ChaseConfig, error) {
	var cfg ChaseConfig
	if err := l.Load("chase.yaml", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Level.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level in chase.yaml: %w", err)
	}
	return &cfg, nil
}

// LoadAll loads all configurations (display, shooter, chase)
func (l *Loader) LoadAll() (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	shooter, err := l.LoadShooter()
	if err != nil {
		return nil, err
	}

	chase, err := l.LoadChase()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Display: display,
		Shooter: shooter,
		Chase:   chase,
	}, nil
}
