package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/spritecore/internal/application/game"
	"github.com/younwookim/spritecore/internal/application/scene"
	"github.com/younwookim/spritecore/internal/application/scene/chase"
	"github.com/younwookim/spritecore/internal/application/scene/shooter"
	"github.com/younwookim/spritecore/internal/infrastructure/assets"
	"github.com/younwookim/spritecore/internal/infrastructure/audio"
	"github.com/younwookim/spritecore/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	mode := flag.String("game", "shooter", "Scene to run: shooter or chase")
	seed := flag.Int64("seed", 0, "Spawner seed for the shooter (0 uses the clock)")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	display := cfg.Display

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	atlas := assets.NewAtlas()
	if err := atlas.Load(display.Assets); err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}

	var sink scene.Sink
	sound := audio.NewDispatcher(display.Audio)
	if err := sound.Init(); err != nil {
		log.Printf("Audio disabled: %v", err)
	} else if sound.Ready() {
		sink = sound
		defer sound.Close()
	}

	var initial scene.Scene
	switch *mode {
	case "shooter":
		s := shooter.New(cfg.Shooter, display, atlas, sink)
		s.SetSeed(*seed)
		log.Printf("Shooter seed: %d", *seed)
		initial = s
	case "chase":
		initial = chase.New(cfg.Chase, display, atlas, sink)
	default:
		log.Fatalf("Unknown game %q (want shooter or chase)", *mode)
	}

	g := game.New(initial, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
