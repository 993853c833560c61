package main

import (
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/lanestrike/assets"
	"github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/fonts"
	"github.com/automoto/lanestrike/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	QuitRequested() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(seed int64) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(seed),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Arena.Width, config.Arena.Height)
	return config.Arena.Width, config.Arena.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in tuning")
	seed := flag.Int64("seed", 0, "spawn RNG seed (0 picks one from the clock)")
	skipIntro := flag.Bool("skip-intro", false, "start directly at level 1")
	flag.Parse()

	if err := assets.LoadArenaLayout(); err != nil {
		log.Fatalf("Failed to load arena map: %v", err)
	}
	if *configPath != "" {
		if err := config.LoadOverridesFile(*configPath); err != nil {
			log.Fatalf("Invalid config: %v", err)
		}
	}
	if *skipIntro {
		config.Debug.SkipIntro = true
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if config.Debug.LogTransitions {
		log.Printf("seed %d", *seed)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.Arena.Width, config.Arena.Height)
	ebiten.SetWindowTitle("Lane Strike")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(*seed)); err != nil {
		log.Fatal(err)
	}
}
