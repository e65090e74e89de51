package main

import (
	"flag"
	"os"

	"github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/fonts"
	"github.com/automoto/tilehop/scenes"
	"github.com/automoto/tilehop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame() *Game {
	g := &Game{}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	mapPath := flag.String("map", "", "map file to load (.csv or .tmx); defaults to the built-in map")
	configPath := flag.String("config", "", "YAML file with tuning overrides")
	skipMenu := flag.Bool("skip-menu", false, "start straight in the level")
	debug := flag.Bool("debug", false, "draw collision boxes and log debug events")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *mapPath != "" {
		config.Map.Path = *mapPath
	}
	config.Debug.SkipMenu = *skipMenu
	config.Debug.Overlay = *debug

	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}

	// Saved settings are optional; the game runs without them.
	if err := systems.InitPersistence("tilehop"); err == nil {
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			ebiten.SetFullscreen(saved.Fullscreen)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal().Err(err).Msg("game exited with an error")
	}
}
