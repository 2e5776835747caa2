package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jcorbe333/Meowlee/assets"
	"github.com/jcorbe333/Meowlee/config"
	"github.com/jcorbe333/Meowlee/fonts"
	"github.com/jcorbe333/Meowlee/input"
	"github.com/jcorbe333/Meowlee/logging"
	"github.com/jcorbe333/Meowlee/persistence"
	"github.com/jcorbe333/Meowlee/scenes"
	"github.com/jcorbe333/Meowlee/stage"
	"github.com/rs/zerolog"
)

const appName = "meowlee"

type Game struct {
	scene *scenes.BattleScene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.scene.Layout(width, height)
}

func main() {
	configPath := flag.String("config", "", "Tuning file (json, yaml or toml)")
	stageName := flag.String("stage", "battlefield", "Stage to fight on")
	flag.Parse()

	boot := logging.New(os.Stderr, "info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		boot.Fatal().Err(err).Msg("Failed to load config")
	}
	log := logging.New(os.Stderr, cfg.LogLevel)

	st := pickStage(cfg, *stageName, log)

	board, err := persistence.Open(appName, log)
	if err != nil {
		log.Warn().Err(err).Msg("Could not open save data, tally will not persist")
		board = persistence.NewScoreboard(nil, log)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load fonts")
	}

	opts := scenes.BattleOptions{
		Log:   log,
		Board: board,
		Input: input.Default,
	}

	scene, err := scenes.NewBattleScene(cfg, st, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start match")
	}

	ebiten.SetWindowSize(int(cfg.Arena.Width), int(cfg.Arena.Height))
	ebiten.SetWindowTitle("Meowlee")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		log.Fatal().Err(err).Msg("Game exited")
	}
}

// pickStage returns the named embedded stage, or the built-in layout when it
// is missing or unreadable.
func pickStage(cfg *config.Config, name string, log zerolog.Logger) *stage.Stage {
	stages, names, err := stage.LoadAll(assets.Stages, assets.StagesDir)
	if err != nil {
		log.Warn().Err(err).Msg("Could not load stages, using built-in layout")
		return stage.Default(cfg.Arena)
	}
	st, ok := stages[name]
	if !ok {
		log.Warn().Str("stage", name).Strs("available", names).Msg("Unknown stage, using built-in layout")
		return stage.Default(cfg.Arena)
	}
	return st
}
