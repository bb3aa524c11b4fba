package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/avernar/battlescape/internal/config"
	"github.com/avernar/battlescape/internal/game"
)

var cli struct {
	Config string `short:"c" help:"explicit config file (overrides the search path)"`
	Seed   int64  `help:"override the map seed"`
}

func main() {
	kong.Parse(&cli, kong.Name("battlescape"))
	logger := log.Default()

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Fatal("cannot load config", "err", err)
	}
	if cli.Seed != 0 {
		cfg.Map.Seed = cli.Seed
	}

	g, err := game.New(cfg, logger)
	if err != nil {
		logger.Fatal("cannot start game", "err", err)
	}

	ebiten.SetWindowTitle("Battlescape")
	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game loop ended", "err", err)
	}
}
