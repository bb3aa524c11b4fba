package main

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/nfnt/resize"

	"github.com/avernar/battlescape/internal/config"
	"github.com/avernar/battlescape/internal/game"
	"github.com/avernar/battlescape/internal/geom"
	"github.com/avernar/battlescape/internal/render"
	"github.com/avernar/battlescape/internal/tileview"
)

const desc = `Renders a generated battlescape to a PNG without opening a window.`

var cli struct {
	Output string `short:"o" default:"mapshot.png" help:"output PNG path"`
	Config string `short:"c" help:"explicit config file (overrides the search path)"`

	Seed   int    `help:"map seed (defaults to the configured seed)"`
	Mode   string `default:"iso" enum:"iso,strategy" help:"projection: iso or strategy"`
	Level  int    `default:"1" help:"focused z-level"`
	Layers string `default:"up-to" enum:"up-to,all,only" help:"z-culling: up-to, all or only"`

	CenterX float64 `help:"camera center tile x (defaults to map middle)"`
	CenterY float64 `help:"camera center tile y (defaults to map middle)"`

	Width  int  `default:"0" help:"image width in px (defaults to the configured display)"`
	Height int  `default:"0" help:"image height in px"`
	Thumb  uint `default:"0" help:"also write a downscaled copy this many px wide"`
}

func main() {
	kong.Parse(&cli, kong.Name("mapshot"), kong.Description(desc))
	logger := log.Default()

	cfg, err := config.Load(cli.Config)
	if err != nil {
		logger.Fatal("cannot load config", "err", err)
	}
	if cli.Seed != 0 {
		cfg.Map.Seed = int64(cli.Seed)
	}
	if cli.Width > 0 {
		cfg.Display.Width = cli.Width
	}
	if cli.Height > 0 {
		cfg.Display.Height = cli.Height
	}

	set := game.NewSpriteSet(cfg.IsoTile, cfg.StratTile)
	m, arena := game.GenerateBattlescape(cfg.Map, set)

	mode := tileview.Isometric
	if cli.Mode == "strategy" {
		mode = tileview.Strategy
	}
	view := tileview.New(m, arena, tileview.Config{
		IsoTileSize:   geom.Point3{X: cfg.IsoTile.Width, Y: cfg.IsoTile.Height, Z: cfg.IsoTile.Depth},
		StratTileSize: geom.Vec2{X: float64(cfg.StratTile.Width), Y: float64(cfg.StratTile.Height)},
		DisplayW:      cfg.Display.Width,
		DisplayH:      cfg.Display.Height,
		Mode:          mode,
		Profile:       tileview.ProfileBattle,
		Logger:        logger,
	})
	view.SetZLevel(cli.Level)
	switch cli.Layers {
	case "all":
		view.SetLayerMode(tileview.AllLevels)
	case "only":
		view.SetLayerMode(tileview.OnlyCurrentLevel)
	}

	cx, cy := cli.CenterX, cli.CenterY
	if cx == 0 && cy == 0 {
		size := m.Size()
		cx, cy = float64(size.X)/2, float64(size.Y)/2
	}
	view.SetScreenCenterTileXY(geom.Vec2{X: cx, Y: cy})

	frame := render.NewRaster(cfg.Display.Width, cfg.Display.Height, color.Black)
	view.Render(frame)

	writePNG(logger, cli.Output, frame.Image())
	if cli.Thumb > 0 {
		thumb := resize.Resize(cli.Thumb, 0, frame.Image(), resize.Lanczos3)
		writePNG(logger, thumbPath(cli.Output), thumb)
	}
}

func thumbPath(out string) string {
	ext := ".png"
	base := out
	if len(out) > len(ext) && out[len(out)-len(ext):] == ext {
		base = out[:len(out)-len(ext)]
	}
	return base + "_thumb" + ext
}

func writePNG(logger *log.Logger, path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		logger.Fatal("cannot create output", "path", path, "err", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		logger.Fatal("cannot encode png", "path", path, "err", err)
	}
	logger.Info("wrote map render", "path", path)
}
