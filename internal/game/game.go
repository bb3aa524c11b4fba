package game

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/avernar/battlescape/internal/config"
	"github.com/avernar/battlescape/internal/geom"
	"github.com/avernar/battlescape/internal/render"
	"github.com/avernar/battlescape/internal/save"
	"github.com/avernar/battlescape/internal/tilemap"
	"github.com/avernar/battlescape/internal/tileview"
)

// autosaveInterval is the tick period of the autosave slot (~60s at 60 TPS).
const autosaveInterval = 3600

// statusDuration is how long a transient HUD message stays up, in ticks.
const statusDuration = 180

// selectionOffset aligns the bracket sprites with the battle art convention.
var selectionOffset = geom.Vec2{X: 23, Y: 22}

// scrollKeys maps held device keys to camera scroll intents.
var scrollKeys = map[ebiten.Key]tileview.Key{
	ebiten.KeyArrowUp:    tileview.KeyScrollUp,
	ebiten.KeyArrowDown:  tileview.KeyScrollDown,
	ebiten.KeyArrowLeft:  tileview.KeyScrollLeft,
	ebiten.KeyArrowRight: tileview.KeyScrollRight,
}

// nudgeKeys maps edge-triggered device keys to selection nudges.
var nudgeKeys = map[ebiten.Key]tileview.Key{
	ebiten.KeyW: tileview.KeySelectNorth,
	ebiten.KeyS: tileview.KeySelectSouth,
	ebiten.KeyA: tileview.KeySelectWest,
	ebiten.KeyD: tileview.KeySelectEast,
	ebiten.KeyR: tileview.KeySelectAbove,
	ebiten.KeyF: tileview.KeySelectBelow,
}

// Game is the windowed front end: it owns the generated battlescape, adapts
// ebiten input onto the tile view, and drives saves and the HUD.
type Game struct {
	cfg   config.Config
	log   *log.Logger
	set   *SpriteSet
	m     *tilemap.Map
	arena *tilemap.Arena
	view  *tileview.View
	win   *render.Window
	saves *save.Manager

	tick uint64
	seed int64

	prevKeys  map[ebiten.Key]bool
	prevMouse geom.Vec2
	dragging  bool

	showHUD     bool
	status      string
	statusUntil uint64
}

// New builds the demo battlescape and its view from the configuration.
func New(cfg config.Config, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.Default()
	}
	set := NewSpriteSet(cfg.IsoTile, cfg.StratTile)
	m, arena := GenerateBattlescape(cfg.Map, set)

	view := tileview.New(m, arena, tileview.Config{
		IsoTileSize:     geom.Point3{X: cfg.IsoTile.Width, Y: cfg.IsoTile.Height, Z: cfg.IsoTile.Depth},
		StratTileSize:   geom.Vec2{X: float64(cfg.StratTile.Width), Y: float64(cfg.StratTile.Height)},
		DisplayW:        cfg.Display.Width,
		DisplayH:        cfg.Display.Height,
		Mode:            tileview.Isometric,
		Profile:         tileview.ProfileBattle,
		Selection:       set.Selection,
		SelectionOffset: selectionOffset,
		Logger:          logger,
	})
	size := m.Size()
	view.SetScreenCenterTile(geom.Vec3{X: float64(size.X) / 2, Y: float64(size.Y) / 2})

	saves, err := save.NewManager(cfg.SaveDir, logger)
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:      cfg,
		log:      logger,
		set:      set,
		m:        m,
		arena:    arena,
		view:     view,
		win:      render.NewWindow(),
		saves:    saves,
		seed:     cfg.Map.Seed,
		prevKeys: make(map[ebiten.Key]bool),
		showHUD:  true,
	}, nil
}

// View exposes the camera for tests and tooling.
func (g *Game) View() *tileview.View { return g.view }

func (g *Game) Update() error {
	g.tick++
	g.handleInput()
	if g.tick%autosaveInterval == 0 {
		if err := g.saves.SaveSpecial(save.Auto, g.snapshot()); err != nil {
			g.log.Error("autosave failed", "err", err)
		}
	}
	return nil
}

// handleInput translates device input into view events. Scroll keys forward
// both press and release edges because the view holds them as intent flags;
// everything else is edge-triggered.
func (g *Game) handleInput() {
	current := map[ebiten.Key]bool{}
	pressedEdge := func(k ebiten.Key) bool {
		current[k] = ebiten.IsKeyPressed(k)
		return current[k] && !g.prevKeys[k]
	}

	for dev, key := range scrollKeys {
		current[dev] = ebiten.IsKeyPressed(dev)
		if current[dev] != g.prevKeys[dev] {
			kind := tileview.KeyUp
			if current[dev] {
				kind = tileview.KeyDown
			}
			g.view.HandleEvent(tileview.Event{Kind: kind, Key: key})
		}
	}

	for dev, key := range nudgeKeys {
		if pressedEdge(dev) {
			g.view.HandleEvent(tileview.Event{Kind: tileview.KeyDown, Key: key})
		}
	}

	if pressedEdge(ebiten.KeyTab) {
		if g.view.ViewMode() == tileview.Isometric {
			g.view.SetViewMode(tileview.Strategy)
		} else {
			g.view.SetViewMode(tileview.Isometric)
		}
	}
	if pressedEdge(ebiten.KeyPageUp) {
		g.view.SetZLevel(g.view.ZLevel() + 1)
	}
	if pressedEdge(ebiten.KeyPageDown) {
		g.view.SetZLevel(g.view.ZLevel() - 1)
	}
	if pressedEdge(ebiten.KeyL) {
		g.cycleLayerMode()
	}
	if pressedEdge(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if pressedEdge(ebiten.KeyF5) {
		g.quicksave()
	}
	if pressedEdge(ebiten.KeyF9) {
		g.quickload()
	}
	if pressedEdge(ebiten.KeyF8) {
		g.copyDebugReport()
	}

	g.handleMouse()
	g.prevKeys = current
}

// handleMouse feeds pointer moves to the selection and pans the camera while
// the right button drags.
func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	pos := geom.Vec2{X: float64(mx), Y: float64(my)}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if g.dragging {
			g.view.HandleEvent(tileview.Event{
				Kind:    tileview.Drag,
				Delta:   pos.Sub(g.prevMouse),
				Primary: true,
			})
		}
		g.dragging = true
	} else {
		g.dragging = false
		if pos != g.prevMouse {
			g.view.HandleEvent(tileview.Event{Kind: tileview.PointerMove, Pos: pos})
		}
	}
	g.prevMouse = pos
}

func (g *Game) cycleLayerMode() {
	switch g.view.LayerMode() {
	case tileview.UpToCurrentLevel:
		g.view.SetLayerMode(tileview.AllLevels)
	case tileview.AllLevels:
		g.view.SetLayerMode(tileview.OnlyCurrentLevel)
	default:
		g.view.SetLayerMode(tileview.UpToCurrentLevel)
	}
}

func (g *Game) snapshot() State {
	size := g.m.Size()
	return CaptureState(g.view, g.tick, g.seed, size)
}

func (g *Game) quicksave() {
	state := g.snapshot()
	if err := g.saves.SaveSpecial(save.Quick, state); err != nil {
		g.log.Error("quicksave failed", "err", err)
		g.setStatus("quicksave failed")
		return
	}
	if path, err := g.saves.SpecialPath(save.Quick); err == nil {
		frame := render.NewRaster(g.cfg.Display.Width, g.cfg.Display.Height, color.Black)
		g.view.Render(frame)
		if err := g.saves.WriteThumbnail(save.Metadata{File: path}, frame.Image()); err != nil {
			g.log.Warn("quicksave thumbnail failed", "err", err)
		}
	}
	g.setStatus("quicksaved")
}

func (g *Game) quickload() {
	var state State
	if _, err := g.saves.LoadSpecial(save.Quick, &state); err != nil {
		g.log.Error("quickload failed", "err", err)
		g.setStatus("quickload failed")
		return
	}
	if state.MapSeed != g.seed || state.MapSize != g.m.Size() {
		// Different battlescape: regenerate before restoring the camera.
		g.seed = state.MapSeed
		gen := g.cfg.Map
		gen.Seed = state.MapSeed
		gen.Width, gen.Height, gen.Depth = state.MapSize.X, state.MapSize.Y, state.MapSize.Z
		g.m, g.arena = GenerateBattlescape(gen, g.set)
		g.view = tileview.New(g.m, g.arena, tileview.Config{
			IsoTileSize:     geom.Point3{X: g.cfg.IsoTile.Width, Y: g.cfg.IsoTile.Height, Z: g.cfg.IsoTile.Depth},
			StratTileSize:   geom.Vec2{X: float64(g.cfg.StratTile.Width), Y: float64(g.cfg.StratTile.Height)},
			DisplayW:        g.cfg.Display.Width,
			DisplayH:        g.cfg.Display.Height,
			Mode:            tileview.Isometric,
			Profile:         tileview.ProfileBattle,
			Selection:       g.set.Selection,
			SelectionOffset: selectionOffset,
			Logger:          g.log,
		})
	}
	ApplyState(g.view, state)
	g.tick = state.Tick
	g.setStatus("quickloaded")
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusUntil = g.tick + statusDuration
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.win.SetFrame(screen)
	g.view.Render(g.win)
	if g.showHUD {
		g.drawHUD()
	}
}

func (g *Game) drawHUD() {
	sel := g.view.SelectedTilePosition()
	center := g.view.CenterTile()
	g.win.DebugText(fmt.Sprintf(
		"mode:%s level:%d/%d sel:(%d,%d,%d) center:(%.1f,%.1f,%.1f)",
		g.view.ViewMode(), g.view.ZLevel(), g.m.Size().Z,
		sel.X, sel.Y, sel.Z, center.X, center.Y, center.Z), 8, 8)
	g.win.DebugText("arrows:pan  wasd/rf:select  rmb:drag  tab:view  pgup/pgdn:level  l:layers  f5/f9:save/load  f8:report  h:hud", 8, 24)
	if g.status != "" && g.tick < g.statusUntil {
		g.win.DebugText(g.status, 8, 40)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Display.Width, g.cfg.Display.Height
}
