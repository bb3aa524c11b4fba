// Package tileview is the camera and rendering core: it owns the view over
// the 3D tile grid, converts between tile space and screen pixels under the
// active projection, tracks the selected tile, and replays per-layer object
// lists in occlusion order each frame.
package tileview

import (
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/avernar/battlescape/internal/geom"
	"github.com/avernar/battlescape/internal/render"
	"github.com/avernar/battlescape/internal/tilemap"
)

// ViewMode selects the projection.
type ViewMode uint8

const (
	// Isometric is the classic diamond projection.
	Isometric ViewMode = iota
	// Strategy is the orthographic top-down projection.
	Strategy
)

// String returns the mode name for logs.
func (m ViewMode) String() string {
	switch m {
	case Isometric:
		return "isometric"
	case Strategy:
		return "strategy"
	default:
		return "unknown"
	}
}

// LayerMode selects which z-levels the renderer walks.
type LayerMode uint8

const (
	// UpToCurrentLevel draws levels [0, current).
	UpToCurrentLevel LayerMode = iota
	// AllLevels draws the whole column.
	AllLevels
	// OnlyCurrentLevel draws just the focused level.
	OnlyCurrentLevel
)

// Profile selects the view flavour: the city scape shows every level at once,
// the battlescape focuses one level and carries the tile selection bracket.
type Profile uint8

const (
	// ProfileCity shows all levels, no selection bracket.
	ProfileCity Profile = iota
	// ProfileBattle focuses the current level and highlights the selection.
	ProfileBattle
)

// Config carries the explicit dependencies of a View. No global framework
// accessors; everything a view needs is injected here.
type Config struct {
	IsoTileSize   geom.Point3 // iso diamond: width, height, level step (px)
	StratTileSize geom.Vec2   // orthographic tile size (px)
	DisplayW      int
	DisplayH      int
	Mode          ViewMode
	Profile       Profile
	Selection     render.SelectionSet
	// SelectionOffset shifts bracket sprites relative to the projected tile
	// position. Calibrated against the battle art convention ({23,22}).
	SelectionOffset geom.Vec2
	Logger          *log.Logger
}

// View is the camera over a tile map. It borrows object references from the
// map's arena for draw calls; it never owns them.
type View struct {
	m     *tilemap.Map
	arena *tilemap.Arena
	log   *log.Logger

	isoTileSize   geom.Point3
	stratTileSize geom.Vec2
	dpySize       geom.Vec2

	viewMode  ViewMode
	layerMode LayerMode
	profile   Profile

	scrollUp    bool
	scrollDown  bool
	scrollLeft  bool
	scrollRight bool

	isoScrollSpeed   geom.Vec2
	stratScrollSpeed geom.Vec2

	centerPos     geom.Vec3
	currentZLevel int
	maxZDraw      int
	selected      geom.Point3

	selection       render.SelectionSet
	selectionOffset geom.Vec2

	strategyBoxColour    color.RGBA
	strategyBoxThickness float64

	// CenterChanged fires after every accepted camera move with the clamped
	// center. Collaborators that track the camera (an audio listener, a
	// minimap) hook in here.
	CenterChanged func(geom.Vec3)
}

// New creates a view over m. The arena resolves the object handles stored in
// the map's cells.
func New(m *tilemap.Map, arena *tilemap.Arena, cfg Config) *View {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	v := &View{
		m:                    m,
		arena:                arena,
		log:                  logger,
		isoTileSize:          cfg.IsoTileSize,
		stratTileSize:        cfg.StratTileSize,
		dpySize:              geom.Vec2{X: float64(cfg.DisplayW), Y: float64(cfg.DisplayH)},
		viewMode:             cfg.Mode,
		profile:              cfg.Profile,
		isoScrollSpeed:       geom.Vec2{X: 0.5, Y: 0.5},
		stratScrollSpeed:     geom.Vec2{X: 2, Y: 2},
		currentZLevel:        1,
		maxZDraw:             m.Size().Z,
		selection:            cfg.Selection,
		selectionOffset:      cfg.SelectionOffset,
		strategyBoxColour:    color.RGBA{R: 212, G: 176, B: 172, A: 255},
		strategyBoxThickness: 2,
	}
	switch cfg.Profile {
	case ProfileCity:
		v.layerMode = AllLevels
	case ProfileBattle:
		v.layerMode = UpToCurrentLevel
	default:
		logger.Warn("unknown view profile, defaulting to battle layering", "profile", int(cfg.Profile))
		v.layerMode = UpToCurrentLevel
	}
	return v
}

// SetZLevel clamps the focused level into [1, maxZDraw] and reprojects the
// camera so the focus point stays put across level changes.
func (v *View) SetZLevel(z int) {
	v.currentZLevel = geom.ClampInt(z, 1, v.maxZDraw)
	v.SetScreenCenterTile(geom.Vec3{
		X: v.centerPos.X,
		Y: v.centerPos.Y,
		Z: float64(v.currentZLevel - 1),
	})
}

// ZLevel returns the focused level.
func (v *View) ZLevel() int { return v.currentZLevel }

// SetLayerMode changes the z-culling policy. The city profile always shows
// every level, so the mode is fixed there.
func (v *View) SetLayerMode(mode LayerMode) {
	if v.profile != ProfileBattle {
		return
	}
	v.layerMode = mode
}

// LayerMode returns the active z-culling policy.
func (v *View) LayerMode() LayerMode { return v.layerMode }

// SetViewMode switches the projection. No side effects beyond the projected
// overlay rectangle recomputed on the next frame.
func (v *View) SetViewMode(mode ViewMode) { v.viewMode = mode }

// ViewMode returns the active projection.
func (v *View) ViewMode() ViewMode { return v.viewMode }

// ScreenOffset is the translation added to projected tile coordinates so the
// camera center lands mid-screen.
func (v *View) ScreenOffset() geom.Vec2 {
	center := v.TileToScreen(v.centerPos, v.viewMode)
	return geom.Vec2{
		X: v.dpySize.X/2 - center.X,
		Y: v.dpySize.Y/2 - center.Y,
	}
}

// SetScreenCenterTile moves the camera, clamping every axis to [0, mapSize].
func (v *View) SetScreenCenterTile(center geom.Vec3) {
	size := v.m.Size()
	v.centerPos = geom.ClampVec3(center, geom.Vec3{}, size.Vec3())
	if v.CenterChanged != nil {
		v.CenterChanged(v.centerPos)
	}
}

// SetScreenCenterTileXY moves the camera on the current level.
func (v *View) SetScreenCenterTileXY(center geom.Vec2) {
	v.SetScreenCenterTile(geom.Vec3{X: center.X, Y: center.Y, Z: float64(v.currentZLevel)})
}

// CenterTile returns the clamped camera center.
func (v *View) CenterTile() geom.Vec3 { return v.centerPos }

// SelectedTilePosition returns the selected tile.
func (v *View) SelectedTilePosition() geom.Point3 { return v.selected }

// SetSelectedTilePosition moves the selection, clamping every axis to
// [0, mapSize-1]. Out-of-range input is corrected, never rejected.
func (v *View) SetSelectedTilePosition(p geom.Point3) {
	size := v.m.Size()
	v.selected = geom.ClampPoint3(p, geom.Point3{}, geom.Point3{X: size.X - 1, Y: size.Y - 1, Z: size.Z - 1})
}
