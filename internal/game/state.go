// Package game wires the engine together: it generates the demo battlescape,
// adapts windowed input onto the tile view, and snapshots the session for the
// save manager.
package game

import (
	"github.com/avernar/battlescape/internal/geom"
	"github.com/avernar/battlescape/internal/tileview"
)

// State is the YAML-serializable session snapshot the save manager archives.
type State struct {
	Tick       uint64      `yaml:"tick"`
	Difficulty string      `yaml:"difficulty,omitempty"`
	MapSeed    int64       `yaml:"map_seed"`
	MapSize    geom.Point3 `yaml:"map_size"`
	Center     geom.Vec3   `yaml:"center"`
	ZLevel     int         `yaml:"z_level"`
	ViewMode   string      `yaml:"view_mode"`
	Selected   geom.Point3 `yaml:"selected"`
}

// Ticks satisfies the save manifest's tick reporting.
func (s State) Ticks() uint64 { return s.Tick }

// CaptureState snapshots the view into a saveable state.
func CaptureState(v *tileview.View, tick uint64, seed int64, size geom.Point3) State {
	return State{
		Tick:     tick,
		MapSeed:  seed,
		MapSize:  size,
		Center:   v.CenterTile(),
		ZLevel:   v.ZLevel(),
		ViewMode: v.ViewMode().String(),
		Selected: v.SelectedTilePosition(),
	}
}

// ApplyState restores a snapshot onto the view. Out-of-range values are
// clamped by the view's own setters.
func ApplyState(v *tileview.View, s State) {
	switch s.ViewMode {
	case tileview.Strategy.String():
		v.SetViewMode(tileview.Strategy)
	default:
		v.SetViewMode(tileview.Isometric)
	}
	v.SetZLevel(s.ZLevel)
	v.SetScreenCenterTile(s.Center)
	v.SetSelectedTilePosition(s.Selected)
}
