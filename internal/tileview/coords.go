package tileview

import (
	"github.com/avernar/battlescape/internal/geom"
)

// The isometric projection uses the half-width/half-height diamond
// convention: one tile step along +x moves the screen point right and down by
// half a diamond, one step along +y moves it left and down. The vertical
// level subtracts a fixed per-level pixel step. These constants line up with
// the reference art; changing them breaks visual parity.

// TileToScreen projects a tile-space coordinate to screen pixels under the
// given mode, without the camera offset applied.
func (v *View) TileToScreen(t geom.Vec3, mode ViewMode) geom.Vec2 {
	switch mode {
	case Isometric:
		x := (t.X - t.Y) * float64(v.isoTileSize.X) / 2
		y := (t.X+t.Y)*float64(v.isoTileSize.Y)/2 - t.Z*float64(v.isoTileSize.Z)
		return geom.Vec2{X: x, Y: y}
	case Strategy:
		return geom.Vec2{X: t.X * v.stratTileSize.X, Y: t.Y * v.stratTileSize.Y}
	default:
		v.log.Warn("tile projection with unknown view mode", "mode", int(mode))
		return geom.Vec2{}
	}
}

// ScreenToTile inverts TileToScreen on the plane at height z: it solves the
// 2x2 diamond system for (tile.x, tile.y) after undoing the z lift.
func (v *View) ScreenToTile(s geom.Vec2, z float64, mode ViewMode) geom.Vec3 {
	switch mode {
	case Isometric:
		sy := s.Y + z*float64(v.isoTileSize.Z)
		hx := s.X / (float64(v.isoTileSize.X) / 2)
		hy := sy / (float64(v.isoTileSize.Y) / 2)
		return geom.Vec3{X: (hy + hx) / 2, Y: (hy - hx) / 2, Z: z}
	case Strategy:
		return geom.Vec3{X: s.X / v.stratTileSize.X, Y: s.Y / v.stratTileSize.Y, Z: z}
	default:
		v.log.Warn("screen inversion with unknown view mode", "mode", int(mode))
		return geom.Vec3{Z: z}
	}
}

// TileToOffsetScreen projects under the active mode and applies the camera
// offset, yielding a device pixel position.
func (v *View) TileToOffsetScreen(t geom.Vec3) geom.Vec2 {
	return v.TileToScreen(t, v.viewMode).Add(v.ScreenOffset())
}

// OffsetScreenToTile removes the camera offset from a device pixel position
// and inverts the projection at plane z.
func (v *View) OffsetScreenToTile(s geom.Vec2, z float64) geom.Vec3 {
	return v.ScreenToTile(s.Sub(v.ScreenOffset()), z, v.viewMode)
}
