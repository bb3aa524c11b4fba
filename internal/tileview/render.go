package tileview

import (
	"github.com/avernar/battlescape/internal/geom"
	"github.com/avernar/battlescape/internal/render"
	"github.com/avernar/battlescape/internal/tilemap"
)

// Render draws one frame: applies pending scroll intents, culls to the
// visible tile rectangle, then replays z-levels, draw layers, tiles in scan
// order, and per-tile object lists in insertion order. That exact nesting is
// what produces correct occlusion; reordering any loop breaks it.
func (v *View) Render(s render.Surface) {
	v.applyScroll()

	size := v.m.Size()
	isoX := float64(v.isoTileSize.X)
	isoY := float64(v.isoTileSize.Y)

	// The screen offset is the amount added to projected tile coordinates,
	// so inverting the four screen corners bounds the visible tiles. Top
	// corners invert at z=0, bottom corners at full depth so tall columns
	// poking into view from below are kept.
	topLeft := v.OffsetScreenToTile(geom.Vec2{X: -isoX, Y: -isoY}, 0)
	topRight := v.OffsetScreenToTile(geom.Vec2{X: v.dpySize.X, Y: -isoY}, 0)
	bottomLeft := v.OffsetScreenToTile(geom.Vec2{X: -isoX, Y: v.dpySize.Y}, float64(size.Z))
	bottomRight := v.OffsetScreenToTile(geom.Vec2{X: v.dpySize.X, Y: v.dpySize.Y}, float64(size.Z))

	minX := max(0, int(topLeft.X))
	maxX := min(size.X, int(bottomRight.X))
	minY := max(0, int(topRight.Y))
	maxY := min(size.Y, int(bottomLeft.Y))

	zFrom, zTo := v.zRange()

	for z := zFrom; z < zTo; z++ {
		currentLevel := z - v.currentZLevel

		var selCell *tilemap.Cell
		var selPos geom.Point3
		var drawBackBefore tilemap.ObjectID
		var selBack, selFront *render.Sprite

		// Selection bracket pre-pass. The bracket follows the selected
		// column down through lower levels: the exact selected level gets
		// the filled or empty pair depending on unit occupancy, levels
		// behind it get the background pair.
		if v.profile == ProfileBattle && v.viewMode == Isometric &&
			v.selected.Z >= z &&
			v.selected.X >= minX && v.selected.X < maxX &&
			v.selected.Y >= minY && v.selected.Y < maxY {
			selPos = geom.Point3{X: v.selected.X, Y: v.selected.Y, Z: z}
			selCell = v.m.Tile(selPos.X, selPos.Y, selPos.Z)
		}
		if selCell != nil {
			for _, id := range selCell.Drawn[0] {
				obj := v.arena.Get(id)
				if obj == nil {
					continue
				}
				if drawBackBefore == 0 && obj.Kind != tilemap.KindGround {
					drawBackBefore = id
				}
			}
			pair := v.selection.Background
			if v.selected.Z == z {
				pair = v.selection.Empty
				for _, id := range selCell.Intersecting {
					if o := v.arena.Get(id); o != nil && o.Kind == tilemap.KindUnit {
						pair = v.selection.Filled
						break
					}
				}
			}
			selBack, selFront = pair.Back, pair.Front
		}

		for layer := 0; layer < v.m.LayerCount(); layer++ {
			for y := minY; y < maxY; y++ {
				for x := minX; x < maxX; x++ {
					cell := v.m.Tile(x, y, z)
					if cell == nil {
						continue
					}
					if cell == selCell && layer == 0 {
						v.drawSelectedTile(s, cell, selPos, drawBackBefore, selBack, selFront, currentLevel)
						continue
					}
					for _, id := range cell.Drawn[layer] {
						obj := v.arena.Get(id)
						if obj == nil {
							continue
						}
						v.drawObject(s, obj, v.TileToOffsetScreen(obj.Pos), currentLevel)
					}
				}
			}
		}
	}

	if v.viewMode == Strategy {
		v.drawStrategyBox(s)
	}
}

// drawSelectedTile replays the selected tile's layer-0 objects with the back
// bracket interleaved immediately before the first non-ground object and the
// front bracket after everything on the tile.
func (v *View) drawSelectedTile(s render.Surface, cell *tilemap.Cell, selPos geom.Point3,
	drawBackBefore tilemap.ObjectID, back, front *render.Sprite, currentLevel int) {

	bracketPos := v.TileToOffsetScreen(selPos.Vec3()).Sub(v.selectionOffset)
	for _, id := range cell.Drawn[0] {
		obj := v.arena.Get(id)
		if obj == nil {
			continue
		}
		if id == drawBackBefore && back != nil {
			s.DrawSprite(back, bracketPos)
		}
		v.drawObject(s, obj, v.TileToOffsetScreen(obj.Pos), currentLevel)
	}
	// Ground-only tile: the back bracket has not been placed yet.
	if drawBackBefore == 0 && back != nil {
		s.DrawSprite(back, bracketPos)
	}
	if front != nil {
		s.DrawSprite(front, bracketPos)
	}
}

// applyScroll advances the camera by the mode's speed vector for every held
// scroll intent, then re-clamps. In the isometric frame "up" runs along both
// diamond axes at once.
func (v *View) applyScroll() {
	newPos := v.centerPos
	switch v.viewMode {
	case Isometric:
		if v.scrollLeft {
			newPos.X -= v.isoScrollSpeed.X
			newPos.Y += v.isoScrollSpeed.Y
		}
		if v.scrollRight {
			newPos.X += v.isoScrollSpeed.X
			newPos.Y -= v.isoScrollSpeed.Y
		}
		if v.scrollUp {
			newPos.X -= v.isoScrollSpeed.X
			newPos.Y -= v.isoScrollSpeed.Y
		}
		if v.scrollDown {
			newPos.X += v.isoScrollSpeed.X
			newPos.Y += v.isoScrollSpeed.Y
		}
	case Strategy:
		if v.scrollLeft {
			newPos.X -= v.stratScrollSpeed.X
		}
		if v.scrollRight {
			newPos.X += v.stratScrollSpeed.X
		}
		if v.scrollUp {
			newPos.Y -= v.stratScrollSpeed.Y
		}
		if v.scrollDown {
			newPos.Y += v.stratScrollSpeed.Y
		}
	default:
		v.log.Warn("scroll with unknown view mode", "mode", int(v.viewMode))
	}
	v.SetScreenCenterTile(newPos)
}

// zRange resolves the layer mode to the half-open z interval to draw.
func (v *View) zRange() (int, int) {
	switch v.layerMode {
	case UpToCurrentLevel:
		return 0, v.currentZLevel
	case AllLevels:
		return 0, v.maxZDraw
	case OnlyCurrentLevel:
		return v.currentZLevel - 1, v.currentZLevel
	default:
		v.log.Warn("unknown layer drawing mode, drawing all levels", "mode", int(v.layerMode))
		return 0, v.maxZDraw
	}
}

// drawObject dispatches one object through the kind switch. currentLevel is
// the object's z-level relative to the camera focus; sprite variants may key
// off it.
func (v *View) drawObject(s render.Surface, obj *tilemap.Object, pos geom.Vec2, currentLevel int) {
	var sprite *render.Sprite
	switch v.viewMode {
	case Isometric:
		sprite = obj.Sprite
	case Strategy:
		sprite = obj.StratSprite
	default:
		v.log.Warn("draw with unknown view mode", "mode", int(v.viewMode))
		return
	}
	if sprite == nil {
		return
	}
	switch obj.Kind {
	case tilemap.KindGround, tilemap.KindFeature, tilemap.KindItem:
		s.DrawSprite(sprite, pos)
	case tilemap.KindUnit:
		// Strategy view only marks units on the focused level; other levels
		// would read as phantom contacts on the minimap-style projection.
		if v.viewMode == Strategy && currentLevel != -1 {
			return
		}
		s.DrawSprite(sprite, pos)
	default:
		v.log.Warn("unknown object kind", "kind", int(obj.Kind), "name", obj.Name)
	}
}

// drawStrategyBox outlines where the isometric viewport sits on the strategy
// projection: project the camera center isometrically, push the corners out
// by half the display, invert back to tiles, and re-project under the active
// (strategy) transform.
func (v *View) drawStrategyBox(s render.Surface) {
	centerIso := v.TileToScreen(geom.Vec3{X: v.centerPos.X, Y: v.centerPos.Y}, Isometric)

	halfW := v.dpySize.X / 2
	halfH := v.dpySize.Y / 2
	corners := [4]geom.Vec2{
		{X: centerIso.X - halfW, Y: centerIso.Y - halfH}, // top left
		{X: centerIso.X + halfW, Y: centerIso.Y - halfH}, // top right
		{X: centerIso.X + halfW, Y: centerIso.Y + halfH}, // bottom right
		{X: centerIso.X - halfW, Y: centerIso.Y + halfH}, // bottom left
	}

	var pts [4]geom.Vec2
	for i, c := range corners {
		tile := v.ScreenToTile(c, 0, Isometric)
		pts[i] = v.TileToOffsetScreen(tile)
	}

	for i := range pts {
		s.DrawLine(pts[i], pts[(i+1)%4], v.strategyBoxColour, v.strategyBoxThickness)
	}
}
