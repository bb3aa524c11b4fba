package tileview

import (
	"github.com/avernar/battlescape/internal/geom"
)

// pointerGroundOffset corrects the pointer's vertical position before tile
// inversion: the cursor is displayed on top of the ground, which renders 4px
// high, and the hotspot sits 20px into the cursor art. Calibrated against the
// reference assets.
const pointerGroundOffset = 4 - 20

// EventKind tags an input event.
type EventKind uint8

const (
	// KeyDown is a key or button press.
	KeyDown EventKind = iota
	// KeyUp is a key or button release.
	KeyUp
	// PointerMove is an absolute pointer position update.
	PointerMove
	// Drag is a pan gesture carrying a pixel delta.
	Drag
)

// Key is an abstract engine action key. The windowed front end maps real
// device keys onto these.
type Key uint8

const (
	// KeyNone is the zero key.
	KeyNone Key = iota
	// KeyScrollUp etc. hold a camera scroll intent while pressed.
	KeyScrollUp
	KeyScrollDown
	KeyScrollLeft
	KeyScrollRight
	// KeySelectNorth etc. nudge the selected tile one step.
	KeySelectNorth
	KeySelectSouth
	KeySelectWest
	KeySelectEast
	KeySelectAbove
	KeySelectBelow
)

// Event is one input event delivered to the view.
type Event struct {
	Kind    EventKind
	Key     Key
	Pos     geom.Vec2 // pointer position, device pixels
	Delta   geom.Vec2 // drag delta, device pixels
	Primary bool      // primary pointer for drag gestures
}

// HandleEvent feeds one input event into the view. Scroll keys only set
// intent flags; the camera moves on the next Render tick.
func (v *View) HandleEvent(e Event) {
	switch e.Kind {
	case KeyDown:
		v.handleKeyDown(e.Key)
	case KeyUp:
		v.handleKeyUp(e.Key)
	case PointerMove:
		v.handlePointerMove(e.Pos)
	case Drag:
		v.handleDrag(e)
	default:
		v.log.Warn("unknown input event kind", "kind", int(e.Kind))
	}
}

func (v *View) handleKeyDown(k Key) {
	sel := v.selected
	switch k {
	case KeyScrollUp:
		v.scrollUp = true
	case KeyScrollDown:
		v.scrollDown = true
	case KeyScrollLeft:
		v.scrollLeft = true
	case KeyScrollRight:
		v.scrollRight = true
	case KeySelectNorth:
		sel.Y--
		v.SetSelectedTilePosition(sel)
	case KeySelectSouth:
		sel.Y++
		v.SetSelectedTilePosition(sel)
	case KeySelectWest:
		sel.X--
		v.SetSelectedTilePosition(sel)
	case KeySelectEast:
		sel.X++
		v.SetSelectedTilePosition(sel)
	case KeySelectAbove:
		sel.Z++
		v.SetSelectedTilePosition(sel)
	case KeySelectBelow:
		sel.Z--
		v.SetSelectedTilePosition(sel)
	}
}

func (v *View) handleKeyUp(k Key) {
	switch k {
	case KeyScrollUp:
		v.scrollUp = false
	case KeyScrollDown:
		v.scrollDown = false
	case KeyScrollLeft:
		v.scrollLeft = false
	case KeyScrollRight:
		v.scrollRight = false
	}
}

// handlePointerMove converts the device position to a tile at one level below
// the focus (the ground plane the cursor visually rests on) and moves the
// selection there.
func (v *View) handlePointerMove(pos geom.Vec2) {
	adjusted := geom.Vec2{X: pos.X, Y: pos.Y + pointerGroundOffset}.Sub(v.ScreenOffset())
	tile := v.ScreenToTile(adjusted, float64(v.currentZLevel-1), v.viewMode)
	v.SetSelectedTilePosition(geom.Point3{X: int(tile.X), Y: int(tile.Y), Z: int(tile.Z)})
}

// handleDrag pans the camera, not the selection. The pixel delta is rebased
// into tile space under the active projection before it is applied.
func (v *View) handleDrag(e Event) {
	if !e.Primary {
		return
	}
	var delta geom.Vec3
	switch v.viewMode {
	case Isometric:
		dx := e.Delta.X / float64(v.isoTileSize.X)
		dy := e.Delta.Y / float64(v.isoTileSize.Y)
		delta = geom.Vec3{X: dx + dy, Y: dy - dx}
	case Strategy:
		delta = geom.Vec3{X: e.Delta.X / v.stratTileSize.X, Y: e.Delta.Y / v.stratTileSize.Y}
	default:
		v.log.Warn("drag with unknown view mode", "mode", int(v.viewMode))
		return
	}
	v.SetScreenCenterTile(v.centerPos.Sub(delta))
}
