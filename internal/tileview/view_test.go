package tileview

import (
	"testing"

	"github.com/avernar/battlescape/internal/geom"
	"github.com/avernar/battlescape/internal/tilemap"
)

func TestCameraCenterClamped(t *testing.T) {
	v, _, _ := newTestView(t)

	v.SetScreenCenterTile(geom.Vec3{X: -5, Y: -5, Z: 0})
	if v.CenterTile() != (geom.Vec3{}) {
		t.Errorf("negative center clamps to %+v, want origin", v.CenterTile())
	}

	v.SetScreenCenterTile(geom.Vec3{X: 100, Y: 100, Z: 100})
	if v.CenterTile() != (geom.Vec3{X: 10, Y: 10, Z: 5}) {
		t.Errorf("oversized center clamps to %+v, want map size", v.CenterTile())
	}
}

func TestSelectedTileClamped(t *testing.T) {
	v, _, _ := newTestView(t)

	v.SetSelectedTilePosition(geom.Point3{X: 20, Y: 20, Z: 1})
	if v.SelectedTilePosition() != (geom.Point3{X: 9, Y: 9, Z: 1}) {
		t.Errorf("selection clamps to %+v, want (9,9,1)", v.SelectedTilePosition())
	}

	v.SetSelectedTilePosition(geom.Point3{X: -3, Y: -3, Z: -3})
	if v.SelectedTilePosition() != (geom.Point3{}) {
		t.Errorf("negative selection clamps to %+v, want origin", v.SelectedTilePosition())
	}
}

func TestSetZLevelClampsAndReprojects(t *testing.T) {
	v, _, _ := newTestView(t)

	v.SetZLevel(0)
	if v.ZLevel() != 1 {
		t.Errorf("ZLevel = %d, want floor 1", v.ZLevel())
	}
	v.SetZLevel(99)
	if v.ZLevel() != 5 {
		t.Errorf("ZLevel = %d, want ceiling 5", v.ZLevel())
	}

	v.SetZLevel(3)
	if v.CenterTile().Z != 2 {
		t.Errorf("center z = %v after SetZLevel(3), want 2", v.CenterTile().Z)
	}
}

func TestScrollIntentFlags(t *testing.T) {
	v, _, _ := newTestView(t)
	v.SetScreenCenterTile(geom.Vec3{X: 5, Y: 5, Z: 0})

	v.HandleEvent(Event{Kind: KeyDown, Key: KeyScrollRight})
	v.applyScroll()
	if v.CenterTile().X != 5.5 || v.CenterTile().Y != 4.5 {
		t.Errorf("iso right scroll moved center to %+v, want (5.5, 4.5)", v.CenterTile())
	}

	v.HandleEvent(Event{Kind: KeyUp, Key: KeyScrollRight})
	before := v.CenterTile()
	v.applyScroll()
	if v.CenterTile() != before {
		t.Error("camera moved after scroll key release")
	}
}

func TestViewModeSwitchKeepsCenterChangesScrollSpeed(t *testing.T) {
	v, _, _ := newTestView(t)
	v.SetScreenCenterTile(geom.Vec3{X: 5, Y: 5, Z: 0})

	v.SetViewMode(Strategy)
	if v.CenterTile() != (geom.Vec3{X: 5, Y: 5, Z: 0}) {
		t.Fatalf("mode switch moved camera to %+v", v.CenterTile())
	}

	// Strategy scrolling is axis-aligned at the strategy speed.
	v.HandleEvent(Event{Kind: KeyDown, Key: KeyScrollRight})
	v.applyScroll()
	if v.CenterTile() != (geom.Vec3{X: 7, Y: 5, Z: 0}) {
		t.Errorf("strategy right scroll moved center to %+v, want (7, 5, 0)", v.CenterTile())
	}
}

func TestUnknownViewModeScrollIsNoOp(t *testing.T) {
	v, _, _ := newTestView(t)
	v.SetScreenCenterTile(geom.Vec3{X: 5, Y: 5, Z: 0})
	v.SetViewMode(ViewMode(42))
	v.HandleEvent(Event{Kind: KeyDown, Key: KeyScrollRight})
	v.applyScroll()
	if v.CenterTile() != (geom.Vec3{X: 5, Y: 5, Z: 0}) {
		t.Errorf("unknown-mode scroll moved camera to %+v", v.CenterTile())
	}
}

func TestSelectKeysNudgeWithClamp(t *testing.T) {
	v, _, _ := newTestView(t)
	v.SetSelectedTilePosition(geom.Point3{X: 0, Y: 0, Z: 0})

	v.HandleEvent(Event{Kind: KeyDown, Key: KeySelectWest})
	if v.SelectedTilePosition().X != 0 {
		t.Error("west nudge escaped the map edge")
	}
	v.HandleEvent(Event{Kind: KeyDown, Key: KeySelectEast})
	v.HandleEvent(Event{Kind: KeyDown, Key: KeySelectSouth})
	v.HandleEvent(Event{Kind: KeyDown, Key: KeySelectAbove})
	if v.SelectedTilePosition() != (geom.Point3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("nudges landed on %+v, want (1,1,1)", v.SelectedTilePosition())
	}
}

func TestPointerMoveSelectsGroundPlaneTile(t *testing.T) {
	v, _, _ := newTestView(t)
	v.SetScreenCenterTile(geom.Vec3{X: 5, Y: 5, Z: 0})
	v.SetZLevel(1) // pointer selects on plane z = 0

	// Aim at the center of tile (3,4): project it, undo the pointer's ground
	// height correction, and feed the device position through the handler.
	target := geom.Vec3{X: 3.5, Y: 4.5, Z: 0}
	device := v.TileToOffsetScreen(target)
	v.HandleEvent(Event{Kind: PointerMove, Pos: geom.Vec2{X: device.X, Y: device.Y - pointerGroundOffset}})

	if v.SelectedTilePosition() != (geom.Point3{X: 3, Y: 4, Z: 0}) {
		t.Errorf("pointer selected %+v, want (3,4,0)", v.SelectedTilePosition())
	}
}

func TestDragPansCameraNotSelection(t *testing.T) {
	v, _, _ := newTestView(t)
	v.SetScreenCenterTile(geom.Vec3{X: 5, Y: 5, Z: 1})
	v.SetSelectedTilePosition(geom.Point3{X: 2, Y: 2, Z: 0})

	// Iso basis: delta (32,16)px is one diamond step on each axis, which
	// rebases to (2, 0) tiles.
	v.HandleEvent(Event{Kind: Drag, Primary: true, Delta: geom.Vec2{X: 32, Y: 16}})
	if v.CenterTile() != (geom.Vec3{X: 3, Y: 5, Z: 1}) {
		t.Errorf("iso drag moved camera to %+v, want (3, 5, 1)", v.CenterTile())
	}
	if v.SelectedTilePosition() != (geom.Point3{X: 2, Y: 2, Z: 0}) {
		t.Error("drag moved the selection")
	}

	// Secondary pointers do not pan.
	before := v.CenterTile()
	v.HandleEvent(Event{Kind: Drag, Primary: false, Delta: geom.Vec2{X: 100, Y: 100}})
	if v.CenterTile() != before {
		t.Error("secondary drag moved the camera")
	}
}

func TestStrategyDragUsesStrategyBasis(t *testing.T) {
	v, _, _ := newTestView(t)
	v.SetViewMode(Strategy)
	v.SetScreenCenterTile(geom.Vec3{X: 5, Y: 5, Z: 1})

	v.HandleEvent(Event{Kind: Drag, Primary: true, Delta: geom.Vec2{X: 16, Y: -8}})
	if v.CenterTile() != (geom.Vec3{X: 3, Y: 6, Z: 1}) {
		t.Errorf("strategy drag moved camera to %+v, want (3, 6, 1)", v.CenterTile())
	}
}

func TestCenterChangedHook(t *testing.T) {
	v, _, _ := newTestView(t)
	var got geom.Vec3
	v.CenterChanged = func(c geom.Vec3) { got = c }
	v.SetScreenCenterTile(geom.Vec3{X: -1, Y: 3, Z: 0})
	if got != (geom.Vec3{X: 0, Y: 3, Z: 0}) {
		t.Errorf("hook received %+v, want the clamped center", got)
	}
}

func TestCityProfileLocksLayerMode(t *testing.T) {
	m := tilemap.New(geom.Point3{X: 4, Y: 4, Z: 3}, 1)
	arena := tilemap.NewArena()
	city := New(m, arena, Config{
		IsoTileSize:   geom.Point3{X: 32, Y: 16, Z: 8},
		StratTileSize: geom.Vec2{X: 8, Y: 8},
		DisplayW:      640,
		DisplayH:      480,
		Profile:       ProfileCity,
		Logger:        discardLogger(),
	})
	if city.LayerMode() != AllLevels {
		t.Fatalf("city profile starts in %v, want AllLevels", city.LayerMode())
	}
	city.SetLayerMode(OnlyCurrentLevel)
	if city.LayerMode() != AllLevels {
		t.Error("city profile allowed a layer mode change")
	}
}
