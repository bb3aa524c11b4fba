package tilemap

import (
	"testing"

	"github.com/avernar/battlescape/internal/geom"
)

func TestArenaStableIDs(t *testing.T) {
	a := NewArena()
	id1 := a.Alloc(Object{Name: "one"})
	id2 := a.Alloc(Object{Name: "two"})
	id3 := a.Alloc(Object{Name: "three"})

	a.Release(id2)

	if got := a.Get(id1); got == nil || got.Name != "one" {
		t.Fatalf("id1 invalidated by releasing id2: %+v", got)
	}
	if got := a.Get(id3); got == nil || got.Name != "three" {
		t.Fatalf("id3 invalidated by releasing id2: %+v", got)
	}
	if a.Get(id2) != nil {
		t.Fatal("released id2 still resolves")
	}

	// Slot reuse hands out the freed ID again.
	id4 := a.Alloc(Object{Name: "four"})
	if id4 != id2 {
		t.Errorf("expected freed slot reuse, got id %d (freed %d)", id4, id2)
	}
	if a.Len() != 3 {
		t.Errorf("Len = %d, want 3", a.Len())
	}
}

func TestArenaZeroID(t *testing.T) {
	a := NewArena()
	if a.Get(0) != nil {
		t.Fatal("zero ID must resolve to nil")
	}
	a.Release(0) // must not panic
}

func TestPlaceKeepsInsertionOrder(t *testing.T) {
	m := New(geom.Point3{X: 4, Y: 4, Z: 2}, 2)
	a := NewArena()

	first := m.Place(a, Object{Kind: KindGround, Name: "floor", Pos: geom.Vec3{X: 1, Y: 1}})
	second := m.Place(a, Object{Kind: KindUnit, Name: "unit", Pos: geom.Vec3{X: 1, Y: 1}})
	third := m.Place(a, Object{Kind: KindItem, Name: "item", Pos: geom.Vec3{X: 1, Y: 1}})

	cell := m.Tile(1, 1, 0)
	want := []ObjectID{first, second, third}
	if len(cell.Drawn[0]) != 3 {
		t.Fatalf("layer 0 holds %d objects, want 3", len(cell.Drawn[0]))
	}
	for i, id := range want {
		if cell.Drawn[0][i] != id {
			t.Errorf("draw order [%d] = %d, want %d", i, cell.Drawn[0][i], id)
		}
	}
}

func TestPlaceClampsLayer(t *testing.T) {
	m := New(geom.Point3{X: 2, Y: 2, Z: 1}, 2)
	a := NewArena()
	id := m.Place(a, Object{Kind: KindFeature, Layer: 99, Pos: geom.Vec3{}})
	if id == 0 {
		t.Fatal("in-bounds placement returned zero ID")
	}
	cell := m.Tile(0, 0, 0)
	if len(cell.Drawn[1]) != 1 || cell.Drawn[1][0] != id {
		t.Errorf("object not clamped into top layer: %+v", cell.Drawn)
	}
}

func TestPlaceOutOfBoundsDropped(t *testing.T) {
	m := New(geom.Point3{X: 2, Y: 2, Z: 1}, 1)
	a := NewArena()
	if id := m.Place(a, Object{Pos: geom.Vec3{X: 5, Y: 0}}); id != 0 {
		t.Errorf("out-of-bounds placement returned live ID %d", id)
	}
	if a.Len() != 0 {
		t.Errorf("arena leaked %d objects", a.Len())
	}
}

func TestRemoveDetachesAndReleases(t *testing.T) {
	m := New(geom.Point3{X: 2, Y: 2, Z: 1}, 1)
	a := NewArena()
	id := m.Place(a, Object{Kind: KindUnit, Pos: geom.Vec3{X: 1, Y: 1}})
	other := geom.Point3{X: 0, Y: 1, Z: 0}
	m.AddIntersecting(id, other)

	m.Remove(a, id)

	if a.Get(id) != nil {
		t.Fatal("object still live after Remove")
	}
	if n := len(m.Tile(1, 1, 0).Drawn[0]); n != 0 {
		t.Errorf("owning cell still lists %d objects", n)
	}
}
