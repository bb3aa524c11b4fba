package tilemap

import (
	"github.com/avernar/battlescape/internal/geom"
)

// Cell is one tile of the 3D grid. Drawn holds object handles per draw layer
// in insertion order — the renderer replays them back to front exactly as
// inserted. Intersecting lists objects whose volume touches this cell even if
// anchored elsewhere (used by the selection highlight).
type Cell struct {
	Drawn        [][]ObjectID
	Intersecting []ObjectID
}

// Map is the authoritative 3D tile grid.
type Map struct {
	size   geom.Point3
	layers int
	cells  []Cell
}

// New creates an empty map of the given size with layerCount draw buckets per
// tile.
func New(size geom.Point3, layerCount int) *Map {
	if layerCount < 1 {
		layerCount = 1
	}
	cells := make([]Cell, size.X*size.Y*size.Z)
	for i := range cells {
		cells[i].Drawn = make([][]ObjectID, layerCount)
	}
	return &Map{size: size, layers: layerCount, cells: cells}
}

// Size returns the map dimensions in tiles.
func (m *Map) Size() geom.Point3 { return m.size }

// LayerCount returns the number of draw buckets per tile.
func (m *Map) LayerCount() int { return m.layers }

func (m *Map) inBounds(x, y, z int) bool {
	return x >= 0 && x < m.size.X && y >= 0 && y < m.size.Y && z >= 0 && z < m.size.Z
}

// Tile returns the cell at (x,y,z), or nil if out of bounds.
func (m *Map) Tile(x, y, z int) *Cell {
	if !m.inBounds(x, y, z) {
		return nil
	}
	return &m.cells[x+y*m.size.X+z*m.size.X*m.size.Y]
}

// Place allocates obj in the arena and appends its handle to the owning
// cell's draw layer. The layer index is clamped into range; placements
// outside the map are dropped and the zero ID returned.
func (m *Map) Place(a *Arena, obj Object) ObjectID {
	p := obj.TilePos()
	if !m.inBounds(p.X, p.Y, p.Z) {
		return 0
	}
	obj.Layer = geom.ClampInt(obj.Layer, 0, m.layers-1)
	id := a.Alloc(obj)
	cell := m.Tile(p.X, p.Y, p.Z)
	cell.Drawn[obj.Layer] = append(cell.Drawn[obj.Layer], id)
	cell.Intersecting = append(cell.Intersecting, id)
	return id
}

// AddIntersecting marks id as touching the cell at p (for objects larger than
// one tile). Out-of-bounds positions are ignored.
func (m *Map) AddIntersecting(id ObjectID, p geom.Point3) {
	cell := m.Tile(p.X, p.Y, p.Z)
	if cell == nil || id == 0 {
		return
	}
	cell.Intersecting = append(cell.Intersecting, id)
}

// Remove detaches id from its owning cell and releases the arena slot.
func (m *Map) Remove(a *Arena, id ObjectID) {
	obj := a.Get(id)
	if obj == nil {
		return
	}
	p := obj.TilePos()
	if cell := m.Tile(p.X, p.Y, p.Z); cell != nil {
		cell.Drawn[obj.Layer] = removeID(cell.Drawn[obj.Layer], id)
		cell.Intersecting = removeID(cell.Intersecting, id)
	}
	a.Release(id)
}

func removeID(list []ObjectID, id ObjectID) []ObjectID {
	for i, v := range list {
		if v == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
