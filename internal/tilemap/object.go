// Package tilemap holds the 3D battlescape grid. Drawable objects live in a
// single arena and are referenced from tile cells by stable IDs; cells never
// own object memory, they only hold index lists in draw order.
package tilemap

import (
	"github.com/avernar/battlescape/internal/geom"
	"github.com/avernar/battlescape/internal/render"
)

// Kind tags the object variant. Draw dispatch is a switch on this tag rather
// than a method per type.
type Kind uint8

const (
	KindGround  Kind = iota // floor slab, always the bottom of a tile's draw list
	KindFeature             // wall, furniture, terrain piece
	KindItem                // loose item lying on the tile
	KindUnit                // soldier / creature occupying the tile
	kindCount               // sentinel
)

// String returns the kind name for logs.
func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindFeature:
		return "feature"
	case KindItem:
		return "item"
	case KindUnit:
		return "unit"
	default:
		return "unknown"
	}
}

// Object is one drawable entity. The position is the tile-space anchor the
// renderer projects; Layer selects the per-tile draw bucket.
type Object struct {
	Kind        Kind
	Name        string
	Pos         geom.Vec3
	Layer       int
	Sprite      *render.Sprite // isometric view sprite
	StratSprite *render.Sprite // strategy (orthographic) view sprite
}

// TilePos returns the integer tile the object anchors to.
func (o *Object) TilePos() geom.Point3 {
	return geom.Point3{X: int(o.Pos.X), Y: int(o.Pos.Y), Z: int(o.Pos.Z)}
}
