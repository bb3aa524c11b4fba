package render

import (
	"image/color"

	"github.com/fogleman/gg"
)

// The engine ships no art assets; every sprite it needs is synthesized at
// startup: isometric diamonds for ground, boxes for features, capsule-ish
// markers for units and items, and the three selection bracket pairs
// (empty / filled / background, each split into a back half drawn behind
// tile contents and a front half drawn on top).

// SelectionPair is the two halves of one selection bracket.
type SelectionPair struct {
	Back  *Sprite
	Front *Sprite
}

// SelectionSet holds the bracket variants the layer renderer picks between.
type SelectionSet struct {
	Empty      SelectionPair // selected tile, no unit on it
	Filled     SelectionPair // selected tile intersecting a unit
	Background SelectionPair // column below the selected z-level
}

func diamondPath(ctx *gg.Context, w, h float64) {
	ctx.MoveTo(w/2, 0)
	ctx.LineTo(w, h/2)
	ctx.LineTo(w/2, h)
	ctx.LineTo(0, h/2)
	ctx.ClosePath()
}

// MakeGroundSprite draws a filled isometric floor diamond.
func MakeGroundSprite(name string, isoX, isoY int, fill color.Color) *Sprite {
	ctx := gg.NewContext(isoX, isoY)
	diamondPath(ctx, float64(isoX), float64(isoY))
	ctx.SetColor(fill)
	ctx.Fill()
	return &Sprite{Name: name, Image: ctx.Image()}
}

// MakeBlockSprite draws an isometric block: a floor diamond extruded up by
// isoZ pixels, shaded per face.
func MakeBlockSprite(name string, isoX, isoY, isoZ int, top, side color.RGBA) *Sprite {
	w := float64(isoX)
	h := float64(isoY)
	z := float64(isoZ)
	ctx := gg.NewContext(isoX, isoY+isoZ)

	// Left face.
	ctx.MoveTo(0, h/2)
	ctx.LineTo(w/2, h)
	ctx.LineTo(w/2, h+z)
	ctx.LineTo(0, h/2+z)
	ctx.ClosePath()
	ctx.SetColor(darken(side, 0.8))
	ctx.Fill()

	// Right face.
	ctx.MoveTo(w, h/2)
	ctx.LineTo(w/2, h)
	ctx.LineTo(w/2, h+z)
	ctx.LineTo(w, h/2+z)
	ctx.ClosePath()
	ctx.SetColor(side)
	ctx.Fill()

	// Top diamond.
	diamondPath(ctx, w, h)
	ctx.SetColor(top)
	ctx.Fill()

	return &Sprite{Name: name, Image: ctx.Image()}
}

// MakeMarkerSprite draws a centered disc marker used for units and items.
func MakeMarkerSprite(name string, isoX, isoY int, radius float64, fill color.Color) *Sprite {
	ctx := gg.NewContext(isoX, isoY)
	ctx.DrawCircle(float64(isoX)/2, float64(isoY)/2, radius)
	ctx.SetColor(fill)
	ctx.Fill()
	return &Sprite{Name: name, Image: ctx.Image()}
}

// MakeStrategySprite draws the flat square used in the orthographic view.
func MakeStrategySprite(name string, w, h int, fill color.Color) *Sprite {
	ctx := gg.NewContext(w, h)
	ctx.DrawRectangle(0, 0, float64(w), float64(h))
	ctx.SetColor(fill)
	ctx.Fill()
	return &Sprite{Name: name, Image: ctx.Image()}
}

// MakeSelectionSet synthesizes the three bracket pairs for the given
// isometric tile size. The back half is the lower V of the tile diamond, the
// front half the upper V, so interleaving them around the tile's objects
// reads as a bracket wrapped around whatever stands on the tile.
func MakeSelectionSet(isoX, isoY, isoZ int) SelectionSet {
	return SelectionSet{
		Empty:      makeBracketPair("selection-empty", isoX, isoY, isoZ, color.RGBA{80, 220, 80, 255}),
		Filled:     makeBracketPair("selection-filled", isoX, isoY, isoZ, color.RGBA{235, 210, 50, 255}),
		Background: makeBracketPair("selection-background", isoX, isoY, isoZ, color.RGBA{150, 150, 150, 200}),
	}
}

func makeBracketPair(name string, isoX, isoY, isoZ int, col color.RGBA) SelectionPair {
	w := float64(isoX)
	h := float64(isoY)

	back := gg.NewContext(isoX, isoY+isoZ)
	back.SetColor(col)
	back.SetLineWidth(2)
	back.MoveTo(0, h/2)
	back.LineTo(w/2, h)
	back.LineTo(w, h/2)
	back.Stroke()

	front := gg.NewContext(isoX, isoY+isoZ)
	front.SetColor(col)
	front.SetLineWidth(2)
	front.MoveTo(0, h/2)
	front.LineTo(w/2, 0)
	front.LineTo(w, h/2)
	front.Stroke()

	return SelectionPair{
		Back:  &Sprite{Name: name + "-back", Image: back.Image()},
		Front: &Sprite{Name: name + "-front", Image: front.Image()},
	}
}

func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
