package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/avernar/battlescape/internal/geom"
)

// Raster is an offscreen Surface backed by a gg drawing context. It is used
// by the headless map renderer and by tests that need real pixel output.
type Raster struct {
	ctx *gg.Context
}

// NewRaster creates a raster surface of the given pixel size, cleared to the
// given background colour.
func NewRaster(w, h int, bg color.Color) *Raster {
	ctx := gg.NewContext(w, h)
	ctx.SetColor(bg)
	ctx.Clear()
	return &Raster{ctx: ctx}
}

// DrawSprite blits the sprite with its top-left corner at pos.
func (r *Raster) DrawSprite(s *Sprite, pos geom.Vec2) {
	r.ctx.DrawImage(s.Image, int(pos.X), int(pos.Y))
}

// DrawLine strokes a line between two pixel positions.
func (r *Raster) DrawLine(a, b geom.Vec2, col color.RGBA, thickness float64) {
	r.ctx.SetColor(col)
	r.ctx.SetLineWidth(thickness)
	r.ctx.DrawLine(a.X, a.Y, b.X, b.Y)
	r.ctx.Stroke()
}

// Image returns the rendered frame.
func (r *Raster) Image() image.Image {
	return r.ctx.Image()
}
