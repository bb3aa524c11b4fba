// Package render abstracts the draw target so the tile view can paint to a
// live window (ebiten) or to an offscreen raster image (gg) with the same
// code path. Sprites are plain decoded images; each backend decides how to
// upload or blit them.
package render

import (
	"image"
	"image/color"

	"github.com/avernar/battlescape/internal/geom"
)

// Sprite is a drawable image with a stable identity. Backends may cache
// per-sprite upload state keyed on the pointer, so sprites should be created
// once and shared.
type Sprite struct {
	Name  string
	Image image.Image
}

// Size returns the sprite dimensions in pixels.
func (s *Sprite) Size() (w, h int) {
	b := s.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Surface is the draw target for one frame. Implementations are not safe for
// concurrent use; the renderer runs single-threaded on the frame tick.
type Surface interface {
	// DrawSprite blits the sprite with its top-left corner at pos.
	DrawSprite(s *Sprite, pos geom.Vec2)
	// DrawLine strokes a straight line between two pixel positions.
	DrawLine(a, b geom.Vec2, col color.RGBA, thickness float64)
}
