package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/avernar/battlescape/internal/geom"
)

// Window is the live Surface backed by an ebiten frame image. Sprite pixels
// are uploaded to GPU textures once and cached by sprite identity.
type Window struct {
	frame *ebiten.Image
	cache map[*Sprite]*ebiten.Image
}

// NewWindow creates a window surface. The same Window is reused across
// frames; call SetFrame with the current screen each Draw.
func NewWindow() *Window {
	return &Window{cache: make(map[*Sprite]*ebiten.Image)}
}

// SetFrame points the surface at this frame's screen image.
func (w *Window) SetFrame(frame *ebiten.Image) {
	w.frame = frame
}

func (w *Window) texture(s *Sprite) *ebiten.Image {
	if img, ok := w.cache[s]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(s.Image)
	w.cache[s] = img
	return img
}

// DrawSprite blits the sprite with its top-left corner at pos.
func (w *Window) DrawSprite(s *Sprite, pos geom.Vec2) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	w.frame.DrawImage(w.texture(s), op)
}

// DrawLine strokes a line between two pixel positions.
func (w *Window) DrawLine(a, b geom.Vec2, col color.RGBA, thickness float64) {
	vector.StrokeLine(w.frame,
		float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
		float32(thickness), col, true)
}

// DebugText prints HUD text at a pixel position. Debug overlay only.
func (w *Window) DebugText(text string, x, y int) {
	ebitenutil.DebugPrintAt(w.frame, text, x, y)
}
