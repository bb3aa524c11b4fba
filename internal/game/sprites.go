package game

import (
	"image/color"

	"github.com/avernar/battlescape/internal/config"
	"github.com/avernar/battlescape/internal/render"
)

// SpriteSet is the synthesized art the demo battlescape draws with. Every
// sprite has an isometric and a strategy (top-down) variant.
type SpriteSet struct {
	Ground      *render.Sprite
	GroundAlt   *render.Sprite
	Wall        *render.Sprite
	Crate       *render.Sprite
	Soldier     *render.Sprite
	Alien       *render.Sprite
	Item        *render.Sprite
	StratGround *render.Sprite
	StratWall   *render.Sprite
	StratCrate  *render.Sprite
	StratUnit   *render.Sprite
	StratItem   *render.Sprite

	Selection render.SelectionSet
}

// NewSpriteSet builds the full set for the configured tile dimensions.
func NewSpriteSet(iso config.IsoTile, strat config.StratTile) *SpriteSet {
	sw, sh := strat.Width, strat.Height
	return &SpriteSet{
		Ground:      render.MakeGroundSprite("ground", iso.Width, iso.Height, color.RGBA{96, 128, 72, 255}),
		GroundAlt:   render.MakeGroundSprite("ground-alt", iso.Width, iso.Height, color.RGBA{88, 118, 66, 255}),
		Wall:        render.MakeBlockSprite("wall", iso.Width, iso.Height, iso.Depth, color.RGBA{140, 140, 150, 255}, color.RGBA{110, 110, 120, 255}),
		Crate:       render.MakeBlockSprite("crate", iso.Width, iso.Height, iso.Depth/2, color.RGBA{150, 110, 60, 255}, color.RGBA{120, 88, 48, 255}),
		Soldier:     render.MakeMarkerSprite("soldier", iso.Width, iso.Height, float64(iso.Height)/3, color.RGBA{70, 110, 200, 255}),
		Alien:       render.MakeMarkerSprite("alien", iso.Width, iso.Height, float64(iso.Height)/3, color.RGBA{180, 60, 170, 255}),
		Item:        render.MakeMarkerSprite("item", iso.Width, iso.Height, float64(iso.Height)/6, color.RGBA{220, 190, 80, 255}),
		StratGround: render.MakeStrategySprite("strat-ground", sw, sh, color.RGBA{60, 80, 48, 255}),
		StratWall:   render.MakeStrategySprite("strat-wall", sw, sh, color.RGBA{130, 130, 140, 255}),
		StratCrate:  render.MakeStrategySprite("strat-crate", sw, sh, color.RGBA{140, 100, 55, 255}),
		StratUnit:   render.MakeStrategySprite("strat-unit", sw, sh, color.RGBA{90, 140, 230, 255}),
		StratItem:   render.MakeStrategySprite("strat-item", sw, sh, color.RGBA{210, 180, 75, 255}),
		Selection:   render.MakeSelectionSet(iso.Width, iso.Height, iso.Depth),
	}
}
