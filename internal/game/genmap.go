package game

import (
	"fmt"
	"math/rand"

	"github.com/avernar/battlescape/internal/config"
	"github.com/avernar/battlescape/internal/geom"
	"github.com/avernar/battlescape/internal/render"
	"github.com/avernar/battlescape/internal/tilemap"
)

// Draw layers within a tile. Ground and standing objects share layer 0 so the
// selection bracket can slot between them; overlays such as dropped items go
// on top in layer 1.
const (
	layerScenery = 0
	layerOverlay = 1
	layerCount   = 2
)

// GenerateBattlescape builds a deterministic demo map from the seed: a ground
// floor with shade variation, wall runs and crates, raised platforms on upper
// levels, two squads of units, and a scattering of items.
func GenerateBattlescape(gen config.MapGen, set *SpriteSet) (*tilemap.Map, *tilemap.Arena) {
	size := geom.Point3{X: gen.Width, Y: gen.Height, Z: gen.Depth}
	m := tilemap.New(size, layerCount)
	arena := tilemap.NewArena()
	rng := rand.New(rand.NewSource(gen.Seed))

	g := &generator{m: m, arena: arena, rng: rng, set: set, size: size}
	g.floor()
	g.walls()
	g.platforms()
	g.crates()
	g.squads()
	g.items()
	return m, arena
}

type generator struct {
	m     *tilemap.Map
	arena *tilemap.Arena
	rng   *rand.Rand
	set   *SpriteSet
	size  geom.Point3

	occupied map[geom.Point3]bool
}

func (g *generator) floor() {
	for y := 0; y < g.size.Y; y++ {
		for x := 0; x < g.size.X; x++ {
			sprite := g.set.Ground
			if (x+y)%2 == 1 {
				sprite = g.set.GroundAlt
			}
			g.m.Place(g.arena, tilemap.Object{
				Kind:        tilemap.KindGround,
				Name:        "ground",
				Pos:         geom.Vec3{X: float64(x), Y: float64(y)},
				Layer:       layerScenery,
				Sprite:      sprite,
				StratSprite: g.set.StratGround,
			})
		}
	}
}

// walls lays a handful of straight wall runs on the ground level.
func (g *generator) walls() {
	runs := 3 + g.rng.Intn(3)
	for i := 0; i < runs; i++ {
		x := g.rng.Intn(g.size.X)
		y := g.rng.Intn(g.size.Y)
		length := 3 + g.rng.Intn(6)
		alongX := g.rng.Intn(2) == 0
		for j := 0; j < length; j++ {
			p := geom.Point3{X: x, Y: y}
			if alongX {
				p.X += j
			} else {
				p.Y += j
			}
			g.placeFeature(p, "wall", g.set.Wall, g.set.StratWall)
		}
	}
}

// platforms raises a few rectangular ground patches onto upper levels.
func (g *generator) platforms() {
	for z := 1; z < g.size.Z-1; z++ {
		count := 1 + g.rng.Intn(2)
		for i := 0; i < count; i++ {
			x := g.rng.Intn(g.size.X)
			y := g.rng.Intn(g.size.Y)
			w := 2 + g.rng.Intn(4)
			h := 2 + g.rng.Intn(4)
			for dy := 0; dy < h; dy++ {
				for dx := 0; dx < w; dx++ {
					g.m.Place(g.arena, tilemap.Object{
						Kind:        tilemap.KindGround,
						Name:        "platform",
						Pos:         geom.Vec3{X: float64(x + dx), Y: float64(y + dy), Z: float64(z)},
						Layer:       layerScenery,
						Sprite:      g.set.GroundAlt,
						StratSprite: g.set.StratGround,
					})
				}
			}
		}
	}
}

func (g *generator) crates() {
	count := 4 + g.rng.Intn(5)
	for i := 0; i < count; i++ {
		p := g.freeGroundTile()
		g.placeFeature(p, "crate", g.set.Crate, g.set.StratCrate)
	}
}

// squads drops a human squad on the west edge and an alien squad on the east.
func (g *generator) squads() {
	for i := 0; i < 4; i++ {
		p := geom.Point3{X: g.rng.Intn(g.size.X / 4), Y: g.rng.Intn(g.size.Y)}
		g.placeUnit(p, fmt.Sprintf("soldier-%d", i+1), g.set.Soldier)
	}
	for i := 0; i < 4; i++ {
		p := geom.Point3{X: g.size.X - 1 - g.rng.Intn(g.size.X/4), Y: g.rng.Intn(g.size.Y)}
		g.placeUnit(p, fmt.Sprintf("alien-%d", i+1), g.set.Alien)
	}
}

func (g *generator) items() {
	count := 3 + g.rng.Intn(4)
	for i := 0; i < count; i++ {
		p := g.freeGroundTile()
		g.m.Place(g.arena, tilemap.Object{
			Kind:        tilemap.KindItem,
			Name:        "supply-canister",
			Pos:         p.Vec3(),
			Layer:       layerOverlay,
			Sprite:      g.set.Item,
			StratSprite: g.set.StratItem,
		})
	}
}

func (g *generator) placeFeature(p geom.Point3, name string, sprite, strat *render.Sprite) {
	if g.taken(p) {
		return
	}
	g.mark(p)
	g.m.Place(g.arena, tilemap.Object{
		Kind:        tilemap.KindFeature,
		Name:        name,
		Pos:         p.Vec3(),
		Layer:       layerScenery,
		Sprite:      sprite,
		StratSprite: strat,
	})
}

func (g *generator) placeUnit(p geom.Point3, name string, sprite *render.Sprite) {
	if g.taken(p) {
		p = g.freeGroundTile()
	}
	g.mark(p)
	g.m.Place(g.arena, tilemap.Object{
		Kind:        tilemap.KindUnit,
		Name:        name,
		Pos:         p.Vec3(),
		Layer:       layerScenery,
		Sprite:      sprite,
		StratSprite: g.set.StratUnit,
	})
}

func (g *generator) taken(p geom.Point3) bool {
	return g.occupied != nil && g.occupied[p]
}

func (g *generator) mark(p geom.Point3) {
	if g.occupied == nil {
		g.occupied = make(map[geom.Point3]bool)
	}
	g.occupied[p] = true
}

// freeGroundTile picks an unoccupied ground-level tile. The map always has
// more floor than standing objects, so a few retries suffice.
func (g *generator) freeGroundTile() geom.Point3 {
	for {
		p := geom.Point3{X: g.rng.Intn(g.size.X), Y: g.rng.Intn(g.size.Y)}
		if !g.taken(p) {
			return p
		}
	}
}
