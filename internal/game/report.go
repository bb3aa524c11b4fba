package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/avernar/battlescape/internal/tilemap"
)

// DebugReport dumps the camera, selection and the contents of the selected
// tile column as text, for pasting into bug reports.
func (g *Game) DebugReport() string {
	var b strings.Builder
	size := g.m.Size()
	sel := g.view.SelectedTilePosition()
	center := g.view.CenterTile()

	fmt.Fprintf(&b, "--- battlescape debug report ---\n")
	fmt.Fprintf(&b, "tick=%d seed=%d map=%dx%dx%d\n", g.tick, g.seed, size.X, size.Y, size.Z)
	fmt.Fprintf(&b, "mode=%s level=%d layer_mode=%d\n", g.view.ViewMode(), g.view.ZLevel(), g.view.LayerMode())
	fmt.Fprintf(&b, "center=(%.2f,%.2f,%.2f) offset=(%.1f,%.1f)\n",
		center.X, center.Y, center.Z, g.view.ScreenOffset().X, g.view.ScreenOffset().Y)
	fmt.Fprintf(&b, "selected=(%d,%d,%d)\n\n", sel.X, sel.Y, sel.Z)

	fmt.Fprintf(&b, "selected column:\n")
	for z := 0; z < size.Z; z++ {
		cell := g.m.Tile(sel.X, sel.Y, z)
		if cell == nil {
			continue
		}
		for layer, ids := range cell.Drawn {
			for i, id := range ids {
				obj := g.arena.Get(id)
				if obj == nil {
					continue
				}
				fmt.Fprintf(&b, "  z=%d layer=%d #%d %s %q\n", z, layer, i, obj.Kind, obj.Name)
			}
		}
		for _, id := range cell.Intersecting {
			obj := g.arena.Get(id)
			if obj != nil && obj.Kind == tilemap.KindUnit {
				fmt.Fprintf(&b, "  z=%d intersecting unit %q\n", z, obj.Name)
			}
		}
	}
	return b.String()
}

func (g *Game) copyDebugReport() {
	report := g.DebugReport()
	if err := clipboard.WriteAll(report); err != nil {
		g.log.Error("could not copy debug report", "err", err)
		g.setStatus("report copy failed")
		return
	}
	g.setStatus("debug report copied")
}
