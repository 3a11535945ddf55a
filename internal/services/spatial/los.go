package spatial

import (
	"github.com/KirkDiggler/rpg-rules-engine/internal/domain/game/grid"
)

// LineOfSightResult describes the sight line between two cells. Cover is
// the worst tier granted by any intervening tile; Light is read from the
// destination tile.
type LineOfSightResult struct {
	HasLoS   bool       `json:"has_los"`
	Distance int        `json:"distance"`
	Cover    grid.Cover `json:"cover"`
	Light    grid.Light `json:"light"`
}

// LineOfSight traces the line between from and to with integer Bresenham
// stepping and inspects every intervening tile. The endpoints themselves
// are not obstacles: a creature can see out of its own tile and can see
// a sight-blocking tile such as a wall face.
func LineOfSight(m *grid.GameMap, from, to grid.Position) *LineOfSightResult {
	result := &LineOfSightResult{
		Distance: from.Chebyshev(to),
		Light:    grid.LightDarkness,
	}

	if m == nil || !m.InBounds(from) || !m.InBounds(to) {
		return result
	}

	result.Light = m.TileAt(to).Light

	if from == to {
		result.HasLoS = true
		return result
	}

	x0, y0 := from.X, from.Y
	x1, y1 := to.X, to.Y

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	sx, sy := from.DirectionTo(to)
	errAcc := dx - dy

	cover := grid.CoverNone
	for {
		isStart := x0 == from.X && y0 == from.Y
		isEnd := x0 == to.X && y0 == to.Y

		if !isStart && !isEnd {
			tile := m.TileAt(grid.Position{X: x0, Y: y0})
			if tile == nil || tile.Terrain.BlocksSight() {
				result.Cover = grid.CoverTotal
				return result
			}
			cover = cover.Worst(tile.Terrain.Cover())
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := errAcc * 2
		if e2 > -dy {
			errAcc -= dy
			x0 += sx
		}
		if e2 < dx {
			errAcc += dx
			y0 += sy
		}
	}

	result.HasLoS = true
	result.Cover = cover
	return result
}
