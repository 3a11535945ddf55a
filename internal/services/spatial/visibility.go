package spatial

import (
	"github.com/KirkDiggler/rpg-rules-engine/internal/domain/game/grid"
	"github.com/KirkDiggler/rpg-rules-engine/pkg/logger"
	"github.com/sirupsen/logrus"
)

// VisionRange is how far an observer can see, in grid squares.
const VisionRange = 12

// UpdateVisibility recomputes every tile's "currently visible" flag from
// scratch: a tile is visible when some observer within VisionRange has
// line of sight to it. A tile seen for the first time also gets its
// sticky "discovered" flag; discovery is monotonic and survives all
// observers moving away. Observers standing off the map are ignored.
//
// The map is mutated in place.
func UpdateVisibility(m *grid.GameMap, observers []grid.Position) {
	if m == nil {
		return
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			m.Tiles[y][x].Visible = false
		}
	}

	seen := 0
	for _, observer := range observers {
		if !m.InBounds(observer) {
			continue
		}

		minY, maxY := observer.Y-VisionRange, observer.Y+VisionRange
		minX, maxX := observer.X-VisionRange, observer.X+VisionRange

		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				pos := grid.Position{X: x, Y: y}
				tile := m.TileAt(pos)
				if tile == nil || tile.Visible {
					continue
				}
				if !LineOfSight(m, observer, pos).HasLoS {
					continue
				}

				tile.Visible = true
				tile.Discovered = true
				seen++
			}
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "spatial_engine",
		"function":  "UpdateVisibility",
		"observers": len(observers),
		"visible":   seen,
	}).Debug("visibility recomputed")
}
