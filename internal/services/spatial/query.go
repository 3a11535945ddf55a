package spatial

import (
	"sort"

	"github.com/KirkDiggler/rpg-rules-engine/internal/domain/game/grid"
	engerr "github.com/KirkDiggler/rpg-rules-engine/internal/errors"
)

// MaxQueryRadius bounds spatial queries; anything wider is a caller bug,
// not a bigger area of interest.
const MaxQueryRadius = 30

// QueryParams selects an area of the map. Radius is measured in
// grid-square (Chebyshev) distance, so the selected area is a square
// window centered on Center. EntityTypes, when non-empty, is an
// allow-list filter on returned entities.
type QueryParams struct {
	Center          grid.Position
	Radius          int
	IncludeTiles    bool
	IncludeEntities bool
	EntityTypes     []grid.EntityType
}

// QueryResult holds the tiles, entities and positions within the queried
// area. Positions is always populated and parallel to Tiles when tiles
// were requested.
type QueryResult struct {
	Positions []grid.Position
	Tiles     []grid.Tile
	Entities  []*grid.MapEntity
}

// Query returns everything within Radius squares of Center. A center off
// the map yields empty results rather than an error; a malformed radius
// is a validation error.
func Query(m *grid.GameMap, params QueryParams) (*QueryResult, error) {
	if m == nil {
		return nil, engerr.InvalidArgument("map cannot be nil")
	}
	if params.Radius < 0 {
		return nil, engerr.Validationf("query radius cannot be negative, got %d", params.Radius)
	}
	if params.Radius > MaxQueryRadius {
		return nil, engerr.Validationf("query radius %d exceeds maximum %d", params.Radius, MaxQueryRadius)
	}

	result := &QueryResult{
		Positions: []grid.Position{},
		Tiles:     []grid.Tile{},
		Entities:  []*grid.MapEntity{},
	}

	for y := params.Center.Y - params.Radius; y <= params.Center.Y+params.Radius; y++ {
		for x := params.Center.X - params.Radius; x <= params.Center.X+params.Radius; x++ {
			pos := grid.Position{X: x, Y: y}
			if !m.InBounds(pos) {
				continue
			}
			result.Positions = append(result.Positions, pos)
			if params.IncludeTiles {
				result.Tiles = append(result.Tiles, *m.TileAt(pos))
			}
		}
	}

	if params.IncludeEntities {
		for _, e := range m.Entities {
			if params.Center.Chebyshev(e.Position) > params.Radius {
				continue
			}
			if !matchesType(e.Type, params.EntityTypes) {
				continue
			}
			result.Entities = append(result.Entities, e)
		}
		// Map iteration order is random; keep results deterministic.
		sort.Slice(result.Entities, func(i, j int) bool {
			return result.Entities[i].ID < result.Entities[j].ID
		})
	}

	return result, nil
}

func matchesType(t grid.EntityType, allowed []grid.EntityType) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == t {
			return true
		}
	}
	return false
}
