// Package spatial implements the grid engine: map construction, entity
// placement, pathfinding, distance, line of sight and fog-of-war
// visibility.
//
// All functions are pure computations over a caller-supplied GameMap
// snapshot; the only mutation is in-place on that snapshot, and no state
// survives between calls. Expected domain outcomes (no path, occupied
// tile, no line of sight) come back as empty or nil results, not errors.
package spatial

import (
	"github.com/KirkDiggler/rpg-rules-engine/internal/domain/game/grid"
	engerr "github.com/KirkDiggler/rpg-rules-engine/internal/errors"
	"github.com/KirkDiggler/rpg-rules-engine/internal/uuid"
)

// NewMap builds a uniform width x height grid. Interior tiles get
// defaultTerrain; border tiles get edgeTerrain when it is non-empty.
// All tiles start brightly lit, undiscovered and not visible.
func NewMap(width, height int, name string, defaultTerrain, edgeTerrain grid.Terrain) (*grid.GameMap, error) {
	if width < 1 || height < 1 {
		return nil, engerr.Validationf("map dimensions must be positive, got %dx%d", width, height)
	}
	if edgeTerrain == "" {
		edgeTerrain = defaultTerrain
	}

	tiles := make([][]grid.Tile, height)
	for y := 0; y < height; y++ {
		tiles[y] = make([]grid.Tile, width)
		for x := 0; x < width; x++ {
			terrain := defaultTerrain
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				terrain = edgeTerrain
			}
			tiles[y][x] = grid.Tile{
				Terrain: terrain,
				Light:   grid.LightBright,
			}
		}
	}

	return &grid.GameMap{
		Width:    width,
		Height:   height,
		Name:     name,
		Tiles:    tiles,
		Entities: make(map[string]*grid.MapEntity),
	}, nil
}

// EntityDescriptor describes an entity to place on a map. When ID is
// empty a fresh one is generated.
type EntityDescriptor struct {
	ID    string
	Type  grid.EntityType
	Speed int
}

// PlaceEntity inserts an entity at the position and returns its record.
// Returns nil, with no error, when the position is out of bounds,
// occupied by a blocking entity, or impassable terrain: failed placement
// is an expected outcome, not misuse.
func PlaceEntity(m *grid.GameMap, desc EntityDescriptor, pos grid.Position) *grid.MapEntity {
	if m == nil || !m.InBounds(pos) {
		return nil
	}

	entity := &grid.MapEntity{
		ID:    desc.ID,
		Type:  desc.Type,
		Speed: desc.Speed,
	}
	if entity.ID == "" {
		entity.ID = uuid.NewGoogleUUIDGenerator().New()
	}

	if entity.Blocking() {
		tile := m.TileAt(pos)
		if !tile.Terrain.Passable() {
			return nil
		}
		if m.EntityAt(pos) != nil {
			return nil
		}
	}
	if _, exists := m.Entities[entity.ID]; exists {
		return nil
	}

	entity.Position = pos
	m.Entities[entity.ID] = entity
	return entity
}

// RemoveEntity deletes the entity from the map, reporting whether it was
// present.
func RemoveEntity(m *grid.GameMap, entityID string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.Entities[entityID]; !ok {
		return false
	}
	delete(m.Entities, entityID)
	return true
}

// ResetMovement zeroes every entity's movement used. Call at the turn
// boundary so each entity starts with its full budget.
func ResetMovement(m *grid.GameMap) {
	if m == nil {
		return
	}
	for _, e := range m.Entities {
		e.MovementUsed = 0
	}
}
