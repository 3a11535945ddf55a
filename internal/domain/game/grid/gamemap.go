package grid

// GameMap is a width x height tile grid plus the entities standing on it.
// Tiles are indexed Tiles[y][x]. Every entity position lies in bounds,
// and no two blocking entities share a tile.
type GameMap struct {
	Width    int                   `json:"width"`
	Height   int                   `json:"height"`
	Name     string                `json:"name"`
	Tiles    [][]Tile              `json:"tiles"`
	Entities map[string]*MapEntity `json:"entities"`
}

// InBounds reports whether the position lies on the map
func (m *GameMap) InBounds(p Position) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// TileAt returns the tile at the position, or nil when out of bounds
func (m *GameMap) TileAt(p Position) *Tile {
	if !m.InBounds(p) {
		return nil
	}
	return &m.Tiles[p.Y][p.X]
}

// Entity returns the entity with the given id, or nil
func (m *GameMap) Entity(id string) *MapEntity {
	return m.Entities[id]
}

// EntityAt returns the blocking entity occupying the position, or nil
func (m *GameMap) EntityAt(p Position) *MapEntity {
	for _, e := range m.Entities {
		if e.Blocking() && e.Position == p {
			return e
		}
	}
	return nil
}

// BlockedAt reports whether the position cannot be entered: out of
// bounds, impassable terrain, or occupied by a blocking entity other
// than ignoreID.
func (m *GameMap) BlockedAt(p Position, ignoreID string) bool {
	tile := m.TileAt(p)
	if tile == nil || !tile.Terrain.Passable() {
		return true
	}
	if occupant := m.EntityAt(p); occupant != nil && occupant.ID != ignoreID {
		return true
	}
	return false
}
