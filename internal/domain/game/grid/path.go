package grid

// Path is an ordered sequence of positions from a start (exclusive) to a
// destination (inclusive).
type Path []Position

// Destination returns the final position, or ok=false for an empty path
func (p Path) Destination() (Position, bool) {
	if len(p) == 0 {
		return Position{}, false
	}
	return p[len(p)-1], true
}

// Cost sums the movement cost of entering each tile on the path.
// Positions off the map or on impassable terrain contribute nothing;
// validity is the walker's concern.
func (p Path) Cost(m *GameMap) int {
	total := 0
	for _, pos := range p {
		if tile := m.TileAt(pos); tile != nil && tile.Terrain.Passable() {
			total += tile.Terrain.MoveCost()
		}
	}
	return total
}
