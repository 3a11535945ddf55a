// Package grid provides the tactical-map data model: positions, terrain,
// tiles, map entities and the map itself. Algorithms over these types
// (pathfinding, line of sight, visibility) live in the spatial service.
package grid

// Position is an integer coordinate pair on the tile grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shift returns a new position offset by (dx, dy). The receiver is not
// modified.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Chebyshev returns the grid-square distance to other: the number of
// king moves between the two cells. This matches the uniform diagonal
// movement rule, where a diagonal step costs the same as an orthogonal
// one.
func (p Position) Chebyshev(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// DirectionTo returns the unit step (-1, 0 or 1 per axis) from p toward
// other.
func (p Position) DirectionTo(other Position) (sx, sy int) {
	if other.X > p.X {
		sx = 1
	} else if other.X < p.X {
		sx = -1
	}
	if other.Y > p.Y {
		sy = 1
	} else if other.Y < p.Y {
		sy = -1
	}
	return sx, sy
}
