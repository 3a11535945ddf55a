package spatial

import (
	"github.com/KirkDiggler/rpg-rules-engine/internal/domain/game/grid"
)

// FeetPerSquare converts grid squares to real-world feet.
const FeetPerSquare = 5

// DistanceResult carries a grid distance in both squares and feet.
type DistanceResult struct {
	Squares int `json:"distance"`
	Feet    int `json:"feet"`
}

// Distance measures the gap between two cells using the same uniform
// diagonal rule as pathfinding: Chebyshev squares, five feet each.
func Distance(from, to grid.Position) DistanceResult {
	squares := from.Chebyshev(to)
	return DistanceResult{
		Squares: squares,
		Feet:    squares * FeetPerSquare,
	}
}
