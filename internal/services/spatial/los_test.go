package spatial_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-rules-engine/internal/domain/game/grid"
	"github.com/KirkDiggler/rpg-rules-engine/internal/services/spatial"
	"github.com/KirkDiggler/rpg-rules-engine/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineOfSight(t *testing.T) {
	t.Run("clear line", func(t *testing.T) {
		m := testutils.CreateOpenTestMap(10, 10)

		result := spatial.LineOfSight(m, grid.Position{X: 0, Y: 0}, grid.Position{X: 5, Y: 0})
		require.NotNil(t, result)
		assert.True(t, result.HasLoS)
		assert.Equal(t, 5, result.Distance)
		assert.Equal(t, grid.CoverNone, result.Cover)
		assert.Equal(t, grid.LightBright, result.Light)
	})

	t.Run("wall blocks sight", func(t *testing.T) {
		m := testutils.CreateOpenTestMap(10, 10)
		m.TileAt(grid.Position{X: 2, Y: 0}).Terrain = grid.TerrainWall

		result := spatial.LineOfSight(m, grid.Position{X: 0, Y: 0}, grid.Position{X: 5, Y: 0})
		assert.False(t, result.HasLoS)
		assert.Equal(t, grid.CoverTotal, result.Cover)
	})

	t.Run("intervening rubble grants half cover", func(t *testing.T) {
		m := testutils.CreateOpenTestMap(10, 10)
		m.TileAt(grid.Position{X: 2, Y: 0}).Terrain = grid.TerrainRubble

		result := spatial.LineOfSight(m, grid.Position{X: 0, Y: 0}, grid.Position{X: 5, Y: 0})
		assert.True(t, result.HasLoS)
		assert.Equal(t, grid.CoverHalf, result.Cover)
	})

	t.Run("worst intervening cover wins", func(t *testing.T) {
		m := testutils.CreateOpenTestMap(10, 10)
		m.TileAt(grid.Position{X: 1, Y: 0}).Terrain = grid.TerrainRubble
		m.TileAt(grid.Position{X: 2, Y: 0}).Terrain = grid.TerrainDifficult

		result := spatial.LineOfSight(m, grid.Position{X: 0, Y: 0}, grid.Position{X: 5, Y: 0})
		assert.True(t, result.HasLoS)
		assert.Equal(t, grid.CoverHalf, result.Cover)
	})

	t.Run("endpoints are not obstacles", func(t *testing.T) {
		m := testutils.CreateOpenTestMap(10, 10)
		m.TileAt(grid.Position{X: 3, Y: 0}).Terrain = grid.TerrainWall

		// A creature can see the wall face itself.
		result := spatial.LineOfSight(m, grid.Position{X: 0, Y: 0}, grid.Position{X: 3, Y: 0})
		assert.True(t, result.HasLoS)
	})

	t.Run("same tile", func(t *testing.T) {
		m := testutils.CreateOpenTestMap(10, 10)

		result := spatial.LineOfSight(m, grid.Position{X: 4, Y: 4}, grid.Position{X: 4, Y: 4})
		assert.True(t, result.HasLoS)
		assert.Zero(t, result.Distance)
	})

	t.Run("diagonal line through a wall", func(t *testing.T) {
		m := testutils.CreateOpenTestMap(10, 10)
		m.TileAt(grid.Position{X: 2, Y: 2}).Terrain = grid.TerrainWall

		result := spatial.LineOfSight(m, grid.Position{X: 0, Y: 0}, grid.Position{X: 4, Y: 4})
		assert.False(t, result.HasLoS)
	})

	t.Run("light comes from the destination tile", func(t *testing.T) {
		m := testutils.CreateOpenTestMap(10, 10)
		m.TileAt(grid.Position{X: 5, Y: 0}).Light = grid.LightDim

		result := spatial.LineOfSight(m, grid.Position{X: 0, Y: 0}, grid.Position{X: 5, Y: 0})
		assert.Equal(t, grid.LightDim, result.Light)
	})

	t.Run("out of bounds target", func(t *testing.T) {
		m := testutils.CreateOpenTestMap(10, 10)

		result := spatial.LineOfSight(m, grid.Position{X: 0, Y: 0}, grid.Position{X: 20, Y: 0})
		assert.False(t, result.HasLoS)
		assert.Equal(t, grid.LightDarkness, result.Light)
	})
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name    string
		from    grid.Position
		to      grid.Position
		squares int
	}{
		{name: "same tile", from: grid.Position{X: 3, Y: 3}, to: grid.Position{X: 3, Y: 3}, squares: 0},
		{name: "orthogonal", from: grid.Position{X: 0, Y: 0}, to: grid.Position{X: 4, Y: 0}, squares: 4},
		{name: "pure diagonal", from: grid.Position{X: 0, Y: 0}, to: grid.Position{X: 3, Y: 3}, squares: 3},
		{name: "mixed", from: grid.Position{X: 1, Y: 1}, to: grid.Position{X: 5, Y: 3}, squares: 4},
		{name: "negative direction", from: grid.Position{X: 5, Y: 5}, to: grid.Position{X: 2, Y: 4}, squares: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := spatial.Distance(tt.from, tt.to)
			assert.Equal(t, tt.squares, result.Squares)
			assert.Equal(t, tt.squares*spatial.FeetPerSquare, result.Feet)
		})
	}
}
