package grid_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-rules-engine/internal/domain/game/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition_Chebyshev(t *testing.T) {
	tests := []struct {
		name string
		a, b grid.Position
		want int
	}{
		{name: "same cell", a: grid.Position{X: 2, Y: 2}, b: grid.Position{X: 2, Y: 2}, want: 0},
		{name: "orthogonal", a: grid.Position{X: 0, Y: 0}, b: grid.Position{X: 4, Y: 0}, want: 4},
		{name: "pure diagonal", a: grid.Position{X: 0, Y: 0}, b: grid.Position{X: 3, Y: 3}, want: 3},
		{name: "dominant axis wins", a: grid.Position{X: 0, Y: 0}, b: grid.Position{X: 5, Y: 2}, want: 5},
		{name: "symmetric", a: grid.Position{X: 5, Y: 2}, b: grid.Position{X: 0, Y: 0}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Chebyshev(tt.b))
		})
	}
}

func TestPosition_DirectionTo(t *testing.T) {
	from := grid.Position{X: 3, Y: 3}

	sx, sy := from.DirectionTo(grid.Position{X: 7, Y: 0})
	assert.Equal(t, 1, sx)
	assert.Equal(t, -1, sy)

	sx, sy = from.DirectionTo(from)
	assert.Zero(t, sx)
	assert.Zero(t, sy)
}

func TestTerrainProperties(t *testing.T) {
	assert.Equal(t, 1, grid.TerrainNormal.MoveCost())
	assert.Equal(t, 2, grid.TerrainDifficult.MoveCost())
	assert.Equal(t, 2, grid.TerrainWater.MoveCost())

	assert.False(t, grid.TerrainWall.Passable())
	assert.True(t, grid.TerrainWall.BlocksSight())
	assert.Equal(t, grid.CoverTotal, grid.TerrainWall.Cover())

	assert.False(t, grid.TerrainPit.Passable())
	assert.False(t, grid.TerrainPit.BlocksSight(), "a pit is open air")

	assert.Equal(t, grid.CoverHalf, grid.TerrainRubble.Cover())
	assert.Equal(t, grid.CoverNone, grid.TerrainNormal.Cover())

	// Unknown terrain falls back to open ground.
	assert.True(t, grid.Terrain("lava?").Passable())
	assert.Equal(t, 1, grid.Terrain("lava?").MoveCost())
}

func TestCover_Worst(t *testing.T) {
	assert.Equal(t, grid.CoverHalf, grid.CoverNone.Worst(grid.CoverHalf))
	assert.Equal(t, grid.CoverTotal, grid.CoverTotal.Worst(grid.CoverHalf))
	assert.Equal(t, "three-quarters", grid.CoverThreeQuarters.String())
}

func TestGameMap_Bounds(t *testing.T) {
	m := &grid.GameMap{Width: 4, Height: 3}
	m.Tiles = make([][]grid.Tile, m.Height)
	for y := range m.Tiles {
		m.Tiles[y] = make([]grid.Tile, m.Width)
	}

	assert.True(t, m.InBounds(grid.Position{X: 0, Y: 0}))
	assert.True(t, m.InBounds(grid.Position{X: 3, Y: 2}))
	assert.False(t, m.InBounds(grid.Position{X: 4, Y: 2}))
	assert.False(t, m.InBounds(grid.Position{X: 0, Y: -1}))

	require.NotNil(t, m.TileAt(grid.Position{X: 1, Y: 1}))
	assert.Nil(t, m.TileAt(grid.Position{X: 9, Y: 9}))
}
