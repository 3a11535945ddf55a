package spatial_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-rules-engine/internal/domain/game/grid"
	"github.com/KirkDiggler/rpg-rules-engine/internal/errors"
	"github.com/KirkDiggler/rpg-rules-engine/internal/services/spatial"
	"github.com/KirkDiggler/rpg-rules-engine/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	t.Run("full window when away from edges", func(t *testing.T) {
		m := testutils.CreateOpenTestMap(10, 10)

		result, err := spatial.Query(m, spatial.QueryParams{
			Center:       grid.Position{X: 5, Y: 5},
			Radius:       2,
			IncludeTiles: true,
		})
		require.NoError(t, err)

		assert.Len(t, result.Positions, 25)
		assert.Len(t, result.Tiles, 25)
		assert.Empty(t, result.Entities)
	})

	t.Run("window clipped at the map edge", func(t *testing.T) {
		m := testutils.CreateOpenTestMap(10, 10)

		result, err := spatial.Query(m, spatial.QueryParams{
			Center: grid.Position{X: 0, Y: 0},
			Radius: 2,
		})
		require.NoError(t, err)

		assert.Len(t, result.Positions, 9)
		assert.Empty(t, result.Tiles, "tiles only collected when requested")
	})

	t.Run("entities filtered by radius and sorted by id", func(t *testing.T) {
		m := testutils.CreateOpenTestMap(10, 10)
		testutils.PlaceTestEntity(m, "b-fighter", grid.Position{X: 5, Y: 5}, 6)
		testutils.PlaceTestEntity(m, "a-rogue", grid.Position{X: 6, Y: 6}, 6)
		testutils.PlaceTestEntity(m, "far-away", grid.Position{X: 0, Y: 0}, 6)

		result, err := spatial.Query(m, spatial.QueryParams{
			Center:          grid.Position{X: 5, Y: 5},
			Radius:          2,
			IncludeEntities: true,
		})
		require.NoError(t, err)

		require.Len(t, result.Entities, 2)
		assert.Equal(t, "a-rogue", result.Entities[0].ID)
		assert.Equal(t, "b-fighter", result.Entities[1].ID)
	})

	t.Run("entity type allow-list", func(t *testing.T) {
		m := testutils.CreateOpenTestMap(10, 10)
		testutils.PlaceTestEntity(m, "hero", grid.Position{X: 5, Y: 5}, 6)
		spatial.PlaceEntity(m, spatial.EntityDescriptor{ID: "gob", Type: grid.EntityTypeMonster, Speed: 6}, grid.Position{X: 6, Y: 5})

		result, err := spatial.Query(m, spatial.QueryParams{
			Center:          grid.Position{X: 5, Y: 5},
			Radius:          3,
			IncludeEntities: true,
			EntityTypes:     []grid.EntityType{grid.EntityTypeMonster},
		})
		require.NoError(t, err)

		require.Len(t, result.Entities, 1)
		assert.Equal(t, "gob", result.Entities[0].ID)
	})

	t.Run("center off the map yields empty results", func(t *testing.T) {
		m := testutils.CreateOpenTestMap(10, 10)

		result, err := spatial.Query(m, spatial.QueryParams{
			Center:          grid.Position{X: 50, Y: 50},
			Radius:          2,
			IncludeTiles:    true,
			IncludeEntities: true,
		})
		require.NoError(t, err)

		assert.Empty(t, result.Positions)
		assert.Empty(t, result.Tiles)
		assert.Empty(t, result.Entities)
	})

	t.Run("radius validation", func(t *testing.T) {
		m := testutils.CreateOpenTestMap(10, 10)

		_, err := spatial.Query(m, spatial.QueryParams{Radius: -1})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))

		_, err = spatial.Query(m, spatial.QueryParams{Radius: spatial.MaxQueryRadius + 1})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("nil map", func(t *testing.T) {
		_, err := spatial.Query(nil, spatial.QueryParams{Radius: 1})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}
