// Package testutils provides fixtures shared across engine test
// packages.
package testutils

import (
	"fmt"

	"github.com/KirkDiggler/rpg-rules-engine/internal/domain/game/combat"
	"github.com/KirkDiggler/rpg-rules-engine/internal/domain/game/grid"
	combatsvc "github.com/KirkDiggler/rpg-rules-engine/internal/services/combat"
	"github.com/KirkDiggler/rpg-rules-engine/internal/services/spatial"
)

// CreateTestPlayer creates a player input with sensible defaults
func CreateTestPlayer(id, name string, dexModifier int) *combatsvc.PlayerInput {
	return &combatsvc.PlayerInput{
		ID:          id,
		Name:        name,
		MaxHP:       12,
		ArmorClass:  15,
		DexModifier: dexModifier,
		Speed:       30,
	}
}

// CreateTestGoblinBlock creates a goblin stat block
func CreateTestGoblinBlock() *combatsvc.MonsterStatBlock {
	return &combatsvc.MonsterStatBlock{
		Name:        "Goblin",
		MaxHP:       7,
		ArmorClass:  13,
		DexModifier: 2,
		Speed:       30,
		XP:          50,
		CR:          0.25,
	}
}

// CreateTestCombatant creates an active combatant for direct domain tests
func CreateTestCombatant(id string, t combat.CombatantType, hp int) *combat.Combatant {
	return &combat.Combatant{
		ID:         id,
		Name:       id,
		Type:       t,
		CurrentHP:  hp,
		MaxHP:      hp,
		ArmorClass: 13,
		Speed:      30,
		Status:     combat.CombatantStatusActive,
		Conditions: []string{},
	}
}

// CreateTestCombat builds an active combat from combatants, in the given
// turn order.
func CreateTestCombat(combatants ...*combat.Combatant) *combat.Combat {
	c := combat.NewCombat("combat-test")
	for _, combatant := range combatants {
		c.AddCombatant(combatant)
		c.TurnOrder = append(c.TurnOrder, combatant.ID)
	}
	c.Active = true
	return c
}

// CreateTestMap builds an all-normal-terrain map with a wall border
func CreateTestMap(width, height int) *grid.GameMap {
	m, err := spatial.NewMap(width, height, "test-map", grid.TerrainNormal, grid.TerrainWall)
	if err != nil {
		panic(fmt.Sprintf("failed to build test map: %v", err))
	}
	return m
}

// CreateOpenTestMap builds an all-normal-terrain map with no border walls
func CreateOpenTestMap(width, height int) *grid.GameMap {
	m, err := spatial.NewMap(width, height, "test-map", grid.TerrainNormal, "")
	if err != nil {
		panic(fmt.Sprintf("failed to build test map: %v", err))
	}
	return m
}

// PlaceTestEntity places a character entity and panics when placement
// fails, keeping test setup terse.
func PlaceTestEntity(m *grid.GameMap, id string, pos grid.Position, speed int) *grid.MapEntity {
	e := spatial.PlaceEntity(m, spatial.EntityDescriptor{ID: id, Type: grid.EntityTypeCharacter, Speed: speed}, pos)
	if e == nil {
		panic(fmt.Sprintf("failed to place test entity %s at (%d,%d)", id, pos.X, pos.Y))
	}
	return e
}
