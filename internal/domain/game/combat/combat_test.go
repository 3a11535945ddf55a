package combat_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-rules-engine/internal/domain/game/combat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCombat() *combat.Combat {
	c := combat.NewCombat("combat-1")

	for _, combatant := range []*combat.Combatant{
		newCombatantWithID("hero", combat.CombatantTypePlayer, 12),
		newCombatantWithID("goblin-1", combat.CombatantTypeEnemy, 7),
		newCombatantWithID("goblin-2", combat.CombatantTypeEnemy, 7),
	} {
		c.AddCombatant(combatant)
		c.TurnOrder = append(c.TurnOrder, combatant.ID)
	}
	c.Active = true
	return c
}

func newCombatantWithID(id string, t combat.CombatantType, hp int) *combat.Combatant {
	c := newCombatant(t, hp)
	c.ID = id
	c.Name = id
	return c
}

func TestCurrentCombatant(t *testing.T) {
	c := buildCombat()

	current := c.CurrentCombatant()
	require.NotNil(t, current)
	assert.Equal(t, "hero", current.ID)

	c.Turn = 2
	assert.Equal(t, "goblin-2", c.CurrentCombatant().ID)

	c.Turn = 3
	assert.Nil(t, c.CurrentCombatant())
}

func TestCombatantsByType_InitiativeOrder(t *testing.T) {
	c := buildCombat()

	enemies := c.CombatantsByType(combat.CombatantTypeEnemy)
	require.Len(t, enemies, 2)
	assert.Equal(t, "goblin-1", enemies[0].ID)
	assert.Equal(t, "goblin-2", enemies[1].ID)

	players := c.CombatantsByType(combat.CombatantTypePlayer)
	require.Len(t, players, 1)
	assert.Equal(t, "hero", players[0].ID)
}

func TestSideDefeated(t *testing.T) {
	c := buildCombat()

	assert.False(t, c.SideDefeated(combat.CombatantTypeEnemy))

	c.Combatant("goblin-1").ApplyDamage(100)
	assert.False(t, c.SideDefeated(combat.CombatantTypeEnemy))

	c.Combatant("goblin-2").Flee()
	assert.True(t, c.SideDefeated(combat.CombatantTypeEnemy), "dead and fled both count as defeated")

	assert.False(t, c.SideDefeated(combat.CombatantTypePlayer))
}

func TestSideDefeated_UnconsciousIsNotDefeated(t *testing.T) {
	c := buildCombat()

	c.Combatant("hero").ApplyDamage(100)

	// An unconscious player is out of action but not defeated; the
	// defeat condition requires dead or fled.
	assert.False(t, c.SideDefeated(combat.CombatantTypePlayer))

	c.Combatant("hero").Status = combat.CombatantStatusDead
	assert.True(t, c.SideDefeated(combat.CombatantTypePlayer))
}

func TestAddLogEntry_RoundStampAndCap(t *testing.T) {
	c := buildCombat()
	c.Round = 3

	c.AddLogEntry("hero attacks")
	require.Len(t, c.CombatLog, 1)
	assert.Equal(t, "Round 3: hero attacks", c.CombatLog[0])

	for i := 0; i < 60; i++ {
		c.AddLogEntry("filler")
	}
	assert.Len(t, c.CombatLog, 50)
}
