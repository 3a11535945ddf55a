// Package combatsvc implements the combat engine: starting a combat,
// advancing turns, detecting end conditions and computing rewards.
//
// Every operation is a synchronous computation over the caller-supplied
// Combat snapshot. The service holds no state between calls beyond its
// injected dice roller and id generator; the orchestrator owns the
// snapshot and is responsible for read-modify-write atomicity.
package combatsvc

//go:generate mockgen -destination=mock/mock_service.go -package=mockcombat -source=service.go

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/rpg-rules-engine/internal/dice"
	"github.com/KirkDiggler/rpg-rules-engine/internal/domain/game/combat"
	engerr "github.com/KirkDiggler/rpg-rules-engine/internal/errors"
	"github.com/KirkDiggler/rpg-rules-engine/internal/uuid"
	"github.com/KirkDiggler/rpg-rules-engine/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Service defines the combat engine interface
type Service interface {
	// StartCombat builds a combat from player records and enemy groups,
	// rolls initiative and fixes the turn order.
	StartCombat(input *StartCombatInput) (*combat.Combat, error)

	// NextTurn advances the combat to the next combatant able to act
	NextTurn(c *combat.Combat) error

	// CheckCombatEnd reports whether one side has been defeated
	CheckCombatEnd(c *combat.Combat) *CombatEndResult

	// EndCombat deactivates the combat and computes the XP award
	EndCombat(c *combat.Combat, outcome combat.Outcome) (*EndCombatResult, error)

	// ApplyDamage applies damage to a combatant
	ApplyDamage(c *combat.Combat, combatantID string, damage int) error

	// Heal restores hit points to a combatant
	Heal(c *combat.Combat, combatantID string, amount int) error
}

// PlayerInput is the plain character record consumed when starting a
// combat. Translation from stored character data is the orchestrator's
// job.
type PlayerInput struct {
	ID          string
	Name        string
	MaxHP       int
	CurrentHP   int // 0 means full
	ArmorClass  int
	DexModifier int
	Speed       int
}

// MonsterStatBlock is the shared stat block for one kind of enemy
type MonsterStatBlock struct {
	Name        string
	MaxHP       int
	ArmorClass  int
	DexModifier int
	Speed       int
	XP          int
	CR          float64
}

// EnemyGroup expands into Count individually-identified combatants
type EnemyGroup struct {
	StatBlock *MonsterStatBlock
	Count     int
}

// StartCombatInput contains data for starting a combat
type StartCombatInput struct {
	Players     []*PlayerInput
	EnemyGroups []*EnemyGroup

	// SurprisedIDs marks combatants that were caught off guard. They
	// still occupy an initiative slot; the orchestrator reads the flag
	// and denies them an action on their first turn.
	SurprisedIDs []string
}

// CombatEndResult is the outcome of an end-condition check
type CombatEndResult struct {
	ShouldEnd bool
	Outcome   combat.Outcome
}

// EndCombatResult carries the deactivated combat and the XP award
type EndCombatResult struct {
	Combat    *combat.Combat
	XPAwarded int
}

type service struct {
	roller        dice.Roller
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	// Roller resolves initiative rolls. Defaults to a time-seeded
	// random roller.
	Roller dice.Roller

	// UUIDGenerator assigns combat and combatant ids
	UUIDGenerator uuid.Generator
}

// NewService creates a new combat engine service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{}

	if cfg != nil && cfg.Roller != nil {
		svc.roller = cfg.Roller
	} else {
		svc.roller = dice.NewRandomRoller()
	}

	if cfg != nil && cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// StartCombat builds the combat, expands enemy groups into numbered
// combatants, rolls 1d20+DEX initiative for everyone and sorts the turn
// order descending. Ties break on DEX modifier, then on insertion order
// (players first, then enemy groups in input order).
func (s *service) StartCombat(input *StartCombatInput) (*combat.Combat, error) {
	if input == nil {
		return nil, engerr.InvalidArgument("input cannot be nil")
	}
	if len(input.Players) == 0 {
		return nil, engerr.Validation("at least one player combatant is required")
	}
	if len(input.EnemyGroups) == 0 {
		return nil, engerr.Validation("at least one enemy group is required")
	}

	c := combat.NewCombat(s.uuidGenerator.New())

	// Insertion order matters for initiative tiebreaks, so collect ids
	// as combatants are added.
	order := []string{}

	for _, player := range input.Players {
		if player == nil || player.ID == "" {
			return nil, engerr.Validation("player combatant requires an id")
		}
		currentHP := player.CurrentHP
		if currentHP <= 0 || currentHP > player.MaxHP {
			currentHP = player.MaxHP
		}
		c.AddCombatant(&combat.Combatant{
			ID:          player.ID,
			Name:        player.Name,
			Type:        combat.CombatantTypePlayer,
			DexModifier: player.DexModifier,
			CurrentHP:   currentHP,
			MaxHP:       player.MaxHP,
			ArmorClass:  player.ArmorClass,
			Speed:       player.Speed,
			Status:      combat.CombatantStatusActive,
			Conditions:  []string{},
		})
		order = append(order, player.ID)
	}

	for _, group := range input.EnemyGroups {
		if group == nil || group.StatBlock == nil {
			return nil, engerr.Validation("enemy group requires a stat block")
		}
		if group.Count < 1 {
			return nil, engerr.Validationf("enemy group %q requires a positive count", group.StatBlock.Name)
		}

		for i := 0; i < group.Count; i++ {
			name := group.StatBlock.Name
			if group.Count > 1 {
				name = fmt.Sprintf("%s %d", name, i+1)
			}
			id := s.uuidGenerator.New()
			c.AddCombatant(&combat.Combatant{
				ID:          id,
				Name:        name,
				Type:        combat.CombatantTypeEnemy,
				DexModifier: group.StatBlock.DexModifier,
				CurrentHP:   group.StatBlock.MaxHP,
				MaxHP:       group.StatBlock.MaxHP,
				ArmorClass:  group.StatBlock.ArmorClass,
				Speed:       group.StatBlock.Speed,
				XP:          group.StatBlock.XP,
				Status:      combat.CombatantStatusActive,
				Conditions:  []string{},
			})
			order = append(order, id)
		}
	}

	for _, surprisedID := range input.SurprisedIDs {
		combatant := c.Combatant(surprisedID)
		if combatant == nil {
			return nil, engerr.NotFoundf("surprised combatant '%s' not found", surprisedID)
		}
		combatant.Surprised = true
	}

	if err := s.rollInitiative(c, order); err != nil {
		return nil, err
	}

	c.Round = 1
	c.Turn = 0
	c.Active = true

	logger.Log.WithFields(logrus.Fields{
		"component":  "combat_engine",
		"combat_id":  c.ID,
		"combatants": len(c.TurnOrder),
	}).Debug("combat started")

	return c, nil
}

// rollInitiative rolls 1d20+DEX for every combatant and sorts order into
// the combat's turn order. The sort is stable, so equal initiative and
// equal DEX fall back to insertion order.
func (s *service) rollInitiative(c *combat.Combat, order []string) error {
	for _, id := range order {
		combatant := c.Combatant(id)
		notation := fmt.Sprintf("1d20%+d", combatant.DexModifier)
		if combatant.DexModifier == 0 {
			notation = "1d20"
		}

		result, err := s.roller.Roll(notation, "initiative")
		if err != nil {
			return engerr.Wrap(err, "failed to roll initiative")
		}
		combatant.Initiative = result.Total
		c.AddLogEntry(fmt.Sprintf("%s rolls initiative: %d %+d = %d",
			combatant.Name, result.Rolls[0], combatant.DexModifier, combatant.Initiative))
	}

	c.TurnOrder = make([]string, len(order))
	copy(c.TurnOrder, order)
	sort.SliceStable(c.TurnOrder, func(i, j int) bool {
		a := c.Combatant(c.TurnOrder[i])
		b := c.Combatant(c.TurnOrder[j])
		if a.Initiative != b.Initiative {
			return a.Initiative > b.Initiative
		}
		return a.DexModifier > b.DexModifier
	})

	return nil
}

// NextTurn advances to the next combatant whose status is not dead or
// fled. Passing the end of the order wraps to index 0 and increments the
// round. Unconscious combatants keep their slot; they may be revived
// before their turn comes up again.
func (s *service) NextTurn(c *combat.Combat) error {
	if c == nil {
		return engerr.InvalidArgument("combat cannot be nil")
	}
	if !c.Active {
		return engerr.InvalidState("combat has already ended")
	}

	n := len(c.TurnOrder)
	if n == 0 {
		return engerr.InvalidState("combat has no combatants")
	}

	for i := 0; i < n; i++ {
		c.Turn++
		if c.Turn >= n {
			c.Turn = 0
			c.Round++
		}

		combatant := c.CurrentCombatant()
		if combatant != nil && !combatant.IsDefeated() {
			c.AddLogEntry(fmt.Sprintf("%s's turn", combatant.Name))
			return nil
		}
	}

	return engerr.InvalidState("no combatant is able to act")
}

// CheckCombatEnd reports victory when every enemy is dead or fled, and
// defeat when every player is.
func (s *service) CheckCombatEnd(c *combat.Combat) *CombatEndResult {
	if c == nil {
		return &CombatEndResult{}
	}

	if c.SideDefeated(combat.CombatantTypeEnemy) {
		return &CombatEndResult{ShouldEnd: true, Outcome: combat.OutcomeVictory}
	}
	if c.SideDefeated(combat.CombatantTypePlayer) {
		return &CombatEndResult{ShouldEnd: true, Outcome: combat.OutcomeDefeat}
	}

	return &CombatEndResult{}
}

// EndCombat deactivates the combat. XP is awarded only for a victory and
// counts enemies that died; enemies that fled award nothing.
func (s *service) EndCombat(c *combat.Combat, outcome combat.Outcome) (*EndCombatResult, error) {
	if c == nil {
		return nil, engerr.InvalidArgument("combat cannot be nil")
	}
	if !c.Active {
		return nil, engerr.InvalidState("combat has already ended")
	}

	switch outcome {
	case combat.OutcomeVictory, combat.OutcomeDefeat, combat.OutcomeFled, combat.OutcomeNegotiated:
	default:
		return nil, engerr.Validationf("unknown combat outcome %q", outcome)
	}

	c.Active = false
	c.AddLogEntry(fmt.Sprintf("combat ended: %s", outcome))

	xp := 0
	if outcome == combat.OutcomeVictory {
		for _, enemy := range c.CombatantsByType(combat.CombatantTypeEnemy) {
			if enemy.Status == combat.CombatantStatusDead {
				xp += enemy.XP
			}
		}
	}

	return &EndCombatResult{Combat: c, XPAwarded: xp}, nil
}

// ApplyDamage applies damage to a combatant
func (s *service) ApplyDamage(c *combat.Combat, combatantID string, damage int) error {
	if c == nil {
		return engerr.InvalidArgument("combat cannot be nil")
	}
	if !c.Active {
		return engerr.InvalidState("combat has already ended")
	}
	if damage < 0 {
		return engerr.Validationf("damage cannot be negative, got %d", damage)
	}

	combatant := c.Combatant(combatantID)
	if combatant == nil {
		return engerr.NotFoundf("combatant '%s' not found", combatantID)
	}

	combatant.ApplyDamage(damage)
	c.AddLogEntry(fmt.Sprintf("%s takes %d damage (%d/%d HP)",
		combatant.Name, damage, combatant.CurrentHP, combatant.MaxHP))
	if combatant.Status == combat.CombatantStatusDead {
		c.AddLogEntry(fmt.Sprintf("%s dies", combatant.Name))
	} else if combatant.Status == combat.CombatantStatusUnconscious {
		c.AddLogEntry(fmt.Sprintf("%s falls unconscious", combatant.Name))
	}

	return nil
}

// Heal restores hit points to a combatant
func (s *service) Heal(c *combat.Combat, combatantID string, amount int) error {
	if c == nil {
		return engerr.InvalidArgument("combat cannot be nil")
	}
	if !c.Active {
		return engerr.InvalidState("combat has already ended")
	}
	if amount < 0 {
		return engerr.Validationf("healing cannot be negative, got %d", amount)
	}

	combatant := c.Combatant(combatantID)
	if combatant == nil {
		return engerr.NotFoundf("combatant '%s' not found", combatantID)
	}

	combatant.Heal(amount)
	c.AddLogEntry(fmt.Sprintf("%s is healed for %d (%d/%d HP)",
		combatant.Name, amount, combatant.CurrentHP, combatant.MaxHP))

	return nil
}
