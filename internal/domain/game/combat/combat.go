package combat

import (
	"fmt"
)

// Outcome represents how a combat concluded
type Outcome string

const (
	OutcomeVictory    Outcome = "victory"
	OutcomeDefeat     Outcome = "defeat"
	OutcomeFled       Outcome = "fled"
	OutcomeNegotiated Outcome = "negotiated"
)

// Combat is a turn-ordered fight between player and enemy combatants.
// Membership of the initiative order is fixed after creation. The struct
// is a plain snapshot: the engine holds no state between calls, and the
// orchestrator owns the value between invocations.
//
// Invariants: Round >= 1, 0 <= Turn < len(TurnOrder), HP clamped to
// [0, MaxHP] on every combatant.
type Combat struct {
	ID         string                `json:"id"`
	Round      int                   `json:"round"`
	Turn       int                   `json:"current_turn_index"`
	Combatants map[string]*Combatant `json:"combatants"`
	TurnOrder  []string              `json:"initiative_order"`
	Active     bool                  `json:"active"`
	CombatLog  []string              `json:"combat_log,omitempty"`
}

// NewCombat creates an empty combat in its forming state
func NewCombat(id string) *Combat {
	return &Combat{
		ID:         id,
		Round:      1,
		Turn:       0,
		Combatants: make(map[string]*Combatant),
		TurnOrder:  []string{},
		CombatLog:  []string{},
	}
}

// AddCombatant adds a combatant to the combat
func (c *Combat) AddCombatant(combatant *Combatant) {
	c.Combatants[combatant.ID] = combatant
}

// Combatant returns the combatant with the given id, or nil
func (c *Combat) Combatant(id string) *Combatant {
	return c.Combatants[id]
}

// CurrentCombatant returns the combatant whose turn it is
func (c *Combat) CurrentCombatant() *Combatant {
	if c.Turn < len(c.TurnOrder) {
		return c.Combatants[c.TurnOrder[c.Turn]]
	}
	return nil
}

// CombatantsByType returns all combatants on the given side, in
// initiative order.
func (c *Combat) CombatantsByType(t CombatantType) []*Combatant {
	out := []*Combatant{}
	for _, id := range c.TurnOrder {
		if combatant, ok := c.Combatants[id]; ok && combatant.Type == t {
			out = append(out, combatant)
		}
	}
	return out
}

// SideDefeated reports whether every combatant on the given side is dead
// or fled.
func (c *Combat) SideDefeated(t CombatantType) bool {
	found := false
	for _, combatant := range c.Combatants {
		if combatant.Type != t {
			continue
		}
		found = true
		if !combatant.IsDefeated() {
			return false
		}
	}
	return found
}

// AddLogEntry appends a round-stamped entry to the combat log
func (c *Combat) AddLogEntry(entry string) {
	if c.CombatLog == nil {
		c.CombatLog = []string{}
	}
	c.CombatLog = append(c.CombatLog, fmt.Sprintf("Round %d: %s", c.Round, entry))

	// Keep only the last 50 entries to prevent unbounded growth
	if len(c.CombatLog) > 50 {
		c.CombatLog = c.CombatLog[len(c.CombatLog)-50:]
	}
}
