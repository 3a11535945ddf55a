package combat

// CombatantType represents the side a combatant fights on
type CombatantType string

const (
	CombatantTypePlayer CombatantType = "player"
	CombatantTypeEnemy  CombatantType = "enemy"
)

// CombatantStatus represents the current state of a combatant
type CombatantStatus string

const (
	CombatantStatusActive      CombatantStatus = "active"
	CombatantStatusUnconscious CombatantStatus = "unconscious"
	CombatantStatusDead        CombatantStatus = "dead"
	CombatantStatusFled        CombatantStatus = "fled"
)

// Combatant represents a participant in combat. A combatant belongs to
// exactly one Combat and is mutated only through engine operations or the
// explicit damage/healing application below.
type Combatant struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        CombatantType   `json:"type"`
	Initiative  int             `json:"initiative"`
	DexModifier int             `json:"dex_modifier"`
	CurrentHP   int             `json:"current_hp"`
	MaxHP       int             `json:"max_hp"`
	ArmorClass  int             `json:"armor_class"`
	Speed       int             `json:"speed"`
	Status      CombatantStatus `json:"status"`
	Surprised   bool            `json:"surprised,omitempty"`
	Conditions  []string        `json:"conditions"`

	// XP is the experience value awarded when an enemy is defeated.
	// Zero for players.
	XP int `json:"xp,omitempty"`
}

// IsAlive returns true if the combatant has more than 0 HP
func (c *Combatant) IsAlive() bool {
	return c.CurrentHP > 0
}

// IsDefeated returns true once the combatant no longer participates in
// the fight: dead or fled. Unconscious combatants still hold their slot.
func (c *Combatant) IsDefeated() bool {
	return c.Status == CombatantStatusDead || c.Status == CombatantStatusFled
}

// CanAct returns true if the combatant may take a turn
func (c *Combatant) CanAct() bool {
	return c.Status == CombatantStatusActive
}

// ApplyDamage reduces the combatant's HP, clamping at 0. Players fall
// unconscious at 0 HP; enemies die outright.
func (c *Combatant) ApplyDamage(damage int) {
	if damage < 0 {
		damage = 0
	}

	c.CurrentHP -= damage
	if c.CurrentHP > 0 {
		return
	}

	c.CurrentHP = 0
	if c.Type == CombatantTypePlayer {
		c.Status = CombatantStatusUnconscious
	} else {
		c.Status = CombatantStatusDead
	}
}

// Heal restores hit points, clamping at MaxHP. An unconscious combatant
// brought above 0 HP is back in the fight. Healing does not raise the dead.
func (c *Combatant) Heal(amount int) {
	if amount < 0 || c.Status == CombatantStatusDead {
		return
	}

	c.CurrentHP += amount
	if c.CurrentHP > c.MaxHP {
		c.CurrentHP = c.MaxHP
	}

	if c.CurrentHP > 0 && c.Status == CombatantStatusUnconscious {
		c.Status = CombatantStatusActive
	}
}

// Flee marks the combatant as having left the fight
func (c *Combatant) Flee() {
	if c.Status == CombatantStatusActive || c.Status == CombatantStatusUnconscious {
		c.Status = CombatantStatusFled
	}
}
