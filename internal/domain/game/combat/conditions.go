package combat

// Well-known condition names. Conditions are free-form strings so the
// orchestrator can introduce its own; these are the ones the engine and
// its tests reference.
const (
	ConditionPoisoned   = "poisoned"
	ConditionStunned    = "stunned"
	ConditionProne      = "prone"
	ConditionFrightened = "frightened"
)

// HasCondition checks if a combatant has a specific condition
func (c *Combatant) HasCondition(condition string) bool {
	for _, cond := range c.Conditions {
		if cond == condition {
			return true
		}
	}
	return false
}

// AddCondition adds a condition to the combatant if not already present
func (c *Combatant) AddCondition(condition string) {
	if !c.HasCondition(condition) {
		c.Conditions = append(c.Conditions, condition)
	}
}

// RemoveCondition removes a specific condition
func (c *Combatant) RemoveCondition(condition string) {
	newConditions := []string{}
	for _, cond := range c.Conditions {
		if cond != condition {
			newConditions = append(newConditions, cond)
		}
	}
	c.Conditions = newConditions
}
