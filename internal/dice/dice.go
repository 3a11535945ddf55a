// Package dice resolves dice-notation expressions.
//
// Notation is "<count>d<sides>" with an optional signed modifier, e.g.
// "1d20", "2d6+3", "4D8-1". Parsing is case-insensitive. Randomness comes
// from a Roller so tests can script exact sequences.
package dice

import (
	"regexp"
	"strconv"
	"strings"

	engerr "github.com/KirkDiggler/rpg-rules-engine/internal/errors"
)

// notationPattern matches <count>d<sides>[(+|-)<modifier>].
var notationPattern = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// RollResult holds the outcome of a single dice-notation roll.
// Results are created fresh per roll and never mutated.
type RollResult struct {
	Notation string `json:"notation"`
	Rolls    []int  `json:"rolls"`
	Modifier int    `json:"modifier"`
	Total    int    `json:"total"`
	Reason   string `json:"reason,omitempty"`

	// IsCrit and IsFumble are set on a natural 20 / natural 1 when the
	// roll was a single d20.
	IsCrit   bool `json:"is_crit,omitempty"`
	IsFumble bool `json:"is_fumble,omitempty"`
}

// String renders the result in combat-log form, e.g. "2d6+3: [4 5] = 12".
func (r *RollResult) String() string {
	parts := make([]string, len(r.Rolls))
	for i, roll := range r.Rolls {
		parts[i] = strconv.Itoa(roll)
	}
	return r.Notation + ": [" + strings.Join(parts, " ") + "] = " + strconv.Itoa(r.Total)
}

// ParseNotation validates and decomposes a dice expression.
// Returns a validation error when the expression does not match the
// grammar. Callers are expected to pre-validate; this is a defensive
// re-check.
func ParseNotation(notation string) (count, sides, modifier int, err error) {
	matches := notationPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if matches == nil {
		return 0, 0, 0, engerr.Validationf("invalid dice notation %q", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, 0, engerr.Validationf("invalid dice count in %q", notation)
	}
	sides, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, 0, engerr.Validationf("invalid dice size in %q", notation)
	}
	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return 0, 0, 0, engerr.Validationf("invalid modifier in %q", notation)
		}
	}

	if count < 1 {
		return 0, 0, 0, engerr.Validationf("dice count must be at least 1, got %d", count)
	}
	if sides < 1 {
		return 0, 0, 0, engerr.Validationf("dice size must be at least 1, got %d", sides)
	}

	return count, sides, modifier, nil
}

// Roll resolves a dice expression using the process-wide random roller.
// Prefer an injected Roller when determinism matters.
func Roll(notation, reason string) (*RollResult, error) {
	return defaultRoller.Roll(notation, reason)
}

var defaultRoller = NewRandomRoller()
