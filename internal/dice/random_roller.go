package dice

import (
	"math/rand"
	"time"
)

// randomRoller implements Roller over a private rand.Rand.
// Each roller owns its generator state, so a roller is not safe for
// concurrent use but never contends with other rollers.
type randomRoller struct {
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the current time.
func NewRandomRoller() Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededRoller creates a deterministic roller. Given the same seed and
// the same sequence of calls it produces the same results, which is what
// seeded test replay relies on.
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(notation, reason string) (*RollResult, error) {
	count, sides, modifier, err := ParseNotation(notation)
	if err != nil {
		return nil, err
	}

	rolls := make([]int, count)
	total := modifier
	for i := 0; i < count; i++ {
		roll := r.rng.Intn(sides) + 1
		rolls[i] = roll
		total += roll
	}

	result := &RollResult{
		Notation: notation,
		Rolls:    rolls,
		Modifier: modifier,
		Total:    total,
		Reason:   reason,
	}

	if count == 1 && sides == 20 {
		result.IsCrit = rolls[0] == 20
		result.IsFumble = rolls[0] == 1
	}

	return result, nil
}
