package dice_test

import (
	"testing"

	mockdice "github.com/KirkDiggler/rpg-rules-engine/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		notation   string
		wantTotal  int
		wantRolls  []int
		wantCrit   bool
		wantFumble bool
		wantErr    bool
	}{
		{
			name:       "single d20 roll",
			setupRolls: []int{15},
			notation:   "1d20",
			wantTotal:  15,
			wantRolls:  []int{15},
		},
		{
			name:       "2d6+3",
			setupRolls: []int{4, 5},
			notation:   "2d6+3",
			wantTotal:  12, // 4+5+3
			wantRolls:  []int{4, 5},
		},
		{
			name:       "critical hit d20",
			setupRolls: []int{20},
			notation:   "1d20+5",
			wantTotal:  25,
			wantRolls:  []int{20},
			wantCrit:   true,
		},
		{
			name:       "fumble d20",
			setupRolls: []int{1},
			notation:   "1d20+5",
			wantTotal:  6,
			wantRolls:  []int{1},
			wantFumble: true,
		},
		{
			name:       "negative modifier",
			setupRolls: []int{3, 6},
			notation:   "2d8-2",
			wantTotal:  7, // 3+6-2
			wantRolls:  []int{3, 6},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{10},
			notation:   "2d6",
			wantErr:    true,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{7},
			notation:   "1d6",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := roller.Roll(tt.notation, "")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
			assert.Equal(t, tt.wantCrit, result.IsCrit)
			assert.Equal(t, tt.wantFumble, result.IsFumble)
		})
	}
}

func TestManualMockRoller_Reset(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{5})

	_, err := roller.Roll("1d6", "")
	require.NoError(t, err)

	roller.Reset()
	_, err = roller.Roll("1d6", "")
	assert.Error(t, err, "roll after reset should run out of scripted rolls")

	roller.SetNextRoll(4)
	result, err := roller.Roll("1d6", "")
	require.NoError(t, err)
	assert.Equal(t, 4, result.Total)
}
