// Package testutils provides shared test helpers: scripted rollers and
// dice fixtures.
package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lmaotrigine/diceroll/internal/dice"
)

// Modifier returns a pointer to m for DiceConfig.Modifier
func Modifier(m int) *int {
	return &m
}

// MustDice builds a dice group or fails the test
func MustDice(t *testing.T, cfg *dice.DiceConfig) *dice.Dice {
	t.Helper()

	d, err := dice.NewDice(cfg)
	require.NoError(t, err, "failed to build dice %+v", cfg)
	return d
}

// CreateTestAttackSet returns "1d20+5 adv" followed by "- 1d4", a set that
// exercises advantage, a modifier and subtraction. It draws three values.
func CreateTestAttackSet(t *testing.T) *dice.DiceSet {
	t.Helper()

	return dice.NewDiceSet(
		MustDice(t, &dice.DiceConfig{
			Count:    1,
			Sides:    20,
			Modifier: Modifier(5),
			RollType: dice.Advantage,
		}),
		MustDice(t, &dice.DiceConfig{
			Count:     1,
			Sides:     4,
			Operation: dice.Subtraction,
		}),
	)
}
