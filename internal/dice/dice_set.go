package dice

import (
	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/lmaotrigine/diceroll/internal/errors"
)

// DiceSet is an ordered list of dice groups rolled together into one total
type DiceSet struct {
	dice []*Dice
}

// NewDiceSet builds a set from groups created with NewDice
func NewDiceSet(dice ...*Dice) *DiceSet {
	owned := make([]*Dice, len(dice))
	copy(owned, dice)
	return &DiceSet{dice: owned}
}

// Dice returns the set's groups in order
func (s *DiceSet) Dice() []*Dice {
	out := make([]*Dice, len(s.dice))
	copy(out, s.dice)
	return out
}

// Roll evaluates the set with the rpg-toolkit default roller
func (s *DiceSet) Roll() (*DiceSetResult, error) {
	return s.RollWith(rpgdice.DefaultRoller)
}

// RollWith rolls every group in order with the same roller and folds the
// results left to right from zero. An empty set totals 0.
func (s *DiceSet) RollWith(roller rpgdice.Roller) (*DiceSetResult, error) {
	results := make([]*RollResult, 0, len(s.dice))
	total := 0

	for i, d := range s.dice {
		result, err := d.RollWith(roller)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll dice group %d", i+1)
		}

		if d.operation == Subtraction {
			total -= result.Result
		} else {
			total += result.Result
		}
		results = append(results, result)
	}

	return &DiceSetResult{
		Results: results,
		Total:   total,
	}, nil
}
