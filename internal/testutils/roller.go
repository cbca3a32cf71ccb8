package testutils

import (
	"github.com/lmaotrigine/diceroll/internal/errors"
)

// ScriptedRoller returns a fixed sequence of values, one per Roll call, and
// records the die size requested by every call. It does not check values
// against the die size so tests can feed out of range draws.
type ScriptedRoller struct {
	values []int
	sizes  []int
}

// NewScriptedRoller creates a roller that returns values in order
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values}
}

// Roll returns the next scripted value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	if len(r.sizes) >= len(r.values) {
		return 0, errors.Internalf("scripted roller exhausted after %d rolls", len(r.values))
	}
	v := r.values[len(r.sizes)]
	r.sizes = append(r.sizes, size)
	return v, nil
}

// RollN returns the next count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	rolls := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		rolls = append(rolls, v)
	}
	return rolls, nil
}

// Calls returns how many values have been drawn
func (r *ScriptedRoller) Calls() int {
	return len(r.sizes)
}

// Sizes returns the die size of every draw, in order
func (r *ScriptedRoller) Sizes() []int {
	out := make([]int, len(r.sizes))
	copy(out, r.sizes)
	return out
}

// Remaining returns how many scripted values have not been drawn yet
func (r *ScriptedRoller) Remaining() int {
	return len(r.values) - len(r.sizes)
}

// ConstantRoller always rolls the same value
type ConstantRoller struct {
	Value int
}

// Roll returns the constant value
func (r *ConstantRoller) Roll(_ int) (int, error) {
	return r.Value, nil
}

// RollN returns count copies of the constant value
func (r *ConstantRoller) RollN(count, _ int) ([]int, error) {
	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = r.Value
	}
	return rolls, nil
}
