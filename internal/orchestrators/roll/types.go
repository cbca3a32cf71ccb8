package roll

import (
	"time"

	"github.com/lmaotrigine/diceroll/internal/dice"
)

// RollExpressionInput defines the request for rolling dice notation
type RollExpressionInput struct {
	Expression string
}

// RollExpressionOutput defines the response for rolling dice notation
type RollExpressionOutput struct {
	Outcome *Outcome
}

// RollSessionInput defines the request for rolling a prebuilt roll
type RollSessionInput struct {
	Roll *dice.Roll

	// Label is reported in place of an expression, e.g. "initiative"
	Label string
}

// RollSessionOutput defines the response for rolling a prebuilt roll
type RollSessionOutput struct {
	Outcome *Outcome
}

// Outcome is one evaluated roll with the metadata needed to display and
// verify it later
type Outcome struct {
	RollID     string                `json:"roll_id"`
	Expression string                `json:"expression,omitempty"`
	RolledAt   time.Time             `json:"rolled_at"`
	Roll       *dice.Roll            `json:"-"`
	Sets       []*dice.DiceSetResult `json:"sets"`
}

// Totals returns each set's total, in set order
func (o *Outcome) Totals() []int {
	totals := make([]int, len(o.Sets))
	for i, set := range o.Sets {
		totals[i] = set.Total
	}
	return totals
}
