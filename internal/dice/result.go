package dice

import (
	"strconv"
	"strings"
)

// RollResult is the outcome of rolling one dice group
type RollResult struct {
	// First holds one value per die, in draw order
	First []int `json:"first"`

	// Second is only set for advantage and disadvantage rolls
	Second []int `json:"second,omitempty"`

	// Result is the resolved value, modifier included
	Result int `json:"result"`
}

// String renders the individual dice: "[4, 2, 6]" for a regular roll and
// "[[4, 2], [5, 1]]" when a second batch was rolled.
func (r *RollResult) String() string {
	if r.Second == nil {
		return formatRolls(r.First)
	}
	return "[" + formatRolls(r.First) + ", " + formatRolls(r.Second) + "]"
}

// DiceSetResult is the outcome of rolling a dice set
type DiceSetResult struct {
	// Results has one entry per dice group, in set order
	Results []*RollResult `json:"results"`

	// Total is the signed sum of the group results
	Total int `json:"total"`
}

func formatRolls(rolls []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range rolls {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}
