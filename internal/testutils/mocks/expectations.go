// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	dicemock "github.com/lmaotrigine/diceroll/internal/dice/mock"
)

// ExpectRolls expects one Roll(sides) call per value, in order, returning
// the values.
func ExpectRolls(mockRoller *dicemock.MockRoller, sides int, values ...int) {
	calls := make([]any, 0, len(values))
	for _, v := range values {
		calls = append(calls, mockRoller.EXPECT().Roll(sides).Return(v, nil))
	}
	if len(calls) > 1 {
		gomock.InOrder(calls...)
	}
}
