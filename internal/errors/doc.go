// Package errors provides the coded error type used across diceroll.
//
// Every error that crosses a package boundary carries a Code, a short
// message and optional metadata:
//
//	err := errors.InvalidArgumentf("dice count must be positive: %d", count)
//	err := errors.InvalidArgument("empty dice expression").
//	    WithMeta("expression", input)
//
// Wrapping keeps the code of the innermost coded error:
//
//	if err := d.rollBatch(roller); err != nil {
//	    return errors.Wrap(err, "failed to roll primary dice")
//	}
//
// # Validation Errors
//
// Construction-time checks accumulate field errors and collapse into a
// single InvalidArgument error:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateMin("count", cfg.Count, 1, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// # Error Codes
//
//   - InvalidArgument: malformed notation or an invalid dice configuration
//   - OutOfRange: a random source produced a value outside the die range
//   - Unavailable: the random source could not produce a value
//   - Internal: anything else
package errors
