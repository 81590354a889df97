// Package engine implements the breakeven solver and the projection engine.
// Everything here is a pure function of its inputs: same parameters in,
// same numbers out, no side effects.
package engine

import "errors"

// ErrInvalidParameters reports inputs that would produce undefined
// arithmetic (non-finite or negative money values, growth below -100%).
var ErrInvalidParameters = errors.New("invalid parameters")

// ErrDivisionUndefined reports a contribution margin of zero or less:
// the business cannot break even at the given price, so breakeven and
// goal volumes are undefined. This is surfaced, never clamped.
var ErrDivisionUndefined = errors.New("breakeven undefined: contribution margin is zero or negative")
