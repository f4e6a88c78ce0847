// Package day08 provides tunable options and error definitions for the
// junction box circuit computation.
package day08

import (
	"errors"
	"fmt"
)

// DefaultPairLimit is how many closest pairs part 1 considers when no option
// overrides it.
const DefaultPairLimit = 1000

// Sentinel errors for parsing and execution.
var (
	// ErrBadPoint is returned when a line is not three comma-separated
	// non-negative integers.
	ErrBadPoint = errors.New("day08: point must be <x>,<y>,<z>")

	// ErrTooFewPoints is returned when fewer than two points are given.
	ErrTooFewPoints = errors.New("day08: need at least two points")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("day08: invalid option supplied")
)

// Option configures the circuit computation via functional arguments.
type Option func(*circuitOptions)

// circuitOptions holds the tunables; invalid options are recorded internally
// and surfaced when the computation runs.
type circuitOptions struct {
	pairLimit int
	err       error
}

// defaultOptions returns the baseline configuration.
func defaultOptions() circuitOptions {
	return circuitOptions{pairLimit: DefaultPairLimit}
}

// WithPairLimit bounds how many closest pairs part 1 processes.
//
//	n > 0: keep the n closest pairs
//	n <= 0: invalid option → ErrOptionViolation
func WithPairLimit(n int) Option {
	return func(o *circuitOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: PairLimit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.pairLimit = n
	}
}
