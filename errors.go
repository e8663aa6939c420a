package cube

import "errors"

// Sentinel errors for the cube package.
var (
	// ErrInvalidNotation is returned by ParseMove when a token is not a
	// recognized face-turn.
	ErrInvalidNotation = errors.New("cube: invalid move notation")

	// ErrUnsolvable is returned by callers (not this package) to report a
	// facelet configuration that fails IsSolvable; solver.Solve itself
	// returns this same sentinel rather than an empty move slice, so a
	// caller can distinguish "already solved" (nil, nil) from "cannot be
	// solved" (nil, ErrUnsolvable).
	ErrUnsolvable = errors.New("cube: state is not solvable")
)
