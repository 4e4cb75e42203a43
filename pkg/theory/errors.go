package theory

import "errors"

// Sentinel errors for the two ways a value can fall outside the supported
// domain. Wrap with fmt.Errorf("...: %w", ...) to add context; callers test
// with errors.Is.
var (
	// ErrOutOfRange means a semitone count, octave index, or transposition
	// result falls outside the supported MIDI note space.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidPitchClass means a pitch class integer is outside [0,11].
	ErrInvalidPitchClass = errors.New("invalid pitch class")
)
