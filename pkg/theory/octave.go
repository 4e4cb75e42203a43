package theory

import "fmt"

// Octave is an octave index in scientific pitch notation aligned with MIDI
// note numbering: octave -1 covers note numbers 0-11, octave 4 contains
// middle C, octave 9 is the top (partial) octave ending at G9.
type Octave int

// Valid octave indices for the 0-127 note space.
const (
	MinOctave Octave = -1
	MaxOctave Octave = 9
)

// NewOctave creates an octave index, returning ErrOutOfRange outside
// [MinOctave, MaxOctave].
func NewOctave(n int) (Octave, error) {
	o := Octave(n)
	if err := o.Validate(); err != nil {
		return 0, err
	}
	return o, nil
}

// Validate returns ErrOutOfRange when the index is outside the supported
// range.
func (o Octave) Validate() error {
	if o < MinOctave || o > MaxOctave {
		return fmt.Errorf("%w: octave %d not in [%d,%d]", ErrOutOfRange, int(o), MinOctave, MaxOctave)
	}
	return nil
}

// LowestSemitone returns the note number of the C starting the octave.
func (o Octave) LowestSemitone() int {
	return (int(o) + 1) * SemitonesPerOctave
}

// HighestSemitone returns the note number of the B ending the octave.
// Octave 9's mathematical top (B9, 131) lies above MaxSemitone; the octave
// bands stay contiguous and the pitch constructors enforce the 0-127 cap.
func (o Octave) HighestSemitone() int {
	return o.LowestSemitone() + SemitonesPerOctave - 1
}

// OctaveOf returns the octave containing a note number, inverting
// LowestSemitone/HighestSemitone exactly. Returns ErrOutOfRange for note
// numbers outside the supported space.
func OctaveOf(semitones int) (Octave, error) {
	if semitones < MinSemitone || semitones > MaxSemitone {
		return 0, fmt.Errorf("%w: semitone %d not in [%d,%d]", ErrOutOfRange, semitones, MinSemitone, MaxSemitone)
	}
	return Octave(semitones/SemitonesPerOctave - 1), nil
}
