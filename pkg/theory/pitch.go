// Package theory provides immutable music-theory value types over 12-tone
// equal temperament: pitches, intervals, octaves, and interval patterns.
//
// Pitches use MIDI note numbering: 0 is C-1, 60 is middle C (C4), 127 is G9.
// Every operation is a pure function; transposition and pattern application
// return new values and report out-of-domain input as errors rather than
// clamping.
package theory

import (
	"fmt"
)

// SemitonesPerOctave is the number of pitch classes in an octave.
const SemitonesPerOctave = 12

// Supported semitone range, matching the 7-bit MIDI note-number space.
const (
	MinSemitone = 0
	MaxSemitone = 127
)

// Pitch is an absolute note, stored as its MIDI note number.
// Pitches compare and order by semitone value.
type Pitch uint8

// Pitch class constants (semitone offsets within an octave). Sharp and flat
// names for the same semitone are enharmonic aliases of one value.
const (
	C      Pitch = 0
	CSharp Pitch = 1
	DFlat  Pitch = CSharp
	D      Pitch = 2
	DSharp Pitch = 3
	EFlat  Pitch = DSharp
	E      Pitch = 4
	F      Pitch = 5
	FSharp Pitch = 6
	GFlat  Pitch = FSharp
	G      Pitch = 7
	GSharp Pitch = 8
	AFlat  Pitch = GSharp
	A      Pitch = 9
	ASharp Pitch = 10
	BFlat  Pitch = ASharp
	B      Pitch = 11
)

// Well-known reference pitches.
const (
	MiddleC  Pitch = 60 // C4
	ConcertA Pitch = 69 // A4, 440 Hz
)

// Octave 4 pitches, the octave around middle C.
const (
	C4      Pitch = 60
	CSharp4 Pitch = 61
	D4      Pitch = 62
	DSharp4 Pitch = 63
	E4      Pitch = 64
	F4      Pitch = 65
	FSharp4 Pitch = 66
	G4      Pitch = 67
	GSharp4 Pitch = 68
	A4      Pitch = 69
	ASharp4 Pitch = 70
	B4      Pitch = 71
)

// PitchClasses lists the twelve pitch classes in ascending order.
var PitchClasses = [SemitonesPerOctave]Pitch{
	C, CSharp, D, DSharp, E, F, FSharp, G, GSharp, A, ASharp, B,
}

var classNames = [SemitonesPerOctave]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// NewPitch creates a pitch from a semitone count.
// Returns ErrOutOfRange when n is outside [MinSemitone, MaxSemitone].
func NewPitch(n int) (Pitch, error) {
	if n < MinSemitone || n > MaxSemitone {
		return 0, fmt.Errorf("%w: semitone %d not in [%d,%d]", ErrOutOfRange, n, MinSemitone, MaxSemitone)
	}
	return Pitch(n), nil
}

// PitchOf creates a pitch from a pitch class and an octave.
// Returns ErrInvalidPitchClass when class is outside [0,11] and
// ErrOutOfRange when the combination exceeds the note-number space
// (octave 9 only reaches G9).
func PitchOf(class int, octave Octave) (Pitch, error) {
	if class < 0 || class >= SemitonesPerOctave {
		return 0, fmt.Errorf("%w: %d not in [0,11]", ErrInvalidPitchClass, class)
	}
	if err := octave.Validate(); err != nil {
		return 0, err
	}
	return NewPitch(octave.LowestSemitone() + class)
}

// Semitones returns the MIDI note number of the pitch.
func (p Pitch) Semitones() int {
	return int(p)
}

// Class returns the pitch class (0-11), the semitone value modulo 12.
func (p Pitch) Class() int {
	return int(p) % SemitonesPerOctave
}

// Octave returns the octave containing the pitch. C4 and B4 share octave 4.
func (p Pitch) Octave() Octave {
	return Octave(int(p)/SemitonesPerOctave - 1)
}

// Transpose returns the pitch shifted by the interval.
// Returns ErrOutOfRange when the result leaves the note-number space;
// transposing by the zero interval is the identity.
func (p Pitch) Transpose(i Interval) (Pitch, error) {
	n := p.Semitones() + i.Semitones()
	if n < MinSemitone || n > MaxSemitone {
		return 0, fmt.Errorf("%w: %s %+d semitones", ErrOutOfRange, p, i.Semitones())
	}
	return Pitch(n), nil
}

// Apply transposes the pitch by each interval in order and returns the
// resulting pitches. The first invalid transposition aborts the whole
// application: the error is returned and no partial sequence is produced.
func (p Pitch) Apply(intervals []Interval) ([]Pitch, error) {
	pitches := make([]Pitch, 0, len(intervals))
	for _, iv := range intervals {
		next, err := p.Transpose(iv)
		if err != nil {
			return nil, err
		}
		pitches = append(pitches, next)
	}
	return pitches, nil
}

// String spells the pitch sharp-preferred with its octave, e.g. "C#4".
// The lowest octave renders as "-1" ("C-1" is note number 0).
func (p Pitch) String() string {
	return fmt.Sprintf("%s%d", classNames[p.Class()], p.Octave())
}

// ClassName returns the sharp-preferred spelling of the pitch class alone,
// e.g. "C#" for both CSharp and DFlat.
func (p Pitch) ClassName() string {
	return classNames[p.Class()]
}
