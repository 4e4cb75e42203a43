package theory

import (
	"fmt"
)

// Interval is a signed distance in semitones between two pitches.
// Construction is total over the integer domain; the range only narrows
// when an interval is consumed by Pitch.Transpose.
type Interval int

// Simple intervals at their standard 12-TET semitone values.
const (
	PerfectUnison   Interval = 0
	MinorSecond     Interval = 1
	MajorSecond     Interval = 2
	MinorThird      Interval = 3
	MajorThird      Interval = 4
	PerfectFourth   Interval = 5
	DiminishedFifth Interval = 6
	PerfectFifth    Interval = 7
	MinorSixth      Interval = 8
	MajorSixth      Interval = 9
	MinorSeventh    Interval = 10
	MajorSeventh    Interval = 11
	PerfectOctave   Interval = 12
)

// Compound intervals used by extended chords.
const (
	MinorNinth      Interval = 13
	MajorNinth      Interval = 14
	PerfectEleventh Interval = 17
	MajorThirteenth Interval = 21
)

// NewInterval creates an interval from a signed semitone count. Total.
func NewInterval(n int) Interval {
	return Interval(n)
}

// Semitones returns the signed semitone distance.
func (i Interval) Semitones() int {
	return int(i)
}

// Inverse returns the interval with negated direction.
// i.Inverse().Inverse() == i for all intervals.
func (i Interval) Inverse() Interval {
	return -i
}

// Add composes two intervals. Addition is associative and commutative with
// PerfectUnison as identity.
func (i Interval) Add(other Interval) Interval {
	return i + other
}

// Quality classifies an interval's character. The set is closed: these five
// cover every spellable interval in 12-TET.
type Quality int

const (
	Diminished Quality = iota
	Minor
	Major
	Perfect
	Augmented
)

var qualityNames = [...]string{"diminished", "minor", "major", "perfect", "augmented"}

func (q Quality) String() string {
	if q < Diminished || q > Augmented {
		return "unknown"
	}
	return qualityNames[q]
}

// Size is the diatonic size of an interval, unison through octave.
type Size int

const (
	Unison Size = iota + 1
	Second
	Third
	Fourth
	Fifth
	Sixth
	Seventh
	Octave8
)

var sizeNames = [...]string{"unison", "second", "third", "fourth", "fifth", "sixth", "seventh", "octave"}

func (s Size) String() string {
	if s < Unison || s > Octave8 {
		return "unknown"
	}
	return sizeNames[s-1]
}

// perfectClass reports whether a size takes perfect rather than major/minor
// qualities.
func (s Size) perfectClass() bool {
	switch s {
	case Unison, Fourth, Fifth, Octave8:
		return true
	}
	return false
}

// reference semitone counts for the major or perfect form of each size
var sizeSemitones = [...]int{0, 2, 4, 5, 7, 9, 11, 12}

// NamedInterval builds the interval for a quality and size. The mapping is
// deterministic and defined for every musically valid combination; pairs
// that cannot be spelled (a minor fifth, a perfect third) return
// ErrOutOfRange.
func NamedInterval(q Quality, s Size) (Interval, error) {
	if s < Unison || s > Octave8 {
		return 0, fmt.Errorf("%w: interval size %d", ErrOutOfRange, s)
	}
	base := sizeSemitones[s-1]
	if s.perfectClass() {
		switch q {
		case Diminished:
			return Interval(base - 1), nil
		case Perfect:
			return Interval(base), nil
		case Augmented:
			return Interval(base + 1), nil
		}
		return 0, fmt.Errorf("%w: %s %s", ErrOutOfRange, q, s)
	}
	switch q {
	case Diminished:
		return Interval(base - 2), nil
	case Minor:
		return Interval(base - 1), nil
	case Major:
		return Interval(base), nil
	case Augmented:
		return Interval(base + 1), nil
	}
	return 0, fmt.Errorf("%w: %s %s", ErrOutOfRange, q, s)
}

// preferred spellings for simple intervals, 0-12 semitones. The reverse of
// NamedInterval is partial (enharmonic names collide), so a fixed choice is
// made here: 6 semitones spells as a diminished fifth.
var preferredSpelling = [13]struct {
	q Quality
	s Size
}{
	{Perfect, Unison},
	{Minor, Second},
	{Major, Second},
	{Minor, Third},
	{Major, Third},
	{Perfect, Fourth},
	{Diminished, Fifth},
	{Perfect, Fifth},
	{Minor, Sixth},
	{Major, Sixth},
	{Minor, Seventh},
	{Major, Seventh},
	{Perfect, Octave8},
}

// Name returns the preferred quality/size spelling of the interval.
// Defined only for ascending simple intervals (0-12 semitones); ok is false
// for anything wider or descending.
func (i Interval) Name() (Quality, Size, bool) {
	if i < 0 || int(i) >= len(preferredSpelling) {
		return 0, 0, false
	}
	sp := preferredSpelling[i]
	return sp.q, sp.s, true
}

// String renders the preferred spelling ("perfect fifth") when one exists,
// otherwise the raw signed semitone count.
func (i Interval) String() string {
	if q, s, ok := i.Name(); ok {
		return fmt.Sprintf("%s %s", q, s)
	}
	return fmt.Sprintf("%+d semitones", int(i))
}
