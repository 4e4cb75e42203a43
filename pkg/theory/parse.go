package theory

import (
	"fmt"
	"strconv"
	"strings"
)

var classOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// ParsePitch parses a note name of the form <letter><accidental?><octave>,
// e.g. "C4", "F#3", "Bb2", "A-1". Letters are case-insensitive; '#' raises
// and 'b' lowers by a semitone. Inverse of Pitch.String for sharp
// spellings. Out-of-range results are errors, never clamped.
func ParsePitch(s string) (Pitch, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("note name too short: %q", s)
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	offset, ok := classOffsets[letter]
	if !ok {
		return 0, fmt.Errorf("invalid note letter %q in %q", string(s[0]), s)
	}

	idx := 1
	switch s[idx] {
	case '#':
		offset++
		idx++
	case 'b':
		offset--
		idx++
	}

	if idx >= len(s) {
		return 0, fmt.Errorf("missing octave in note name %q", s)
	}
	oct, err := strconv.Atoi(s[idx:])
	if err != nil {
		return 0, fmt.Errorf("invalid octave in note name %q: %w", s, err)
	}
	if o := Octave(oct); o.Validate() != nil {
		return 0, fmt.Errorf("%w: octave %d in note name %q", ErrOutOfRange, oct, s)
	}

	// Cb and B# cross octave boundaries; go through the raw note number so
	// they land on the neighbouring octave instead of failing class checks.
	return NewPitch((oct+1)*SemitonesPerOctave + offset)
}

var intervalNames = map[string]Interval{
	"P1": PerfectUnison,
	"m2": MinorSecond,
	"M2": MajorSecond,
	"m3": MinorThird,
	"M3": MajorThird,
	"P4": PerfectFourth,
	"d5": DiminishedFifth,
	"P5": PerfectFifth,
	"m6": MinorSixth,
	"M6": MajorSixth,
	"m7": MinorSeventh,
	"M7": MajorSeventh,
	"P8": PerfectOctave,
}

// ParseInterval parses either a signed semitone count ("7", "-3") or a
// short interval name ("P5", "m3"). Short names are case-sensitive except
// for the perfect/diminished prefixes, which accept lowercase.
func ParseInterval(s string) (Interval, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return NewInterval(n), nil
	}
	if iv, ok := intervalNames[s]; ok {
		return iv, nil
	}
	// Accept "p5" / "D5" style variants on the unambiguous prefixes.
	if len(s) == 2 {
		norm := strings.ToUpper(s[:1]) + s[1:]
		if norm[0] == 'P' || norm[0] == 'D' {
			if norm[0] == 'D' {
				norm = "d" + norm[1:]
			}
			if iv, ok := intervalNames[norm]; ok {
				return iv, nil
			}
		}
	}
	return 0, fmt.Errorf("unrecognized interval %q", s)
}
