package chords

import (
	"errors"
	"fmt"
	"strings"

	"github.com/james-see/tonality/pkg/theory"
)

// ErrUnknownSymbol reports a chord symbol that does not parse.
var ErrUnknownSymbol = errors.New("unknown chord symbol")

// Symbol is a parsed chord symbol: a root pitch class, a catalog chord, and
// an optional slash bass class.
type Symbol struct {
	root  int
	chord Chord
	bass  int // pitch class of the slash bass, -1 when absent
}

// Root returns the root pitch class, 0 through 11.
func (s Symbol) Root() int {
	return s.root
}

// Chord returns the catalog chord the symbol names.
func (s Symbol) Chord() Chord {
	return s.chord
}

// Bass returns the slash bass pitch class and whether one was written.
func (s Symbol) Bass() (int, bool) {
	if s.bass < 0 {
		return 0, false
	}
	return s.bass, true
}

var classBySymbolLetter = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// parseClass consumes a root or bass note name ("C", "F#", "Bb") and returns
// its pitch class along with the unconsumed remainder.
func parseClass(s string) (int, string, error) {
	if s == "" {
		return 0, "", fmt.Errorf("%w: empty note name", ErrUnknownSymbol)
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	class, ok := classBySymbolLetter[letter]
	if !ok {
		return 0, "", fmt.Errorf("%w: bad note letter %q", ErrUnknownSymbol, s[0])
	}
	rest := s[1:]
	if rest != "" {
		switch rest[0] {
		case '#':
			class = (class + 1) % theory.SemitonesPerOctave
			rest = rest[1:]
		case 'b':
			class = (class + theory.SemitonesPerOctave - 1) % theory.SemitonesPerOctave
			rest = rest[1:]
		}
	}
	return class, rest, nil
}

// ParseSymbol parses a chord symbol such as "C", "Em", "Am7", "Cmaj7",
// "F#dim", or "Em/G". The part after a slash names the bass note.
func ParseSymbol(symbol string) (Symbol, error) {
	body := symbol
	bass := -1
	if i := strings.IndexByte(symbol, '/'); i >= 0 {
		body = symbol[:i]
		class, rest, err := parseClass(symbol[i+1:])
		if err != nil {
			return Symbol{}, err
		}
		if rest != "" {
			return Symbol{}, fmt.Errorf("%w: trailing %q after bass in %q", ErrUnknownSymbol, rest, symbol)
		}
		bass = class
	}

	root, suffix, err := parseClass(body)
	if err != nil {
		return Symbol{}, err
	}
	for _, c := range catalog {
		if strings.EqualFold(suffix, c.suffix) {
			return Symbol{root: root, chord: c, bass: bass}, nil
		}
	}
	return Symbol{}, fmt.Errorf("%w: quality %q in %q", ErrUnknownSymbol, suffix, symbol)
}

// Voicing realizes the symbol with its root in the given octave. A slash
// bass is placed in the first octave below the root. Out-of-range notes are
// an error, never dropped.
func (s Symbol) Voicing(octave theory.Octave) ([]theory.Pitch, error) {
	root, err := theory.PitchOf(s.root, octave)
	if err != nil {
		return nil, err
	}
	pitches, err := s.chord.Pitches(root)
	if err != nil {
		return nil, err
	}
	if s.bass < 0 {
		return pitches, nil
	}
	drop := (root.Class() - s.bass + theory.SemitonesPerOctave) % theory.SemitonesPerOctave
	if drop == 0 {
		drop = theory.SemitonesPerOctave
	}
	bass, err := theory.NewPitch(root.Semitones() - drop)
	if err != nil {
		return nil, err
	}
	return append([]theory.Pitch{bass}, pitches...), nil
}
