// Package chords provides the named chord catalog and chord-symbol parsing.
// A chord is a named interval pattern; voicings come from applying the
// pattern to a root pitch via pkg/theory.
package chords

import (
	"sort"

	"github.com/james-see/tonality/pkg/theory"
)

// Chord is a named interval pattern plus its conventional symbol suffix
// ("m7" in "Am7").
type Chord struct {
	name    string
	suffix  string
	pattern theory.Pattern
}

// Name returns the catalog name of the chord.
func (c Chord) Name() string {
	return c.name
}

// Suffix returns the symbol suffix appended to a root name, empty for the
// major triad.
func (c Chord) Suffix() string {
	return c.suffix
}

// Pattern returns the chord's interval pattern.
func (c Chord) Pattern() theory.Pattern {
	return c.pattern
}

// Pitches applies the chord to a root.
func (c Chord) Pitches(root theory.Pitch) ([]theory.Pitch, error) {
	return c.pattern.Pitches(root)
}

// Triads and suspended chords.
var (
	Major      = Chord{"major", "", theory.NewPattern(0, 4, 7)}
	Minor      = Chord{"minor", "m", theory.NewPattern(0, 3, 7)}
	Diminished = Chord{"diminished", "dim", theory.NewPattern(0, 3, 6)}
	Augmented  = Chord{"augmented", "aug", theory.NewPattern(0, 4, 8)}
	Sus2       = Chord{"sus2", "sus2", theory.NewPattern(0, 2, 7)}
	Sus4       = Chord{"sus4", "sus4", theory.NewPattern(0, 5, 7)}
)

// Sixth and seventh chords.
var (
	Major6         = Chord{"major sixth", "6", theory.NewPattern(0, 4, 7, 9)}
	Minor6         = Chord{"minor sixth", "m6", theory.NewPattern(0, 3, 7, 9)}
	Major7         = Chord{"major seventh", "maj7", theory.NewPattern(0, 4, 7, 11)}
	Minor7         = Chord{"minor seventh", "m7", theory.NewPattern(0, 3, 7, 10)}
	Dominant7      = Chord{"dominant seventh", "7", theory.NewPattern(0, 4, 7, 10)}
	Diminished7    = Chord{"diminished seventh", "dim7", theory.NewPattern(0, 3, 6, 9)}
	HalfDim7       = Chord{"half-diminished seventh", "m7b5", theory.NewPattern(0, 3, 6, 10)}
	MinorMajor7    = Chord{"minor-major seventh", "mMaj7", theory.NewPattern(0, 3, 7, 11)}
	Dominant9      = Chord{"dominant ninth", "9", theory.NewPattern(0, 4, 7, 10, 14)}
)

var catalog = []Chord{
	Major, Minor, Diminished, Augmented, Sus2, Sus4,
	Major6, Minor6, Major7, Minor7, Dominant7, Diminished7,
	HalfDim7, MinorMajor7, Dominant9,
}

var byName = func() map[string]Chord {
	m := make(map[string]Chord, len(catalog))
	for _, c := range catalog {
		m[c.name] = c
	}
	return m
}()

// ByName looks up a chord by its catalog name.
func ByName(name string) (Chord, bool) {
	c, ok := byName[name]
	return c, ok
}

// Names returns every catalog name, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, c := range catalog {
		names = append(names, c.name)
	}
	sort.Strings(names)
	return names
}
