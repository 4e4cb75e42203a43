// Package scales provides the named scale catalog: interval patterns for
// the common heptatonic scales, the diatonic modes, pentatonics, and blues,
// applied to a root pitch through the pattern engine in pkg/theory.
package scales

import (
	"sort"

	"github.com/james-see/tonality/pkg/theory"
)

// Scale is a named interval pattern. Scales own no behavior beyond handing
// their pattern to a root pitch.
type Scale struct {
	name    string
	pattern theory.Pattern
}

// Name returns the catalog name of the scale.
func (s Scale) Name() string {
	return s.name
}

// Pattern returns the scale's interval pattern.
func (s Scale) Pattern() theory.Pattern {
	return s.pattern
}

// Pitches applies the scale to a root.
func (s Scale) Pitches(root theory.Pitch) ([]theory.Pitch, error) {
	return s.pattern.Pitches(root)
}

// DirectionalScale is a named pair of independent ascending and descending
// patterns. Only the melodic minor needs this shape.
type DirectionalScale struct {
	name    string
	pattern theory.DirectionalPattern
}

// Name returns the catalog name of the scale.
func (s DirectionalScale) Name() string {
	return s.name
}

// Pattern returns the underlying directional pattern.
func (s DirectionalScale) Pattern() theory.DirectionalPattern {
	return s.pattern
}

// AscendingPitches applies the ascending form to a root.
func (s DirectionalScale) AscendingPitches(root theory.Pitch) ([]theory.Pitch, error) {
	return s.pattern.AscendingPitches(root)
}

// DescendingPitches applies the descending form to a root.
func (s DirectionalScale) DescendingPitches(root theory.Pitch) ([]theory.Pitch, error) {
	return s.pattern.DescendingPitches(root)
}

// Heptatonic scales.
var (
	Major         = Scale{"major", theory.NewPattern(0, 2, 4, 5, 7, 9, 11)}
	NaturalMinor  = Scale{"natural minor", theory.NewPattern(0, 2, 3, 5, 7, 8, 10)}
	HarmonicMinor = Scale{"harmonic minor", theory.NewPattern(0, 2, 3, 5, 7, 8, 11)}
	HarmonicMajor = Scale{"harmonic major", theory.NewPattern(0, 2, 4, 5, 7, 8, 11)}
)

// MelodicMinor ascends with raised sixth and seventh and descends as the
// natural minor. The two forms are independent patterns; nothing relates
// them beyond this catalog entry.
var MelodicMinor = DirectionalScale{
	name: "melodic minor",
	pattern: theory.NewDirectionalPattern(
		theory.NewPattern(0, 2, 3, 5, 7, 9, 11),
		theory.NewPattern(0, 2, 3, 5, 7, 8, 10),
	),
}

// Diatonic modes. Ionian and Aeolian duplicate the major and natural minor
// patterns under their modal names.
var (
	Ionian     = Scale{"ionian", theory.NewPattern(0, 2, 4, 5, 7, 9, 11)}
	Dorian     = Scale{"dorian", theory.NewPattern(0, 2, 3, 5, 7, 9, 10)}
	Phrygian   = Scale{"phrygian", theory.NewPattern(0, 1, 3, 5, 7, 8, 10)}
	Lydian     = Scale{"lydian", theory.NewPattern(0, 2, 4, 6, 7, 9, 11)}
	Mixolydian = Scale{"mixolydian", theory.NewPattern(0, 2, 4, 5, 7, 9, 10)}
	Aeolian    = Scale{"aeolian", theory.NewPattern(0, 2, 3, 5, 7, 8, 10)}
	Locrian    = Scale{"locrian", theory.NewPattern(0, 1, 3, 5, 6, 8, 10)}
)

// Pentatonic and hexatonic scales.
var (
	MajorPentatonic = Scale{"major pentatonic", theory.NewPattern(0, 2, 4, 7, 9)}
	MinorPentatonic = Scale{"minor pentatonic", theory.NewPattern(0, 3, 5, 7, 10)}
	Blues           = Scale{"blues", theory.NewPattern(0, 3, 5, 6, 7, 10)}
)

var catalog = map[string]Scale{
	Major.name:           Major,
	NaturalMinor.name:    NaturalMinor,
	HarmonicMinor.name:   HarmonicMinor,
	HarmonicMajor.name:   HarmonicMajor,
	Ionian.name:          Ionian,
	Dorian.name:          Dorian,
	Phrygian.name:        Phrygian,
	Lydian.name:          Lydian,
	Mixolydian.name:      Mixolydian,
	Aeolian.name:         Aeolian,
	Locrian.name:         Locrian,
	MajorPentatonic.name: MajorPentatonic,
	MinorPentatonic.name: MinorPentatonic,
	Blues.name:           Blues,
}

// ByName looks up a simple scale by its catalog name.
func ByName(name string) (Scale, bool) {
	s, ok := catalog[name]
	return s, ok
}

// DirectionalByName looks up a directional scale by name.
func DirectionalByName(name string) (DirectionalScale, bool) {
	if name == MelodicMinor.name {
		return MelodicMinor, true
	}
	return DirectionalScale{}, false
}

// Names returns every catalog name, simple and directional, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog)+1)
	for name := range catalog {
		names = append(names, name)
	}
	names = append(names, MelodicMinor.name)
	sort.Strings(names)
	return names
}
