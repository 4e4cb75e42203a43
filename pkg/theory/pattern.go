package theory

// Pattern is an ordered list of root-relative interval offsets defining a
// scale or chord shape. The first element of a from-root pattern is the
// unison. Applying a pattern never mutates it; the same pattern and root
// always produce the same output sequence.
type Pattern []Interval

// NewPattern builds a pattern from raw semitone offsets.
func NewPattern(offsets ...int) Pattern {
	p := make(Pattern, len(offsets))
	for i, n := range offsets {
		p[i] = Interval(n)
	}
	return p
}

// Intervals returns a copy of the pattern's intervals.
func (p Pattern) Intervals() []Interval {
	out := make([]Interval, len(p))
	copy(out, p)
	return out
}

// Pitches applies the pattern to a root, producing one pitch per element in
// pattern order. Propagates ErrOutOfRange from the first failing
// transposition without producing a partial sequence.
func (p Pattern) Pitches(root Pitch) ([]Pitch, error) {
	return root.Apply(p)
}

// DirectionalPattern pairs two independent patterns under one entity for
// scales whose ascending and descending forms differ (melodic minor). The
// two patterns need not share length or intervals; nothing beyond catalog
// authorship relates them.
type DirectionalPattern struct {
	ascending  Pattern
	descending Pattern
}

// NewDirectionalPattern builds a directional pattern from its two forms.
func NewDirectionalPattern(ascending, descending Pattern) DirectionalPattern {
	return DirectionalPattern{ascending: ascending, descending: descending}
}

// Ascending returns the ascending form.
func (d DirectionalPattern) Ascending() Pattern {
	return d.ascending
}

// Descending returns the descending form.
func (d DirectionalPattern) Descending() Pattern {
	return d.descending
}

// AscendingPitches applies the ascending form to a root.
func (d DirectionalPattern) AscendingPitches(root Pitch) ([]Pitch, error) {
	return d.ascending.Pitches(root)
}

// DescendingPitches applies the descending form to a root. The result is in
// pattern order (offsets ascending from the root), not reversed playing
// order.
func (d DirectionalPattern) DescendingPitches(root Pitch) ([]Pitch, error) {
	return d.descending.Pitches(root)
}
