package chords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/james-see/tonality/pkg/theory"
)

func semitones(pitches []theory.Pitch) []int {
	out := make([]int, len(pitches))
	for i, p := range pitches {
		out[i] = p.Semitones()
	}
	return out
}

func TestChordPitches(t *testing.T) {
	tests := []struct {
		name  string
		chord Chord
		root  theory.Pitch
		want  []int
	}{
		{"C major", Major, theory.MiddleC, []int{60, 64, 67}},
		{"A minor", Minor, theory.ConcertA, []int{69, 72, 76}},
		{"B diminished", Diminished, theory.B4, []int{71, 74, 77}},
		{"C augmented", Augmented, theory.MiddleC, []int{60, 64, 68}},
		{"D sus2", Sus2, theory.D4, []int{62, 64, 69}},
		{"D sus4", Sus4, theory.D4, []int{62, 67, 69}},
		{"C major sixth", Major6, theory.MiddleC, []int{60, 64, 67, 69}},
		{"A minor sixth", Minor6, theory.ConcertA, []int{69, 72, 76, 78}},
		{"C major seventh", Major7, theory.MiddleC, []int{60, 64, 67, 71}},
		{"A minor seventh", Minor7, theory.ConcertA, []int{69, 72, 76, 79}},
		{"G dominant seventh", Dominant7, theory.G4, []int{67, 71, 74, 77}},
		{"B diminished seventh", Diminished7, theory.B4, []int{71, 74, 77, 80}},
		{"B half-diminished seventh", HalfDim7, theory.B4, []int{71, 74, 77, 81}},
		{"A minor-major seventh", MinorMajor7, theory.ConcertA, []int{69, 72, 76, 80}},
		{"G dominant ninth", Dominant9, theory.G4, []int{67, 71, 74, 77, 81}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.chord.Pitches(tt.root)
			require.NoError(t, err)
			assert.Equal(t, tt.want, semitones(got))
		})
	}
}

func TestChordPropagatesOutOfRange(t *testing.T) {
	high, err := theory.NewPitch(125)
	require.NoError(t, err)

	got, err := Major.Pitches(high)
	assert.ErrorIs(t, err, theory.ErrOutOfRange)
	assert.Nil(t, got)
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, "ByName(%q)", name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("power chord")
	assert.False(t, ok)
}

func TestEveryChordStartsOnTheRoot(t *testing.T) {
	for _, name := range Names() {
		c, _ := ByName(name)
		require.NotEmpty(t, c.Pattern(), name)
		assert.Equal(t, theory.PerfectUnison, c.Pattern()[0], name)
	}
}
