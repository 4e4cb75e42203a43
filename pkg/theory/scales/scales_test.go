package scales

import (
	"errors"
	"testing"

	"github.com/james-see/tonality/pkg/theory"
)

func semitones(pitches []theory.Pitch) []int {
	out := make([]int, len(pitches))
	for i, p := range pitches {
		out[i] = p.Semitones()
	}
	return out
}

func assertSemitones(t *testing.T, got []theory.Pitch, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d pitches %v, want %d", len(got), semitones(got), len(want))
	}
	for i := range want {
		if got[i].Semitones() != want[i] {
			t.Errorf("pitch %d = %d (%v), want %d", i, got[i].Semitones(), got[i], want[i])
		}
	}
}

func TestScalePitches(t *testing.T) {
	tests := []struct {
		name  string
		scale Scale
		root  theory.Pitch
		want  []int
	}{
		{"C major", Major, theory.MiddleC, []int{60, 62, 64, 65, 67, 69, 71}},
		{"A natural minor", NaturalMinor, theory.ConcertA, []int{69, 71, 72, 74, 76, 77, 79}},
		{"A harmonic minor", HarmonicMinor, theory.ConcertA, []int{69, 71, 72, 74, 76, 77, 80}},
		{"C harmonic major", HarmonicMajor, theory.MiddleC, []int{60, 62, 64, 65, 67, 68, 71}},
		{"D dorian", Dorian, theory.D4, []int{62, 64, 65, 67, 69, 71, 72}},
		{"E phrygian", Phrygian, theory.E4, []int{64, 65, 67, 69, 71, 72, 74}},
		{"F lydian", Lydian, theory.F4, []int{65, 67, 69, 71, 72, 74, 76}},
		{"G mixolydian", Mixolydian, theory.G4, []int{67, 69, 71, 72, 74, 76, 77}},
		{"B locrian", Locrian, theory.B4, []int{71, 72, 74, 76, 77, 79, 81}},
		{"C major pentatonic", MajorPentatonic, theory.MiddleC, []int{60, 62, 64, 67, 69}},
		{"A minor pentatonic", MinorPentatonic, theory.ConcertA, []int{69, 72, 74, 76, 79}},
		{"A blues", Blues, theory.ConcertA, []int{69, 72, 74, 75, 76, 79}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.scale.Pitches(tt.root)
			if err != nil {
				t.Fatalf("Pitches unexpected error: %v", err)
			}
			assertSemitones(t, got, tt.want)
		})
	}
}

func TestModesMatchTheirParentScales(t *testing.T) {
	if got, want := Ionian.Pattern(), Major.Pattern(); len(got) != len(want) {
		t.Fatal("ionian and major patterns differ in length")
	} else {
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("ionian[%d] = %v, major[%d] = %v", i, got[i], i, want[i])
			}
		}
	}
	for i, iv := range Aeolian.Pattern() {
		if NaturalMinor.Pattern()[i] != iv {
			t.Errorf("aeolian[%d] = %v differs from natural minor", i, iv)
		}
	}
}

func TestMelodicMinorDirections(t *testing.T) {
	asc, err := MelodicMinor.AscendingPitches(theory.ConcertA)
	if err != nil {
		t.Fatalf("AscendingPitches unexpected error: %v", err)
	}
	assertSemitones(t, asc, []int{69, 71, 72, 74, 76, 78, 80})

	desc, err := MelodicMinor.DescendingPitches(theory.ConcertA)
	if err != nil {
		t.Fatalf("DescendingPitches unexpected error: %v", err)
	}
	assertSemitones(t, desc, []int{69, 71, 72, 74, 76, 77, 79})
}

func TestScalePropagatesOutOfRange(t *testing.T) {
	high, err := theory.NewPitch(125)
	if err != nil {
		t.Fatalf("NewPitch unexpected error: %v", err)
	}
	got, err := Major.Pitches(high)
	if !errors.Is(err, theory.ErrOutOfRange) {
		t.Fatalf("error = %v, want ErrOutOfRange", err)
	}
	if got != nil {
		t.Errorf("got partial scale %v, want nil", got)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		if name == MelodicMinor.Name() {
			if _, ok := DirectionalByName(name); !ok {
				t.Errorf("DirectionalByName(%q) not found", name)
			}
			continue
		}
		s, ok := ByName(name)
		if !ok {
			t.Errorf("ByName(%q) not found", name)
			continue
		}
		if s.Name() != name {
			t.Errorf("ByName(%q).Name() = %q", name, s.Name())
		}
	}

	if _, ok := ByName("chromatic"); ok {
		t.Error("ByName should not find unknown scales")
	}
	if _, ok := DirectionalByName("major"); ok {
		t.Error("DirectionalByName should not find simple scales")
	}
}

func TestEveryPatternStartsOnTheRoot(t *testing.T) {
	for _, name := range Names() {
		if s, ok := ByName(name); ok {
			if s.Pattern()[0] != theory.PerfectUnison {
				t.Errorf("scale %q does not start at the unison", name)
			}
		}
	}
	if MelodicMinor.Pattern().Ascending()[0] != theory.PerfectUnison {
		t.Error("melodic minor ascending does not start at the unison")
	}
	if MelodicMinor.Pattern().Descending()[0] != theory.PerfectUnison {
		t.Error("melodic minor descending does not start at the unison")
	}
}
