package midiseq

import (
	"bytes"
	"testing"

	"gitlab.com/gomidi/midi/v2"

	"github.com/james-see/tonality/pkg/theory"
)

func TestSequence(t *testing.T) {
	pitches := []theory.Pitch{theory.MiddleC, theory.E4, theory.G4}

	msgs, err := Sequence(pitches, Options{})
	if err != nil {
		t.Fatalf("Sequence unexpected error: %v", err)
	}
	if len(msgs) != 6 {
		t.Fatalf("got %d messages, want 6", len(msgs))
	}

	want := []midi.Message{
		midi.NoteOn(0, 60, DefaultVelocity),
		midi.NoteOff(0, 60),
		midi.NoteOn(0, 64, DefaultVelocity),
		midi.NoteOff(0, 64),
		midi.NoteOn(0, 67, DefaultVelocity),
		midi.NoteOff(0, 67),
	}
	for i := range want {
		if !bytes.Equal(msgs[i], want[i]) {
			t.Errorf("message %d = % X, want % X", i, []byte(msgs[i]), []byte(want[i]))
		}
	}
}

func TestStack(t *testing.T) {
	pitches := []theory.Pitch{theory.MiddleC, theory.E4, theory.G4}

	msgs, err := Stack(pitches, Options{Channel: 2, Velocity: 64})
	if err != nil {
		t.Fatalf("Stack unexpected error: %v", err)
	}

	want := []midi.Message{
		midi.NoteOn(2, 60, 64),
		midi.NoteOn(2, 64, 64),
		midi.NoteOn(2, 67, 64),
		midi.NoteOff(2, 60),
		midi.NoteOff(2, 64),
		midi.NoteOff(2, 67),
	}
	if len(msgs) != len(want) {
		t.Fatalf("got %d messages, want %d", len(msgs), len(want))
	}
	for i := range want {
		if !bytes.Equal(msgs[i], want[i]) {
			t.Errorf("message %d = % X, want % X", i, []byte(msgs[i]), []byte(want[i]))
		}
	}
}

func TestOptionsValidation(t *testing.T) {
	pitches := []theory.Pitch{theory.MiddleC}

	if _, err := Sequence(pitches, Options{Channel: 16}); err == nil {
		t.Error("channel 16 should be rejected")
	}
	if _, err := Stack(pitches, Options{Velocity: 128}); err == nil {
		t.Error("velocity 128 should be rejected")
	}
}

func TestSequenceEmpty(t *testing.T) {
	msgs, err := Sequence(nil, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("got %d messages for no pitches", len(msgs))
	}
}
