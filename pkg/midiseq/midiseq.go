// Package midiseq renders pitch sequences as live MIDI channel messages.
// It produces NoteOn/NoteOff pairs for consumers that drive a MIDI output;
// it does not read or write MIDI files.
package midiseq

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"

	"github.com/james-see/tonality/pkg/theory"
)

// DefaultVelocity is used when Options.Velocity is zero.
const DefaultVelocity = 100

// Options controls how pitches become channel messages.
type Options struct {
	Channel  uint8 // 0-15
	Velocity uint8 // 1-127, DefaultVelocity when zero
}

func (o Options) normalize() (Options, error) {
	if o.Channel > 15 {
		return o, fmt.Errorf("midi channel %d out of range 0-15", o.Channel)
	}
	if o.Velocity == 0 {
		o.Velocity = DefaultVelocity
	}
	if o.Velocity > 127 {
		return o, fmt.Errorf("midi velocity %d out of range 1-127", o.Velocity)
	}
	return o, nil
}

// Sequence renders the pitches one after another: NoteOn then NoteOff for
// each pitch in order. This is the shape a scale or arpeggio plays in.
func Sequence(pitches []theory.Pitch, opts Options) ([]midi.Message, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	msgs := make([]midi.Message, 0, 2*len(pitches))
	for _, p := range pitches {
		key := uint8(p.Semitones())
		msgs = append(msgs, midi.NoteOn(opts.Channel, key, opts.Velocity))
		msgs = append(msgs, midi.NoteOff(opts.Channel, key))
	}
	return msgs, nil
}

// Stack renders the pitches sounding together: every NoteOn first, then
// every NoteOff. This is the shape a chord voicing plays in.
func Stack(pitches []theory.Pitch, opts Options) ([]midi.Message, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	msgs := make([]midi.Message, 0, 2*len(pitches))
	for _, p := range pitches {
		msgs = append(msgs, midi.NoteOn(opts.Channel, uint8(p.Semitones()), opts.Velocity))
	}
	for _, p := range pitches {
		msgs = append(msgs, midi.NoteOff(opts.Channel, uint8(p.Semitones())))
	}
	return msgs, nil
}
