package pitch

import (
	"gitlab.com/gomidi/midi/v2"

	"github.com/jsphweid/quartal/model"
)

// MIDI numbers middle C (C4) as 60.
const midiOffset = semitonesPerOctave

const maxMidiKey = 127

// Key returns the MIDI key number that sounds p.
func Key(p model.Pitch) (midi.Note, error) {
	if err := Validate(p); err != nil {
		return 0, err
	}
	k := Semitone(p) + midiOffset
	if k < 0 || k > maxMidiKey {
		return 0, model.NewError(model.CodeInvalidPitch, "%s has no MIDI key", Write(p))
	}
	return midi.Note(k), nil
}
