package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/quartal/model"
	"github.com/jsphweid/quartal/pitch"
	"github.com/jsphweid/quartal/util"
)

// Key names a voicing in voice order, e.g. "F4-Bb4-Eb5-C6".
func Key(voices []model.Pitch) string {
	return pitch.WriteAll(voices)
}

// MidiKeys returns the MIDI key of every voice in voice order.
func MidiKeys(voices []model.Pitch) ([]uint8, error) {
	res := make([]uint8, 0, len(voices))
	for _, v := range voices {
		k, err := pitch.Key(v)
		if err != nil {
			return nil, err
		}
		res = append(res, uint8(k))
	}
	return res, nil
}

// SortedKeys returns the MIDI keys of the voicing from lowest to highest.
func SortedKeys(voices []model.Pitch) ([]uint8, error) {
	keys, err := MidiKeys(voices)
	if err != nil {
		return nil, err
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys, nil
}

// CreateChordKey joins sorted MIDI keys with dashes ("48-53-58-63"), so
// voicings that sound the same share a key regardless of spelling or order.
func CreateChordKey(voices []model.Pitch) (string, error) {
	keys, err := SortedKeys(voices)
	if err != nil {
		return "", err
	}
	var res string
	for i, k := range keys {
		res += fmt.Sprintf("%v", k)
		if i < len(keys)-1 {
			res += "-"
		}
	}
	return res, nil
}

// Span is the distance in semitones from the lowest to the highest sounding
// voice. Rests are skipped.
func Span(voices []model.Pitch) int {
	var semis []int
	for _, v := range voices {
		if v.IsRest() {
			continue
		}
		semis = append(semis, pitch.Semitone(v))
	}
	if len(semis) == 0 {
		return 0
	}
	ident := func(s int) int { return s }
	return util.MaxBy(semis, ident) - util.MinBy(semis, ident)
}
