// Package pitch implements diatonic interval arithmetic over model.Pitch,
// along with enharmonic respelling, note-name parsing and display, and
// MIDI key numbers.
package pitch

import (
	"github.com/jsphweid/quartal/model"
)

const semitonesPerOctave = 12

// semitones above C for each natural letter
var naturalSemitones = [model.NumTones]int{0, 2, 4, 5, 7, 9, 11}

// semitone width of major/perfect intervals, indexed by Number-1
var intervalSemitones = [8]int{0, 2, 4, 5, 7, 9, 11, 12}

// Arithmetic applies intervals with Apply. The zero value is ready to use.
type Arithmetic struct{}

func (Arithmetic) Apply(p model.Pitch, iv model.Interval) (model.Pitch, error) {
	return Apply(p, iv)
}

// Validate checks that p is a sounding pitch with a representable letter and
// accidental.
func Validate(p model.Pitch) error {
	if p.IsRest() {
		return model.NewError(model.CodeInvalidPitch, "rest has no pitch")
	}
	if !p.Tone.Valid() {
		return model.NewError(model.CodeInvalidPitch, "tone %d out of range", p.Tone)
	}
	if !p.Accidental.Valid() {
		return model.NewError(model.CodeInvalidPitch, "accidental %d out of range", p.Accidental)
	}
	return nil
}

func validateInterval(iv model.Interval) error {
	if iv.Number < 1 || iv.Number > len(intervalSemitones) {
		return model.NewError(model.CodeInvalidInterval, "interval number %d out of range", iv.Number)
	}
	if _, ok := qualityOffset(iv); !ok {
		return model.NewError(model.CodeInvalidInterval, "quality %d not valid for interval number %d", iv.Quality, iv.Number)
	}
	return nil
}

func qualityOffset(iv model.Interval) (int, bool) {
	if iv.IsPerfectClass() {
		switch iv.Quality {
		case model.Diminished:
			return -1, true
		case model.Perfect:
			return 0, true
		case model.Augmented:
			return 1, true
		}
		return 0, false
	}
	switch iv.Quality {
	case model.Diminished:
		return -2, true
	case model.Minor:
		return -1, true
	case model.Major:
		return 0, true
	case model.Augmented:
		return 1, true
	}
	return 0, false
}

// Apply returns the pitch iv above p. The letter advances by the interval
// number and the accidental is chosen so the semitone distance matches the
// interval quality; spellings needing more than a double accidental are
// moved to an enharmonic letter. Results outside the octave bounds fail
// with model.ErrOctaveOverflow.
func Apply(p model.Pitch, iv model.Interval) (model.Pitch, error) {
	if err := Validate(p); err != nil {
		return model.Pitch{}, err
	}
	if err := validateInterval(iv); err != nil {
		return model.Pitch{}, err
	}

	offset, _ := qualityOffset(iv)
	idx := int(p.Tone) + iv.Number - 1
	carry := idx / model.NumTones
	tone := model.Tone(idx % model.NumTones)

	want := intervalSemitones[iv.Number-1] + offset
	natural := naturalSemitones[tone] + carry*semitonesPerOctave - naturalSemitones[p.Tone]
	acc := int(p.Accidental) + want - natural

	res := respell(tone, acc, p.Octave+carry)
	if res.Octave < model.MinOctave || res.Octave > model.MaxOctave {
		return model.Pitch{}, model.NewError(model.CodeOctaveOverflow,
			"%s above %s lands in octave %d, outside [%d,%d]",
			intervalName(iv), Write(p), res.Octave, model.MinOctave, model.MaxOctave)
	}
	return res, nil
}

// respell moves a spelling with more than a double accidental onto a
// neighbouring letter that sounds the same.
func respell(tone model.Tone, acc int, octave int) model.Pitch {
	for acc > int(model.DoubleSharp) {
		next := tone + 1
		gap := 0
		if next == model.NumTones {
			next = model.C
			octave++
			gap = semitonesPerOctave
		}
		acc -= naturalSemitones[next] + gap - naturalSemitones[tone]
		tone = next
	}
	for acc < int(model.DoubleFlat) {
		prev := tone - 1
		gap := 0
		if prev < model.C {
			prev = model.B
			octave--
			gap = semitonesPerOctave
		}
		acc += naturalSemitones[tone] + gap - naturalSemitones[prev]
		tone = prev
	}
	return model.Pitch{Tone: tone, Accidental: model.Accidental(acc), Octave: octave}
}

// Semitone returns the number of semitones above C0. The result ignores the
// octave bounds, so folded pitches below C0 are negative.
func Semitone(p model.Pitch) int {
	return p.Octave*semitonesPerOctave + naturalSemitones[p.Tone] + int(p.Accidental)
}

// Enharmonic respells p on the neighbouring letter: sharps move up a letter,
// flats move down one. Naturals and rests are returned unchanged.
func Enharmonic(p model.Pitch) model.Pitch {
	if p.IsRest() || p.Accidental == model.Natural {
		return p
	}
	if p.Accidental > model.Natural {
		next := p.Tone + 1
		octave := p.Octave
		gap := 0
		if next == model.NumTones {
			next = model.C
			octave++
			gap = semitonesPerOctave
		}
		acc := int(p.Accidental) - (naturalSemitones[next] + gap - naturalSemitones[p.Tone])
		return model.Pitch{Tone: next, Accidental: model.Accidental(acc), Octave: octave}
	}
	prev := p.Tone - 1
	octave := p.Octave
	gap := 0
	if prev < model.C {
		prev = model.B
		octave--
		gap = semitonesPerOctave
	}
	acc := int(p.Accidental) + (naturalSemitones[p.Tone] + gap - naturalSemitones[prev])
	return model.Pitch{Tone: prev, Accidental: model.Accidental(acc), Octave: octave}
}
