package pitch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/quartal/model"
)

const restName = "R"

var toneNames = [model.NumTones]string{"C", "D", "E", "F", "G", "A", "B"}

var accidentalNames = map[model.Accidental]string{
	model.DoubleFlat:  "bb",
	model.Flat:        "b",
	model.Natural:     "",
	model.Sharp:       "#",
	model.DoubleSharp: "##",
}

var qualityNames = map[model.Quality]string{
	model.Diminished: "d",
	model.Minor:      "m",
	model.Perfect:    "P",
	model.Major:      "M",
	model.Augmented:  "A",
}

// Write renders p as letter, accidental and octave, e.g. "Bb4" or "F#-1".
func Write(p model.Pitch) string {
	if p.IsRest() {
		return restName
	}
	if !p.Tone.Valid() || !p.Accidental.Valid() {
		return fmt.Sprintf("?%d/%d/%d", p.Tone, p.Accidental, p.Octave)
	}
	return toneNames[p.Tone] + accidentalNames[p.Accidental] + strconv.Itoa(p.Octave)
}

// WriteAll renders ps in order joined by dashes, e.g. "C4-F4-Bb4-Eb5".
func WriteAll(ps []model.Pitch) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = Write(p)
	}
	return strings.Join(names, "-")
}

func intervalName(iv model.Interval) string {
	return fmt.Sprintf("%s%d", qualityNames[iv.Quality], iv.Number)
}

// Parse reads the form produced by Write. The letter is case-insensitive;
// "x" is accepted as a double sharp.
func Parse(s string) (model.Pitch, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, restName) || strings.EqualFold(s, "rest") {
		return model.Pitch{Tone: model.Rest}, nil
	}
	if s == "" {
		return model.Pitch{}, model.NewError(model.CodeInvalidPitch, "empty pitch name")
	}

	tone := model.Tone(strings.IndexByte("CDEFGAB", upper(s[0])))
	if tone < model.C {
		return model.Pitch{}, model.NewError(model.CodeInvalidPitch, "unknown letter in %q", s)
	}

	rest := s[1:]
	var acc int
	switch {
	case strings.HasPrefix(rest, "##"):
		acc, rest = 2, rest[2:]
	case strings.HasPrefix(rest, "x"):
		acc, rest = 2, rest[1:]
	case strings.HasPrefix(rest, "#"):
		acc, rest = 1, rest[1:]
	case strings.HasPrefix(rest, "bb"):
		acc, rest = -2, rest[2:]
	case strings.HasPrefix(rest, "b"):
		acc, rest = -1, rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return model.Pitch{}, model.NewError(model.CodeInvalidPitch, "bad octave in %q", s)
	}
	return model.Pitch{Tone: tone, Accidental: model.Accidental(acc), Octave: octave}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) model.Pitch {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MustParseAll parses a dash-separated voicing such as "C4-F4-Bb4".
func MustParseAll(s string) []model.Pitch {
	var res []model.Pitch
	for _, name := range strings.Split(s, "-") {
		res = append(res, MustParse(name))
	}
	return res
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
