package model

type Tone int8

const (
	Rest Tone = iota - 1
	C
	D
	E
	F
	G
	A
	B
)

// NumTones is the number of diatonic letters in an octave.
const NumTones = 7

type Accidental int8

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// Octave bounds for pitches produced by interval arithmetic. Re-voicing
// operations shift octaves without consulting these.
const (
	MinOctave = 0
	MaxOctave = 8
)

type Pitch struct {
	Tone       Tone
	Accidental Accidental
	Octave     int
}

func (t Tone) Valid() bool {
	return t >= C && t <= B
}

func (a Accidental) Valid() bool {
	return a >= DoubleFlat && a <= DoubleSharp
}

func (p Pitch) IsRest() bool {
	return p.Tone == Rest
}
