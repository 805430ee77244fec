package model

type Quality int8

const (
	Diminished Quality = iota
	Minor
	Perfect
	Major
	Augmented
)

// Interval is a melodic interval measured in scale steps, where 1 is a
// unison, 4 a fourth and 8 an octave.
type Interval struct {
	Number  int
	Quality Quality
}

var (
	PerfectFourth = Interval{Number: 4, Quality: Perfect}
	PerfectFifth  = Interval{Number: 5, Quality: Perfect}
)

// IsPerfectClass reports whether the interval number takes perfect rather
// than major/minor qualities (unison, fourth, fifth, octave).
func (i Interval) IsPerfectClass() bool {
	switch i.Number {
	case 1, 4, 5, 8:
		return true
	}
	return false
}
