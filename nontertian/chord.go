// Package nontertian builds chords from a stack of a single non-third
// interval (quartal chords from perfect fourths, quintal chords from perfect
// fifths) and re-voices them by inversion and octave folding.
//
// A Chord carries two voicings. The base voicing is written once by Build
// and never changes. The current voicing starts equal to base; Invert always
// rebuilds it from base before rotating, while Fold lowers voices of whatever
// current holds. Inverting therefore discards any earlier fold or inversion.
//
// Chords are plain values with fixed-capacity storage, and none of Build,
// Invert or Fold allocate. A single Chord must not be mutated from more than
// one goroutine at a time.
package nontertian

import (
	"fmt"
	"strings"

	"github.com/jsphweid/quartal/constants"
	"github.com/jsphweid/quartal/model"
	"github.com/jsphweid/quartal/pitch"
)

const (
	MinSize = constants.MinChordSize
	MaxSize = constants.MaxChordSize
)

// IntervalUnit is the interval stacked between adjacent voices.
type IntervalUnit int

const (
	PerfectFourth IntervalUnit = iota
	PerfectFifth
)

type InversionMode int

const (
	// Standard raises the lowest voice one octave per step.
	Standard InversionMode = iota
	// Full raises the lowest voice until it sits above every other voice.
	Full
)

type Chord struct {
	size      int
	unit      IntervalUnit
	inversion int
	mode      InversionMode
	base      [MaxSize]model.Pitch
	current   [MaxSize]model.Pitch
}

func (c *Chord) Size() int {
	return c.size
}

func (c *Chord) Unit() IntervalUnit {
	return c.unit
}

// Inversion is the step count of the last successful Invert, or 0.
func (c *Chord) Inversion() int {
	return c.inversion
}

func (c *Chord) Mode() InversionMode {
	return c.mode
}

// Base returns a copy of the voicing produced by Build.
func (c *Chord) Base() []model.Pitch {
	return clone(c.base[:c.size])
}

// Current returns a copy of the present voicing.
func (c *Chord) Current() []model.Pitch {
	return clone(c.current[:c.size])
}

// At returns voice i of the current voicing.
func (c *Chord) At(i int) model.Pitch {
	return c.current[:c.size][i]
}

// String renders the current voicing, e.g. "F4-Bb4-Eb5-C6".
func (c *Chord) String() string {
	if c == nil {
		return "<nil>"
	}
	return pitch.WriteAll(c.current[:c.size])
}

func (c *Chord) built() bool {
	return c != nil && c.size >= MinSize && c.size <= MaxSize
}

func clone(ps []model.Pitch) []model.Pitch {
	res := make([]model.Pitch, len(ps))
	copy(res, ps)
	return res
}

func (u IntervalUnit) Valid() bool {
	return u == PerfectFourth || u == PerfectFifth
}

// Interval returns the perfect interval stacked by u.
func (u IntervalUnit) Interval() model.Interval {
	if u == PerfectFifth {
		return model.PerfectFifth
	}
	return model.PerfectFourth
}

// Name is "quartal" or "quintal".
func (u IntervalUnit) Name() string {
	switch u {
	case PerfectFourth:
		return "quartal"
	case PerfectFifth:
		return "quintal"
	}
	return fmt.Sprintf("unit(%d)", int(u))
}

func (u IntervalUnit) String() string {
	return u.Name()
}

// ParseIntervalUnit accepts "quartal"/"fourth"/"p4" and "quintal"/"fifth"/"p5".
func ParseIntervalUnit(s string) (IntervalUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quartal", "fourth", "fourths", "p4", "4":
		return PerfectFourth, nil
	case "quintal", "fifth", "fifths", "p5", "5":
		return PerfectFifth, nil
	}
	return 0, model.NewError(model.CodeInvalidInterval, "unknown interval unit %q", s)
}

func (m InversionMode) Valid() bool {
	return m == Standard || m == Full
}

func (m InversionMode) String() string {
	switch m {
	case Standard:
		return "standard"
	case Full:
		return "full"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func ParseMode(s string) (InversionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard", "std":
		return Standard, nil
	case "full":
		return Full, nil
	}
	return 0, model.NewError(model.CodeInvalidInversion, "unknown inversion mode %q", s)
}
