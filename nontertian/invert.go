package nontertian

import (
	"github.com/jsphweid/quartal/model"
	"github.com/jsphweid/quartal/util"
)

func octaveOf(p model.Pitch) int {
	return p.Octave
}

// Invert resets the current voicing to base and then applies count
// inversion steps. Each step takes the lowest voice, raises it according to
// mode and moves it to the top.
//
// "Highest" compares octaves only: under Full the displaced voice is raised
// until its octave exceeds the highest octave among the remaining voices,
// recomputed at every step. Letter and accidental are never compared.
//
// Arguments are checked before anything is touched, so a rejected call
// leaves the chord as it was.
func (c *Chord) Invert(count int, mode InversionMode) error {
	if !c.built() {
		return model.NewError(model.CodeInvalidRange, "chord has not been built")
	}
	if count < 0 || count >= c.size {
		return model.NewError(model.CodeInvalidInversion,
			"inversion %d outside [0,%d]", count, c.size-1)
	}
	if !mode.Valid() {
		return model.NewError(model.CodeInvalidInversion, "unknown inversion mode %d", int(mode))
	}

	c.current = c.base
	voices := c.current[:c.size]
	for step := 0; step < count; step++ {
		displaced := voices[0]
		switch mode {
		case Standard:
			displaced.Octave++
		case Full:
			top := util.MaxBy(voices[1:], octaveOf)
			for displaced.Octave <= top {
				displaced.Octave++
			}
		}
		copy(voices, voices[1:])
		voices[c.size-1] = displaced
	}

	c.inversion = count
	c.mode = mode
	return nil
}
