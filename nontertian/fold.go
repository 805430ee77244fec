package nontertian

import "github.com/jsphweid/quartal/model"

// Fold lowers the top levels voices of the current voicing by one octave.
// Voices are picked by position, not by pitch, so repeated calls with the
// same levels keep lowering the same voices. Base, inversion and mode are
// left alone.
func (c *Chord) Fold(levels int) error {
	if !c.built() {
		return model.NewError(model.CodeInvalidRange, "chord has not been built")
	}
	if levels < 0 || levels >= c.size {
		return model.NewError(model.CodeInvalidFoldLevel,
			"fold level %d outside [0,%d]", levels, c.size-1)
	}

	for i := 0; i < levels; i++ {
		c.current[c.size-1-i].Octave--
	}
	return nil
}
