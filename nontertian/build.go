package nontertian

import (
	"github.com/jsphweid/quartal/model"
	"github.com/jsphweid/quartal/pitch"
)

// Transposer applies a melodic interval to a pitch.
type Transposer interface {
	Apply(p model.Pitch, iv model.Interval) (model.Pitch, error)
}

// Build stacks size-1 copies of unit above root using pitch.Arithmetic.
func Build(root model.Pitch, size int, unit IntervalUnit) (Chord, error) {
	return BuildWith(pitch.Arithmetic{}, root, size, unit)
}

func BuildQuartal(root model.Pitch, size int) (Chord, error) {
	return Build(root, size, PerfectFourth)
}

func BuildQuintal(root model.Pitch, size int) (Chord, error) {
	return Build(root, size, PerfectFifth)
}

// BuildWith stacks each voice a unit above the voice below it, so the span
// grows with every added voice. Errors from t are returned as is. On any
// error the returned Chord is the zero value.
func BuildWith(t Transposer, root model.Pitch, size int, unit IntervalUnit) (Chord, error) {
	if size < MinSize || size > MaxSize {
		return Chord{}, model.NewError(model.CodeInvalidChordSize,
			"size %d outside [%d,%d]", size, MinSize, MaxSize)
	}
	if t == nil {
		return Chord{}, model.NewError(model.CodeInvalidRange, "no transposer")
	}
	if !unit.Valid() {
		return Chord{}, model.NewError(model.CodeInvalidInterval, "unknown interval unit %d", int(unit))
	}

	c := Chord{size: size, unit: unit, mode: Standard}
	c.base[0] = root
	c.current[0] = root

	iv := unit.Interval()
	for i := 1; i < size; i++ {
		next, err := t.Apply(c.current[i-1], iv)
		if err != nil {
			return Chord{}, err
		}
		c.base[i] = next
		c.current[i] = next
	}
	return c, nil
}
