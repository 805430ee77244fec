package chord

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/quartal/model"
	"github.com/jsphweid/quartal/nontertian"
	"github.com/jsphweid/quartal/pitch"
)

func TestKeyKeepsVoiceOrder(t *testing.T) {
	voices := pitch.MustParseAll("F4-Bb4-Eb5-C5")
	assert.Equal(t, "F4-Bb4-Eb5-C5", Key(voices))
}

func TestSortedKeys(t *testing.T) {
	voices := pitch.MustParseAll("F4-Bb4-Eb5-C5")

	assert := assert.New(t)
	keys, err := MidiKeys(voices)
	assert.NoError(err)
	assert.Equal([]uint8{65, 70, 75, 72}, keys)

	sorted, err := SortedKeys(voices)
	assert.NoError(err)
	assert.Equal([]uint8{65, 70, 72, 75}, sorted)

	_, err = SortedKeys([]model.Pitch{{Tone: model.Rest}})
	assert.ErrorIs(err, model.ErrInvalidPitch)
}

func TestCreateChordKeyMatchesEnharmonicVoicings(t *testing.T) {
	cases := []struct{ a, b string }{
		{"C4-F4-Bb4", "Bb4-F4-C4"},
		{"C#4-F#4-B4", "Db4-Gb4-Cb5"},
		{"E#3-A#3", "F3-Bb3"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s matches %s", c.a, c.b), func(t *testing.T) {
			ka, err := CreateChordKey(pitch.MustParseAll(c.a))
			assert.NoError(t, err)
			kb, err := CreateChordKey(pitch.MustParseAll(c.b))
			assert.NoError(t, err)
			assert.Equal(t, ka, kb)
		})
	}

	key, err := CreateChordKey(pitch.MustParseAll("C4-F4-Bb4-Eb5"))
	assert.NoError(t, err)
	assert.Equal(t, "60-65-70-75", key)
}

func TestSpan(t *testing.T) {
	c, err := nontertian.BuildQuartal(pitch.MustParse("C4"), 4)
	assert.NoError(t, err)
	assert.Equal(t, 15, Span(c.Current()))

	assert.NoError(t, c.Invert(1, nontertian.Full))
	assert.Equal(t, 19, Span(c.Current()))

	assert.NoError(t, c.Fold(1))
	assert.Equal(t, 10, Span(c.Current()))

	assert.Equal(t, 0, Span(nil))
	assert.Equal(t, 0, Span([]model.Pitch{{Tone: model.Rest}}))
}
