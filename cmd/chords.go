package cmd

import (
	"fmt"

	"github.com/jsphweid/quartal/chord"
	"github.com/jsphweid/quartal/model"
	"github.com/jsphweid/quartal/nontertian"
	"github.com/jsphweid/quartal/pitch"
)

// chordRequest is a chord request shared by the CLI and the HTTP API: build,
// then invert, then apply each fold in order.
type chordRequest struct {
	Root      string
	Size      int
	Unit      string
	Inversion int
	Mode      string
	Folds     []int
}

type stage struct {
	Label string
	Chord nontertian.Chord
}

func defaultRequest() chordRequest {
	return chordRequest{
		Root: cfg.Defaults.Root,
		Size: cfg.Defaults.Size,
		Unit: cfg.Defaults.Unit,
		Mode: cfg.Defaults.Mode,
	}
}

// requestFromBody fills zero-valued request fields from the defaults.
func requestFromBody(body model.ChordRequestBody) chordRequest {
	s := defaultRequest()
	if body.Root != "" {
		s.Root = body.Root
	}
	if body.Size != 0 {
		s.Size = body.Size
	}
	if body.Unit != "" {
		s.Unit = body.Unit
	}
	if body.Mode != "" {
		s.Mode = body.Mode
	}
	s.Inversion = body.Inversion
	s.Folds = body.Folds
	return s
}

// realize returns the final chord along with a snapshot after every step.
func (s chordRequest) realize() (nontertian.Chord, []stage, error) {
	root, err := pitch.Parse(s.Root)
	if err != nil {
		return nontertian.Chord{}, nil, err
	}
	unit, err := nontertian.ParseIntervalUnit(s.Unit)
	if err != nil {
		return nontertian.Chord{}, nil, err
	}
	mode, err := nontertian.ParseMode(s.Mode)
	if err != nil {
		return nontertian.Chord{}, nil, err
	}

	c, err := nontertian.Build(root, s.Size, unit)
	if err != nil {
		return nontertian.Chord{}, nil, err
	}
	stages := []stage{{Label: fmt.Sprintf("%d-note %s on %s", s.Size, unit.Name(), pitch.Write(root)), Chord: c}}

	if s.Inversion != 0 || mode != nontertian.Standard {
		if err := c.Invert(s.Inversion, mode); err != nil {
			return nontertian.Chord{}, nil, err
		}
		stages = append(stages, stage{Label: inversionLabel(s.Inversion, mode), Chord: c})
	}

	total := 0
	for _, levels := range s.Folds {
		if err := c.Fold(levels); err != nil {
			return nontertian.Chord{}, nil, err
		}
		total += levels
		stages = append(stages, stage{Label: fmt.Sprintf("folded %d (%d total)", levels, total), Chord: c})
	}

	return c, stages, nil
}

func inversionLabel(count int, mode nontertian.InversionMode) string {
	if count == 0 {
		return fmt.Sprintf("root position (%s)", mode)
	}
	return fmt.Sprintf("%s inversion (%s)", ordinal(count), mode)
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	}
	return fmt.Sprintf("%dth", n)
}

func toResponse(c *nontertian.Chord) model.ChordResponse {
	current := c.Current()
	res := model.ChordResponse{
		Unit:      c.Unit().Name(),
		Size:      c.Size(),
		Inversion: c.Inversion(),
		Mode:      c.Mode().String(),
		Base:      writeEach(c.Base()),
		Current:   writeEach(current),
		Span:      chord.Span(current),
	}
	// folded voices can drop below the MIDI range; keys are omitted then
	if keys, err := chord.MidiKeys(current); err == nil {
		res.Keys = make([]int, len(keys))
		for i, k := range keys {
			res.Keys[i] = int(k)
		}
	}
	return res
}

func writeEach(ps []model.Pitch) []string {
	res := make([]string, len(ps))
	for i, p := range ps {
		res[i] = pitch.Write(p)
	}
	return res
}
