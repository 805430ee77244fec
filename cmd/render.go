package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/jsphweid/quartal/model"
	"github.com/jsphweid/quartal/util"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

type stageOutput struct {
	Label string `json:"label"`
	model.ChordResponse
}

func renderStages(w io.Writer, format string, stages []stage) error {
	switch strings.ToLower(format) {
	case "json":
		out := make([]stageOutput, 0, len(stages))
		for i := range stages {
			out = append(out, stageOutput{Label: stages[i].Label, ChordResponse: toResponse(&stages[i].Chord)})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "plain":
		width := 0
		for _, s := range stages {
			width = util.Max(width, len(s.Label))
		}
		for i := range stages {
			fmt.Fprintf(w, "%-*s: %s\n", width, stages[i].Label, stages[i].Chord.String())
		}
		return nil
	case "table", "":
		headers := []string{"Stage", "Voicing", "MIDI", "Span"}
		rows := make([][]string, 0, len(stages))
		for i := range stages {
			resp := toResponse(&stages[i].Chord)
			rows = append(rows, []string{
				stages[i].Label,
				strings.Join(resp.Current, " "),
				joinKeys(resp.Keys),
				fmt.Sprintf("%d", resp.Span),
			})
		}
		_, err := fmt.Fprintln(w, renderTable(headers, rows, []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight}))
		return err
	}
	return fmt.Errorf("output: unsupported value %q", format)
}

func joinKeys(keys []int) string {
	if keys == nil {
		return "-"
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%d", k)
	}
	return strings.Join(parts, " ")
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
