package renderer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	twrenderer "github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
)

// TableRenderer prints one markdown table of scores per language followed by
// the win-rate table.
type TableRenderer struct{}

// NewTableRenderer creates a table renderer.
func NewTableRenderer() *TableRenderer {
	return &TableRenderer{}
}

// Render writes the report to w.
func (r *TableRenderer) Render(w io.Writer, report domain.Report) error {
	headers := []string{"Model"}
	for _, kind := range domain.MetricKinds {
		headers = append(headers, kind.DisplayName())
	}

	for _, entry := range report.Scores.Entries() {
		if _, err := fmt.Fprintf(w, "\n## %s translation results\n\n", entry.Language); err != nil {
			return err
		}
		table := createStandardTable(headers, w)
		for _, m := range entry.Models {
			row := []string{m.Model}
			for _, kind := range domain.MetricKinds {
				row = append(row, strconv.FormatFloat(m.Scores[kind], 'f', 4, 64))
			}
			if err := table.Append(row); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	if len(report.Ranking) == 0 {
		return nil
	}
	if _, err := fmt.Fprint(w, "\n## Mean win rate\n\n"); err != nil {
		return err
	}
	table := createStandardTable([]string{
		"Model",
		domain.NGramPrecision.DisplayName() + " wins",
		domain.OverlapFMeasure.DisplayName() + " wins",
		"Total wins",
		"Comparisons",
		"Mean win rate (%)",
	}, w)
	for _, rec := range report.Ranking {
		if err := table.Append([]string{
			rec.Model,
			strconv.Itoa(rec.NGramWins),
			strconv.Itoa(rec.OverlapWins),
			strconv.Itoa(rec.TotalWins),
			strconv.Itoa(rec.TotalComparisons),
			strconv.FormatFloat(rec.MeanWinRate, 'f', 2, 64),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

// createStandardTable creates a markdown table without top and bottom borders.
func createStandardTable(headers []string, w io.Writer) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(twrenderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}
