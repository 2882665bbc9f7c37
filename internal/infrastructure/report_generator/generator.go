package report_generator

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/device_onboarder/internal/report"
)

const (
	titleRowHeight  = 12
	headerRowHeight = 8
	rowHeight       = 7
)

var (
	titleProps  = props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}
	headerProps = props.Text{Size: 10, Style: fontstyle.Bold, Top: 1}
	cellProps   = props.Text{Size: 9, Top: 1}
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateReport(outputPath string, r *report.Report) error {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(titleRowHeight, text.NewCol(12, r.Title, titleProps))
	m.AddRow(rowHeight, text.NewCol(12, fmt.Sprintf("File: %s", r.Filename), cellProps))

	if r.Market != "" {
		m.AddRow(rowHeight, text.NewCol(12, fmt.Sprintf("Market: %s", r.Market), cellProps))
	}

	addTable(m, []string{"#", "Device Name"}, []int{2, 10}, rowsOf(r.Rows, false))

	if len(r.Failures) > 0 {
		m.AddRow(titleRowHeight, text.NewCol(12, "Failed Devices", titleProps))
		addTable(m, []string{"#", "Device Name", "Outcome", "Detail"}, []int{1, 4, 2, 5}, rowsOf(r.Failures, true))
	}

	for _, line := range r.Summary {
		m.AddRow(rowHeight, text.NewCol(12, line, headerProps))
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save pdf %q: %w", outputPath, err)
	}

	return nil
}

func rowsOf(rows []report.Row, withStatus bool) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if withStatus {
			out = append(out, []string{row.Index, row.DisplayName, string(row.Status), row.Detail})
			continue
		}

		out = append(out, []string{row.Index, row.DisplayName})
	}

	return out
}

func addTable(m core.Maroto, header []string, sizes []int, rows [][]string) {
	m.AddRow(headerRowHeight, cols(header, sizes, headerProps)...)

	for _, row := range rows {
		m.AddRow(rowHeight, cols(row, sizes, cellProps)...)
	}
}

func cols(values []string, sizes []int, p props.Text) []core.Col {
	out := make([]core.Col, 0, len(values))
	for i, v := range values {
		out = append(out, text.NewCol(sizes[i], v, p))
	}

	return out
}
