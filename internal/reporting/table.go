package reporting

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable renders the report as a console table: planned relocations
// first, then failures and skips with their reasons.
func RenderTable(report *PlanReport) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Status", "Source", "Result"})

	for _, p := range report.Planned {
		tw.AppendRow(table.Row{"planned", p.SourcePath, p.TargetPath()})
	}
	for _, f := range report.Failed {
		tw.AppendRow(table.Row{"failed", f.SourcePath, f.Reason})
	}
	for _, s := range report.Skipped {
		tw.AppendRow(table.Row{"skipped", s.Path, s.Reason})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
