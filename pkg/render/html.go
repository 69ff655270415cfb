package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Sumatoshi-tech/gitattrib/pkg/attribution"
)

// HTMLRenderer writes an interactive dashboard: a pie of commits per AI tool
// and a bar chart of per-module AI percentages.
type HTMLRenderer struct{}

const (
	chartWidth     = "900px"
	chartHeight    = "500px"
	topModules     = 25
	moduleBarColor = "#5470c6"
)

// Render writes the dashboard page.
func (r *HTMLRenderer) Render(report *attribution.Report, w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("AI Attribution: %s", report.ProjectName)

	page.AddCharts(
		createToolPie(report),
		createModuleBar(report),
	)

	err := page.Render(w)
	if err != nil {
		return fmt.Errorf("render html report: %w", err)
	}

	return nil
}

// Extension returns "html".
func (r *HTMLRenderer) Extension() string {
	return FormatHTML
}

func createToolPie(report *attribution.Report) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title: "Commits by AI Tool",
			Subtitle: fmt.Sprintf("%d of %d commits AI-assisted (%.1f%%)",
				report.AIAssistedCommits, report.TotalCommits, report.AIAssistedPercentage),
			Left: "2%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)

	data := make([]opts.PieData, 0, len(report.CommitsByTool)+1)
	for _, tool := range report.Tools() {
		data = append(data, opts.PieData{Name: tool.DisplayName(), Value: report.CommitsByTool[tool]})
	}

	human := report.TotalCommits - report.AIAssistedCommits
	if human > 0 {
		data = append(data, opts.PieData{Name: "Human Only", Value: human})
	}

	pie.AddSeries("Commits", data).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {c} ({d}%)",
		}))

	return pie
}

func createModuleBar(report *attribution.Report) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "AI-Assisted Changes by Module",
			Subtitle: "Share of files touched by AI-assisted commits",
			Left:     "2%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Module", AxisLabel: &opts.AxisLabel{Rotate: 45, Show: opts.Bool(true)}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "AI %"}),
		charts.WithGridOpts(opts.Grid{Bottom: "25%"}),
	)

	// Modules() sorts by AI percentage descending; cap the chart width.
	modules := report.Modules()
	if len(modules) > topModules {
		modules = modules[:topModules]
	}

	values := make([]opts.BarData, len(modules))
	for i, name := range modules {
		values[i] = opts.BarData{Value: round2(report.ModuleBreakdown[name].AIAssistedPercentage)}
	}

	bar.SetXAxis(modules)
	bar.AddSeries("AI %", values,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: moduleBarColor}))

	return bar
}
