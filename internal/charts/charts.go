// Package charts renders Game Profile comparisons as interactive HTML charts.
package charts

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ramonehamilton/replay-companion/internal/profile"
)

// ErrNoComparisons is returned when a profile has nothing to chart.
var ErrNoComparisons = errors.New("profile has no comparison statistics")

// ChartConfig holds configuration for charts.
type ChartConfig struct {
	Title    string   // Chart title
	Subtitle string   // Chart subtitle
	Width    string   // Chart width (e.g., "900px")
	Height   string   // Chart height (e.g., "500px")
	Theme    string   // Chart theme
	Colors   []string // Series colors, player 1 first
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Title:    "Game Profile",
		Subtitle: "",
		Width:    "900px",
		Height:   "500px",
		Theme:    "dark",
		Colors:   []string{"#5470C6", "#FAC858"},
	}
}

// RenderComparisonChart writes a grouped bar chart of the profile's
// statistics to outputPath.
func RenderComparisonChart(p *profile.Profile, config ChartConfig, outputPath string) error {
	if !hasComparisons(p) {
		return ErrNoComparisons
	}

	return writeChartFile(outputPath, func(w io.Writer) error {
		return WriteComparisonChart(p, config, w)
	})
}

// writeChartFile creates path and fills it with render. The file is removed
// when rendering or closing fails so no truncated chart is left behind.
func writeChartFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}

	if err := render(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to close chart file: %w", err)
	}
	return nil
}

// WriteComparisonChart renders the comparison chart to w.
func WriteComparisonChart(p *profile.Profile, config ChartConfig, w io.Writer) error {
	if !hasComparisons(p) {
		return ErrNoComparisons
	}

	var labels []string
	var series1, series2 []opts.BarData
	for _, section := range p.Sections {
		for _, stat := range section.Stats {
			labels = append(labels, stat.Label)
			series1 = append(series1, barData(stat.Value1, stat.Display1, stat.Highlight == profile.Side1))
			series2 = append(series2, barData(stat.Value2, stat.Display2, stat.Highlight == profile.Side2))
		}
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
		charts.WithColorsOpts(opts.Colors(config.Colors)),
	)

	bar.SetXAxis(labels).
		AddSeries(p.Players[0].Label, series1).
		AddSeries(p.Players[1].Label, series2).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:     opts.Bool(true),
				Position: "top",
			}),
		)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func hasComparisons(p *profile.Profile) bool {
	if p == nil || p.Empty || len(p.Players) != 2 {
		return false
	}
	for _, section := range p.Sections {
		if len(section.Stats) > 0 {
			return true
		}
	}
	return false
}

func barData(value float64, display string, highlighted bool) opts.BarData {
	if highlighted {
		display += " ★"
	}
	return opts.BarData{Name: display, Value: value}
}
