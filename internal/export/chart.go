package export

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/piwi3910/RoomForge/internal/model"
)

// RenderFloorPlanChart writes an interactive HTML scatter chart of placed
// object centers to w. The plot is square with symmetric axes matching the
// room bounds so distances read true.
func RenderFloorPlanChart(w io.Writer, scene model.Scene, room model.Room) error {
	b := room.Bounds

	var data []opts.ScatterData
	for _, o := range scene.Objects {
		if !o.Placed {
			continue
		}
		data = append(data, opts.ScatterData{
			Name:  o.Name,
			Value: []interface{}{o.Position.X, o.Position.Y},
		})
	}
	if len(data) == 0 {
		return fmt.Errorf("no placed objects to chart")
	}

	// Small padding so objects against the walls stay visible
	padX := (b.Max.X - b.Min.X) * 0.05
	padY := (b.Max.Y - b.Min.Y) * 0.05

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Floor Plan", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Floor Plan: %s", scene.Name),
			Subtitle: fmt.Sprintf("objects=%d mood=%s", len(data), scene.Mood),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: b.Min.X - padX, Max: b.Max.X + padX, Name: "X (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: b.Min.Y - padY, Max: b.Max.Y + padY, Name: "Y (m)", NameLocation: "middle", NameGap: 30}),
	)

	scatter.AddSeries("objects", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 14}))

	return scatter.Render(w)
}

// ExportChart renders the floor plan chart to an HTML file.
func ExportChart(path string, scene model.Scene, room model.Room) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := RenderFloorPlanChart(f, scene, room); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
