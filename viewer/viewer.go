// Package viewer renders a slice of a volumetric intensity grid as an
// HTML heat map.
package viewer

import (
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"

	"beamscatter/volume"
)

type Options struct {
	// Cutoff is the number of border cells stripped before rendering,
	// removing the absorbing boundary layer and the source line.
	Cutoff int
	// SliceZ is the z index rendered; negative selects the central plane.
	SliceZ int
	Output string
}

// Render normalizes g, crops its borders and writes the selected slice as
// an HTML heat map.
func Render(g *volume.Grid, o Options) error {
	g.Normalize()
	cropped, err := g.Crop(o.Cutoff)
	if err != nil {
		return fmt.Errorf("failed to crop volume: %w", err)
	}

	iz := o.SliceZ
	if iz < 0 {
		iz = cropped.NZ / 2
	}
	if iz >= cropped.NZ {
		return fmt.Errorf("slice %d out of range, cropped volume has %d planes", iz, cropped.NZ)
	}

	f, err := os.Create(o.Output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	if err := createChart(cropped, iz).Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	log.WithFields(log.Fields{
		"time":   time.Since(renderTime),
		"slice":  iz,
		"output": o.Output,
	}).Info("Chart rendered and saved")
	return nil
}

func createChart(g *volume.Grid, iz int) *charts.HeatMap {
	heat := charts.NewHeatMap()

	heat.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       "Scattering of a Gaussian beam at a dielectric interface",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        1,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#000000", "#b40426", "#f7fb0a"},
			},
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "x, cells",
			Type: "category",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "y, cells",
			Type: "category",
			Data: axisLabels(g.NY),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
	)

	data := make([]opts.HeatMapData, 0, g.NX*g.NY)
	for iy, row := range g.SliceZ(iz) {
		for ix, v := range row {
			data = append(data, opts.HeatMapData{
				Value: [3]interface{}{ix, iy, v},
			})
		}
	}

	heat.SetXAxis(axisLabels(g.NX))
	heat.AddSeries("intensity", data)
	return heat
}

func axisLabels(n int) []int {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i
	}
	return labels
}
