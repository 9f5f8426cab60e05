// Package engine builds the input handed to the external FDTD solver and
// supervises its execution. The solver itself is an opaque collaborator:
// it receives a scenario file and writes field and intensity volumes.
package engine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"beamscatter/beam"
	"beamscatter/entity/parameters"
	"beamscatter/geometry"
)

// sourceHeight is the transverse extent of the line source in solver units.
const sourceHeight = 2.0

// Complex is a YAML-friendly complex sample.
type Complex struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

// Source is the continuous current source driving the simulation. The
// amplitude profile is sampled along the source line at grid resolution;
// the solver interpolates between samples.
type Source struct {
	Frequency float64          `yaml:"frequency"`
	Width     float64          `yaml:"width"`
	Component string           `yaml:"component"`
	Center    geometry.Vector3 `yaml:"center"`
	Size      geometry.Vector3 `yaml:"size"`
	Amplitude []Complex        `yaml:"amplitude"`
}

// Scenario is the complete input description of one solver run.
type Scenario struct {
	Title        string          `yaml:"title"`
	Cell         geometry.Cell   `yaml:"cell"`
	PMLThickness float64         `yaml:"pmlThickness"`
	Resolution   float64         `yaml:"resolution"`
	Courant      float64         `yaml:"courant"`
	Layout       geometry.Layout `yaml:"layout"`
	Source       Source          `yaml:"source"`
	Runtime      float64         `yaml:"runtime"`
}

func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

func (s *Scenario) Unmarshal(data []byte) error {
	return yaml.Unmarshal(data, s)
}

// Build assembles the scenario for the given parameters: interface
// placement from the geometry rules and the source amplitude profile from
// the plane-wave decomposition of the beam. The source sits away from the
// beam waist, so every sample requires an integral; a failed evaluation
// aborts the build rather than degrading the profile.
func Build(p *parameters.Parameters, d *parameters.Derived) (*Scenario, error) {
	cell := geometry.Cell{SX: p.CellX, SY: p.CellY}
	layout := geometry.ForInterface(d.Kind, p.N1, p.N2, d.ChiRad, d.RC, cell)

	n := int(math.Ceil(sourceHeight*d.Resolution)) + 1
	if n < 2 {
		n = 2
	}
	ys := make([]float64, n)
	floats.Span(ys, -sourceHeight/2, sourceHeight/2)

	bp := beam.Params{WaistWidth: d.W0, Wavenumber: d.K1}
	amps := make([]Complex, n)
	for i, y := range ys {
		v, err := beam.Evaluate(bp, beam.Point{X: d.Shift, Y: y})
		if err != nil {
			return nil, fmt.Errorf("source amplitude at y=%g: %w", y, err)
		}
		amps[i] = Complex{Re: real(v), Im: imag(v)}
	}

	return &Scenario{
		Title:        fmt.Sprintf("Gaussian beam at %s interface, %s-polarized", d.Kind, d.Pol),
		Cell:         cell,
		PMLThickness: p.PMLThickness,
		Resolution:   d.Resolution,
		Courant:      d.Courant,
		Layout:       layout,
		Source: Source{
			Frequency: p.Frequency,
			Width:     0.5,
			Component: d.Pol.Component(),
			Center:    geometry.Vector3{X: p.SourceShift},
			Size:      geometry.Vector3{Y: sourceHeight},
			Amplitude: amps,
		},
		Runtime: p.Runtime,
	}, nil
}
