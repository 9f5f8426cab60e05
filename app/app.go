// Package app orchestrates a scattering run: parameter derivation,
// scenario construction and solver execution.
package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"beamscatter/beam"
	"beamscatter/engine"
	"beamscatter/entity/interfacekind"
	"beamscatter/entity/parameters"
	"beamscatter/viewer"
	"beamscatter/volume"
)

type App struct {
	Params     *parameters.Parameters
	SolverPath string
	Workdir    string
}

func New(params *parameters.Parameters, solverPath, workdir string) *App {
	return &App{
		Params:     params,
		SolverPath: solverPath,
		Workdir:    workdir,
	}
}

// Run derives the physical quantities, builds the scenario and hands it
// to the external solver.
func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()

	d, err := a.Params.Derive()
	if err != nil {
		return fmt.Errorf("failed to derive parameters: %w", err)
	}
	a.logDerived(d)

	scenario, err := engine.Build(a.Params, d)
	if err != nil {
		return fmt.Errorf("failed to build scenario: %w", err)
	}

	runner := &engine.Runner{SolverPath: a.SolverPath, Workdir: a.Workdir}
	out, err := runner.Run(ctx, scenario)
	if out != "" {
		log.WithField("output", out).Debug("solver output")
	}
	if err != nil {
		return fmt.Errorf("failed to run solver: %w", err)
	}
	return nil
}

// View loads a volumetric intensity file written by the solver and
// renders it.
func (a *App) View(source string, o viewer.Options) error {
	g, err := volume.Load(source)
	if err != nil {
		return fmt.Errorf("failed to load volume: %w", err)
	}
	log.WithFields(log.Fields{
		"source": source,
		"nx":     g.NX,
		"ny":     g.NY,
		"nz":     g.NZ,
		"max":    g.Max(),
		"min":    g.Min(),
	}).Debug("volume loaded")
	return viewer.Render(g, o)
}

// TestOutput logs the probe values of the reference configuration: the
// spectrum amplitude at kt = 0.2 and the decomposed field at the source
// position, transverse offset 0.3.
func (a *App) TestOutput() error {
	d, err := a.Params.Derive()
	if err != nil {
		return fmt.Errorf("failed to derive parameters: %w", err)
	}
	bp := beam.Params{WaistWidth: d.W0, Wavenumber: d.K1}
	log.WithField("spectrum", bp.Spectrum(0.2)).Info("Gauss spectrum")

	psi, err := beam.Evaluate(bp, beam.Point{X: a.Params.SourceShift, Y: 0.3})
	if err != nil {
		return fmt.Errorf("failed to evaluate field: %w", err)
	}
	log.WithFields(log.Fields{
		"re": real(psi),
		"im": imag(psi),
	}).Info("psi")
	return nil
}

// logDerived reports the specified variables and derived values the way
// the run would print them.
func (a *App) logDerived(d *parameters.Derived) {
	fields := log.Fields{
		"n1":           a.Params.N1,
		"n2":           a.Params.N2,
		"chi":          a.Params.ChiDeg,
		"inclination":  90 - a.Params.ChiDeg,
		"kw_0":         a.Params.KW0,
		"kr_w":         a.Params.KRW,
		"k_vac":        d.KVac,
		"polarisation": d.Pol.String(),
		"interface":    d.Kind.String(),
	}
	if d.Kind != interfacekind.Planar {
		fields["kr_c"] = a.Params.KRC
	}
	log.WithFields(fields).Info("Specified variables and derived values")
}
