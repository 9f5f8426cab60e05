package engine

import (
	"context"
	"math/cmplx"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beamscatter/entity/parameters"
)

// fastParams keeps the resolution, and with it the number of amplitude
// samples, small enough for a quick build.
func fastParams() *parameters.Parameters {
	p := parameters.Default()
	p.PixelsPerWavelength = 0.1
	return p
}

func TestBuild(t *testing.T) {
	p := fastParams()
	d, err := p.Derive()
	require.NoError(t, err)

	s, err := Build(p, d)
	require.NoError(t, err)

	assert.Equal(t, 5.0, s.Cell.SX)
	assert.Equal(t, 0.25, s.PMLThickness)
	assert.InDelta(t, 0.1*1.54*12, s.Resolution, 1e-12)
	assert.InDelta(t, 0.5, s.Courant, 1e-12)
	assert.Equal(t, "Ez", s.Source.Component)
	assert.Equal(t, 12.0, s.Source.Frequency)
	assert.Equal(t, -2.15, s.Source.Center.X)
	assert.Equal(t, 1.54, s.Layout.DefaultIndex)
	require.Len(t, s.Layout.Blocks, 1)

	require.GreaterOrEqual(t, len(s.Source.Amplitude), 2)
	for _, a := range s.Source.Amplitude {
		assert.False(t, cmplx.IsNaN(complex(a.Re, a.Im)))
	}
	// the profile peaks near the beam axis, not at the line ends
	mid := s.Source.Amplitude[len(s.Source.Amplitude)/2]
	edge := s.Source.Amplitude[0]
	assert.Greater(t, cmplx.Abs(complex(mid.Re, mid.Im)), cmplx.Abs(complex(edge.Re, edge.Im)))
}

func TestBuildPolarizationComponent(t *testing.T) {
	p := fastParams()
	p.Polarization = "p"
	d, err := p.Derive()
	require.NoError(t, err)

	s, err := Build(p, d)
	require.NoError(t, err)
	assert.Equal(t, "Ey", s.Source.Component)
}

func TestScenarioRoundTrip(t *testing.T) {
	p := fastParams()
	d, err := p.Derive()
	require.NoError(t, err)
	s, err := Build(p, d)
	require.NoError(t, err)

	data, err := s.Marshal()
	require.NoError(t, err)

	var back Scenario
	require.NoError(t, back.Unmarshal(data))
	assert.Equal(t, s.Title, back.Title)
	assert.Equal(t, s.Resolution, back.Resolution)
	assert.Equal(t, s.Layout.DefaultIndex, back.Layout.DefaultIndex)
	assert.Equal(t, len(s.Source.Amplitude), len(back.Source.Amplitude))
}

func TestRunnerWritesScenarioFile(t *testing.T) {
	p := fastParams()
	d, err := p.Derive()
	require.NoError(t, err)
	s, err := Build(p, d)
	require.NoError(t, err)

	workdir := t.TempDir()
	r := &Runner{SolverPath: "true", Workdir: workdir}
	_, err = r.Run(context.Background(), s)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(workdir, ScenarioFileName))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunnerRequiresSolver(t *testing.T) {
	r := &Runner{Workdir: t.TempDir()}
	_, err := r.Run(context.Background(), &Scenario{})
	assert.Error(t, err)
}
