// Package parameters holds the user-facing physical parameters of a
// scattering run and the engine-facing quantities derived from them.
package parameters

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"beamscatter/entity/interfacekind"
	"beamscatter/entity/polarization"
)

// Parameters mirrors the command-line surface of the solver driver.
// Lengths are expressed in solver units; the k-prefixed quantities are
// normalized by the reference-medium wavenumber.
type Parameters struct {
	Interface    string  `yaml:"interface"`
	Polarization string  `yaml:"polarization"`
	RefMedium    int     `yaml:"refMedium"` // 0 free space, 1 incident medium, 2 refracted medium
	N1           float64 `yaml:"n1"`
	N2           float64 `yaml:"n2"`
	KW0          float64 `yaml:"kw0"`    // normalized beam width
	KRW          float64 `yaml:"krw"`    // normalized waist distance to interface
	KRC          float64 `yaml:"krc"`    // normalized radius of curvature
	ChiDeg       float64 `yaml:"chiDeg"` // incidence angle in degrees

	CellX               float64 `yaml:"cellX"`
	CellY               float64 `yaml:"cellY"`
	PMLThickness        float64 `yaml:"pmlThickness"`
	Frequency           float64 `yaml:"frequency"`
	Runtime             float64 `yaml:"runtime"`
	PixelsPerWavelength float64 `yaml:"pixelsPerWavelength"`
	SourceShift         float64 `yaml:"sourceShift"` // source x position relative to the cell center
}

// Default is the parameter set of the reference planar 45 degree run.
func Default() *Parameters {
	return &Parameters{
		Interface:           "planar",
		Polarization:        "s",
		RefMedium:           0,
		N1:                  1.54,
		N2:                  1.00,
		KW0:                 8,
		KRW:                 60,
		KRC:                 150,
		ChiDeg:              45,
		CellX:               5,
		CellY:               5,
		PMLThickness:        0.25,
		Frequency:           12,
		Runtime:             10,
		PixelsPerWavelength: 10,
		SourceShift:         -2.15,
	}
}

// Parse reads a YAML parameter file over p.
func (p *Parameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, p)
}

// Derived are the engine-facing quantities computed from Parameters.
type Derived struct {
	Kind       interfacekind.Kind
	Pol        polarization.Polarization
	KVac       float64 // vacuum wavenumber 2*pi*frequency
	K1         float64 // wavenumber in the incident medium
	NRef       float64 // reference-medium refractive index
	W0         float64 // beam waist width
	RW         float64 // waist distance to interface
	RC         float64 // radius of curvature
	Shift      float64 // source position relative to the beam waist
	ChiRad     float64 // incidence angle in radians
	Resolution float64 // pixels per unit length in the denser medium
	Courant    float64 // stability factor, mandatory when an index is below 1
}

// Derive validates p and computes the engine-facing quantities.
func (p *Parameters) Derive() (*Derived, error) {
	kind, err := interfacekind.UnmarshalText(p.Interface)
	if err != nil {
		return nil, err
	}
	pol, err := polarization.UnmarshalText(p.Polarization)
	if err != nil {
		return nil, err
	}
	if p.N1 <= 0 || p.N2 <= 0 {
		return nil, fmt.Errorf("refractive indices must be positive: n1=%g, n2=%g", p.N1, p.N2)
	}
	if p.KW0 <= 0 {
		return nil, fmt.Errorf("normalized beam width must be positive: kw0=%g", p.KW0)
	}
	if p.Frequency <= 0 {
		return nil, fmt.Errorf("frequency must be positive: %g", p.Frequency)
	}
	if p.PixelsPerWavelength <= 0 {
		return nil, fmt.Errorf("pixels per wavelength must be positive: %g", p.PixelsPerWavelength)
	}

	kVac := 2 * math.Pi * p.Frequency
	var nRef float64
	switch p.RefMedium {
	case 0:
		nRef = 1
	case 1:
		nRef = p.N1
	case 2:
		nRef = p.N2
	default:
		return nil, fmt.Errorf("invalid reference medium %d: want 0 (free space), 1 (incident) or 2 (refracted)", p.RefMedium)
	}

	rw := p.KRW / (nRef * kVac)
	d := &Derived{
		Kind:       kind,
		Pol:        pol,
		KVac:       kVac,
		K1:         p.N1 * kVac,
		NRef:       nRef,
		W0:         p.KW0 / (nRef * kVac),
		RW:         rw,
		RC:         p.KRC / (nRef * kVac),
		Shift:      p.SourceShift + rw,
		ChiRad:     p.ChiDeg * math.Pi / 180,
		Resolution: p.PixelsPerWavelength * math.Max(p.N1, p.N2) * p.Frequency,
		Courant:    math.Min(p.N1, p.N2) / 2,
	}
	return d, nil
}
