// Package beam evaluates the field of a Gaussian beam away from its waist
// by plane-wave (angular spectrum) decomposition.
package beam

import (
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	log "github.com/sirupsen/logrus"

	"beamscatter/quadrature"
)

// Params characterizes the beam at its waist.
type Params struct {
	WaistWidth float64 // Gaussian waist parameter, > 0
	Wavenumber float64 // wavenumber in the medium at the waist, > 0
}

// Point is an evaluation point relative to the waist: X along the
// propagation axis, Y transverse to it.
type Point struct {
	X float64
	Y float64
}

// Spectrum is the Gaussian angular spectrum amplitude at transverse
// spatial frequency kt.
func (p Params) Spectrum(kt float64) float64 {
	a := kt * p.WaistWidth / 2
	return math.Exp(-a * a)
}

// phase of the plane-wave component kt propagated to (x, y). The square
// root turns imaginary for kt beyond the wavenumber (evanescent waves).
func (p Params) phase(kt, x, y float64) complex128 {
	kx := cmplx.Sqrt(complex(p.Wavenumber*p.Wavenumber-kt*kt, 0))
	return complex(x, 0)*kx + complex(kt*y, 0)
}

var slowNotice sync.Once

// Evaluate reconstructs the complex field amplitude at pt by summing the
// beam's plane-wave components with their propagation phases. It is used
// when the field source does not coincide with the beam waist.
func Evaluate(params Params, pt Point) (complex128, error) {
	return EvaluateWithOptions(params, pt, quadrature.Options{})
}

// EvaluateWithOptions is Evaluate with an explicit quadrature budget.
func EvaluateWithOptions(params Params, pt Point, opt quadrature.Options) (complex128, error) {
	slowNotice.Do(func() {
		log.Info("calculating initial field configuration, this will take some time")
	})

	k := params.Wavenumber
	integrand := func(kt float64) complex128 {
		return complex(params.Spectrum(kt), 0) * cmplx.Exp(1i*params.phase(kt, pt.X, pt.Y))
	}
	result, err := quadrature.Complex(integrand, -k, k, opt)
	if err != nil {
		return 0, fmt.Errorf("beam: evaluate at (%g, %g): %w", pt.X, pt.Y, err)
	}
	return result, nil
}
