// Package quadrature integrates real- and complex-valued functions over a
// finite interval with Gauss-Legendre rules of increasing order.
package quadrature

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	DefaultTolerance = 1e-9
	DefaultMaxNodes  = 1 << 14

	initialNodes = 16
)

// Options control the convergence criterion of a single integral.
type Options struct {
	// Tolerance is the relative agreement required between two successive
	// refinements. Zero selects DefaultTolerance.
	Tolerance float64
	// MaxNodes is the node budget for the highest-order rule tried.
	// Zero selects DefaultMaxNodes.
	MaxNodes int
}

func (o Options) withDefaults() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxNodes <= 0 {
		o.MaxNodes = DefaultMaxNodes
	}
	return o
}

// NotConvergedError reports an integral that exhausted its node budget
// before two successive estimates agreed within tolerance.
type NotConvergedError struct {
	Part      string  // "real" or "imaginary" for complex integrands, empty otherwise
	Tolerance float64 // requested relative tolerance
	Achieved  float64 // difference between the last two refinements
	Nodes     int     // nodes used by the final refinement
}

func (e *NotConvergedError) Error() string {
	if e.Part == "" {
		return fmt.Sprintf("quadrature: no convergence after %d nodes: achieved %.3e, want %.3e",
			e.Nodes, e.Achieved, e.Tolerance)
	}
	return fmt.Sprintf("quadrature: %s part did not converge after %d nodes: achieved %.3e, want %.3e",
		e.Part, e.Nodes, e.Achieved, e.Tolerance)
}

// Real integrates f over [a, b], doubling the Gauss-Legendre node count
// until two successive estimates agree within the relative tolerance.
func Real(f func(float64) float64, a, b float64, opt Options) (float64, error) {
	opt = opt.withDefaults()
	if a == b {
		return 0, nil
	}
	var (
		prev = quad.Fixed(f, a, b, initialNodes, nil, 0)
		diff = math.Inf(1)
		n    = initialNodes
	)
	for n <= opt.MaxNodes/2 {
		n *= 2
		cur := quad.Fixed(f, a, b, n, nil, 0)
		diff = math.Abs(cur - prev)
		prev = cur
		if diff <= opt.Tolerance*(1+math.Abs(cur)) {
			return cur, nil
		}
	}
	return prev, &NotConvergedError{Tolerance: opt.Tolerance, Achieved: diff, Nodes: n}
}

// Complex integrates the real and imaginary parts of f separately over
// [a, b] and combines them. The returned error identifies the failing part.
func Complex(f func(float64) complex128, a, b float64, opt Options) (complex128, error) {
	re, err := Real(func(x float64) float64 { return real(f(x)) }, a, b, opt)
	if err != nil {
		return 0, tagPart(err, "real")
	}
	im, err := Real(func(x float64) float64 { return imag(f(x)) }, a, b, opt)
	if err != nil {
		return 0, tagPart(err, "imaginary")
	}
	return complex(re, im), nil
}

func tagPart(err error, part string) error {
	var nc *NotConvergedError
	if errors.As(err, &nc) {
		nc.Part = part
	}
	return err
}
