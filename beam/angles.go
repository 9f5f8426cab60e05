package beam

import (
	"errors"
	"fmt"
	"math"
)

// ErrCriticalAngleUndefined is returned when total internal reflection
// cannot occur because the incident medium is not the denser one.
var ErrCriticalAngleUndefined = errors.New("beam: critical angle undefined for n1 <= n2")

// Critical returns the critical angle in degrees for light passing from
// refractive index n1 into n2. It requires n1 > n2.
func Critical(n1, n2 float64) (float64, error) {
	if n1 <= n2 {
		return 0, fmt.Errorf("%w: n1=%g, n2=%g", ErrCriticalAngleUndefined, n1, n2)
	}
	return degrees(math.Asin(n2 / n1)), nil
}

// Brewster returns the Brewster angle in degrees for refractive indices
// n1 and n2.
func Brewster(n1, n2 float64) float64 {
	return degrees(math.Atan(n2 / n1))
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
