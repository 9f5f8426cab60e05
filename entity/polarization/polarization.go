package polarization

import "fmt"

// Polarization selects the driven field component of the source.
type Polarization uint8

const (
	S Polarization = iota
	P
)

func UnmarshalText(text string) (Polarization, error) {
	switch text {
	case "s":
		return S, nil
	case "p":
		return P, nil
	default:
		return 0, fmt.Errorf("invalid polarization: %q", text)
	}
}

func (p Polarization) String() string {
	if p == P {
		return "p"
	}
	return "s"
}

// Component is the electric field component the source drives: Ez for
// s-polarization, Ey for p-polarization.
func (p Polarization) Component() string {
	if p == P {
		return "Ey"
	}
	return "Ez"
}
