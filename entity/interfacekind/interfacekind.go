package interfacekind

import "fmt"

// Kind is the shape of the dielectric interface hit by the beam.
type Kind uint8

const (
	Planar Kind = iota
	Concave
	Convex
)

func UnmarshalText(text string) (Kind, error) {
	switch text {
	case "planar":
		return Planar, nil
	case "concave":
		return Concave, nil
	case "convex":
		return Convex, nil
	default:
		return 0, fmt.Errorf("invalid interface: %q", text)
	}
}

func (k Kind) String() string {
	switch k {
	case Planar:
		return "planar"
	case Concave:
		return "concave"
	case Convex:
		return "convex"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
