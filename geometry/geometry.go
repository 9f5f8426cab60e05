// Package geometry describes the computational cell and the dielectric
// interface placement handed to the solver.
//
// Solver coordinates: x grows to the right, y grows downward, the cell
// center is the point of impact of the beam.
package geometry

import (
	"math"

	"beamscatter/entity/interfacekind"
)

type Vector3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Cell is the extent of the computational domain, PML included.
type Cell struct {
	SX float64 `yaml:"sx"`
	SY float64 `yaml:"sy"`
}

// Block is an oriented slab of a given refractive index. E1, E2 and E3
// span its local frame.
type Block struct {
	Size   Vector3 `yaml:"size"`
	Center Vector3 `yaml:"center"`
	E1     Vector3 `yaml:"e1"`
	E2     Vector3 `yaml:"e2"`
	E3     Vector3 `yaml:"e3"`
	Index  float64 `yaml:"index"`
}

// Cylinder is an infinite cylinder of a given refractive index.
type Cylinder struct {
	Center Vector3 `yaml:"center"`
	Radius float64 `yaml:"radius"`
	Index  float64 `yaml:"index"`
}

// Layout is the material description of the cell: the ambient index plus
// the shapes overriding it.
type Layout struct {
	DefaultIndex float64    `yaml:"defaultIndex"`
	Blocks       []Block    `yaml:"blocks,omitempty"`
	Cylinders    []Cylinder `yaml:"cylinders,omitempty"`
}

// Alpha is the angle of the inclined plane with the y axis for incidence
// angle chi, both in radians.
func Alpha(chiRad float64) float64 {
	return math.Pi/2 - chiRad
}

// DeltaX is the inclined-plane offset to the cell center that keeps the
// point of impact centrally placed for any inclination.
func DeltaX(alpha, sx float64) float64 {
	sin, cos := math.Sin(alpha), math.Cos(alpha)
	return (sx / 2) * ((math.Sqrt2 - cos) - sin) / sin
}

// ForInterface places the dielectric interface of the given kind so that
// the point of impact sits at the cell center. chiRad is the incidence
// angle, rc the radius of curvature for the curved kinds.
func ForInterface(kind interfacekind.Kind, n1, n2, chiRad, rc float64, cell Cell) Layout {
	sin, cos := math.Sin(chiRad), math.Cos(chiRad)
	switch kind {
	case interfacekind.Concave:
		return Layout{
			DefaultIndex: n2,
			Cylinders: []Cylinder{{
				Center: Vector3{X: -rc * cos, Y: +rc * sin},
				Radius: rc,
				Index:  n1,
			}},
		}
	case interfacekind.Convex:
		return Layout{
			DefaultIndex: n1,
			Cylinders: []Cylinder{{
				Center: Vector3{X: +rc * cos, Y: -rc * sin},
				Radius: rc,
				Index:  n2,
			}},
		}
	default: // planar: rotated half-space at the lower right edge
		alpha := Alpha(chiRad)
		cot := 1 / math.Tan(alpha)
		return Layout{
			DefaultIndex: n1,
			Blocks: []Block{{
				Size:   Vector3{X: math.Inf(1), Y: cell.SX * math.Sqrt2, Z: math.Inf(1)},
				Center: Vector3{X: cell.SX/2 + DeltaX(alpha, cell.SX), Y: -cell.SY / 2},
				E1:     Vector3{X: cot, Y: 1},
				E2:     Vector3{X: -1, Y: cot},
				E3:     Vector3{Z: 1},
				Index:  n2,
			}},
		}
	}
}
