// Package volume loads the volumetric intensity grids written by the
// solver: three big-endian uint32 dimensions followed by nx*ny*nz
// big-endian float64 samples, z varying fastest.
package volume

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Grid is a dense volumetric scalar field.
type Grid struct {
	NX, NY, NZ int
	Data       []float64
}

// At returns the sample at (ix, iy, iz).
func (g *Grid) At(ix, iy, iz int) float64 {
	return g.Data[(ix*g.NY+iy)*g.NZ+iz]
}

// Load reads a grid from a file.
func Load(filename string) (*Grid, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open volume file: %w", err)
	}
	defer file.Close()
	return Read(bufio.NewReader(file))
}

// maxSamples caps the sample count a header may declare, so a corrupt
// header fails as an error instead of an absurd allocation.
const maxSamples = 1 << 30

// Read reads a grid from r.
func Read(r io.Reader) (*Grid, error) {
	var buf [8]byte
	dims := [3]int{}
	n := 1
	for i := range dims {
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return nil, fmt.Errorf("failed to read volume header: %w", err)
		}
		dims[i] = int(binary.BigEndian.Uint32(buf[:4]))
		if dims[i] == 0 {
			return nil, fmt.Errorf("volume has empty dimension %d", i)
		}
		if dims[i] > maxSamples/n {
			return nil, fmt.Errorf("volume header declares more than %d samples", maxSamples)
		}
		n *= dims[i]
	}

	g := &Grid{
		NX:   dims[0],
		NY:   dims[1],
		NZ:   dims[2],
		Data: make([]float64, n),
	}
	for i := range g.Data {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("volume truncated at sample %d of %d: %w", i, len(g.Data), err)
		}
		g.Data[i] = math.Float64frombits(binary.BigEndian.Uint64(buf[:]))
	}
	return g, nil
}

// Write writes g in the on-disk format.
func (g *Grid) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var buf [8]byte
	for _, d := range [3]int{g.NX, g.NY, g.NZ} {
		binary.BigEndian.PutUint32(buf[:4], uint32(d))
		if _, err := bw.Write(buf[:4]); err != nil {
			return err
		}
	}
	for _, v := range g.Data {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
		if _, err := bw.Write(buf[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Max returns the largest sample.
func (g *Grid) Max() float64 {
	max := math.Inf(-1)
	for _, v := range g.Data {
		if v > max {
			max = v
		}
	}
	return max
}

// Min returns the smallest sample.
func (g *Grid) Min() float64 {
	min := math.Inf(1)
	for _, v := range g.Data {
		if v < min {
			min = v
		}
	}
	return min
}

// Normalize scales the grid so the largest sample becomes 1. A grid with
// a non-positive maximum is left untouched.
func (g *Grid) Normalize() {
	max := g.Max()
	if max <= 0 {
		return
	}
	for i := range g.Data {
		g.Data[i] /= max
	}
}

// Crop strips cutoff cells from every border, removing the absorbing
// boundary layer and the source line from the rendered region.
func (g *Grid) Crop(cutoff int) (*Grid, error) {
	if cutoff < 0 {
		return nil, fmt.Errorf("negative cutoff %d", cutoff)
	}
	nx, ny, nz := g.NX-2*cutoff, g.NY-2*cutoff, g.NZ-2*cutoff
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("cutoff %d leaves no data in a %dx%dx%d volume", cutoff, g.NX, g.NY, g.NZ)
	}

	c := &Grid{NX: nx, NY: ny, NZ: nz, Data: make([]float64, nx*ny*nz)}
	i := 0
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			for iz := 0; iz < nz; iz++ {
				c.Data[i] = g.At(ix+cutoff, iy+cutoff, iz+cutoff)
				i++
			}
		}
	}
	return c, nil
}

// SliceZ returns the plane at index iz as rows over y and columns over x.
func (g *Grid) SliceZ(iz int) [][]float64 {
	s := make([][]float64, g.NY)
	for iy := range s {
		row := make([]float64, g.NX)
		for ix := range row {
			row[ix] = g.At(ix, iy, iz)
		}
		s[iy] = row
	}
	return s
}
