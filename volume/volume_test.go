package volume

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrid(nx, ny, nz int) *Grid {
	g := &Grid{NX: nx, NY: ny, NZ: nz, Data: make([]float64, nx*ny*nz)}
	for i := range g.Data {
		g.Data[i] = float64(i)
	}
	return g
}

func TestWriteLoadRoundTrip(t *testing.T) {
	g := testGrid(3, 4, 5)

	path := filepath.Join(t.TempDir(), "e2_s.vol")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, g.Write(f))
	require.NoError(t, f.Close())

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, g.NX, back.NX)
	assert.Equal(t, g.NY, back.NY)
	assert.Equal(t, g.NZ, back.NZ)
	assert.Equal(t, g.Data, back.Data)
	assert.Equal(t, g.At(2, 3, 4), back.At(2, 3, 4))
}

func TestReadTruncated(t *testing.T) {
	g := testGrid(3, 3, 3)
	var buf bytes.Buffer
	require.NoError(t, g.Write(&buf))

	_, err := Read(bytes.NewReader(buf.Bytes()[:buf.Len()-9]))
	assert.Error(t, err)

	_, err = Read(bytes.NewReader(buf.Bytes()[:6]))
	assert.Error(t, err)
}

func TestReadOversizedHeader(t *testing.T) {
	// A corrupt header must fail cleanly, not allocate or overflow.
	for _, dims := range [][3]uint32{
		{1 << 31, 1 << 31, 2},
		{1 << 30, 2, 1},
		{4294967295, 4294967295, 4294967295},
	} {
		var buf bytes.Buffer
		var b [4]byte
		for _, d := range dims {
			binary.BigEndian.PutUint32(b[:], d)
			buf.Write(b[:])
		}
		_, err := Read(&buf)
		assert.Error(t, err, "dims=%v", dims)
	}
}

func TestReadEmptyDimension(t *testing.T) {
	g := &Grid{NX: 0, NY: 2, NZ: 2}
	var buf bytes.Buffer
	require.NoError(t, g.Write(&buf))
	_, err := Read(&buf)
	assert.Error(t, err)
}

func TestMinMax(t *testing.T) {
	g := testGrid(2, 2, 2)
	assert.Equal(t, 0.0, g.Min())
	assert.Equal(t, 7.0, g.Max())
}

func TestNormalize(t *testing.T) {
	g := testGrid(2, 2, 2)
	g.Normalize()
	assert.Equal(t, 1.0, g.Max())
	assert.Equal(t, 0.0, g.Data[0])
	assert.InDelta(t, 6.0/7.0, g.Data[6], 1e-15)

	// all-zero grid is left untouched
	z := &Grid{NX: 1, NY: 1, NZ: 2, Data: []float64{0, 0}}
	z.Normalize()
	assert.Equal(t, []float64{0, 0}, z.Data)
}

func TestCrop(t *testing.T) {
	g := testGrid(4, 4, 4)
	c, err := g.Crop(1)
	require.NoError(t, err)
	assert.Equal(t, 2, c.NX)
	assert.Equal(t, 2, c.NY)
	assert.Equal(t, 2, c.NZ)
	assert.Equal(t, g.At(1, 1, 1), c.At(0, 0, 0))
	assert.Equal(t, g.At(2, 2, 2), c.At(1, 1, 1))

	_, err = g.Crop(2)
	assert.Error(t, err)
	_, err = g.Crop(-1)
	assert.Error(t, err)
}

func TestSliceZ(t *testing.T) {
	g := testGrid(2, 3, 4)
	s := g.SliceZ(1)
	require.Len(t, s, 3)    // rows over y
	require.Len(t, s[0], 2) // columns over x
	assert.Equal(t, g.At(0, 0, 1), s[0][0])
	assert.Equal(t, g.At(1, 2, 1), s[2][1])
}
