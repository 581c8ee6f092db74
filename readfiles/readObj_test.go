package readfiles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geometrycollective/geomproc/mesh"
	"github.com/geometrycollective/geomproc/types"
)

func TestReadOBJ(t *testing.T) {
	// Split quad with comments, blank lines and slashed face fields
	{
		obj := `
# open quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1

f 1/1/1 2/2/1 3/3/1
f 1//1 3//1 4//1
`
		soup, err := ReadOBJ(strings.NewReader(obj))
		assert.NoError(t, err)
		assert.Equal(t, 4, len(soup.Positions))
		assert.Equal(t, types.Vec3{X: 1, Y: 1, Z: 0}, soup.Positions[2])
		assert.Equal(t, []int{0, 1, 2, 0, 2, 3}, soup.TriangleIndices)

		m := mesh.NewMesh()
		assert.NoError(t, m.Build(soup))
		assert.Equal(t, 1, m.EulerCharacteristic())
	}
	// Negative (relative) indices
	{
		obj := `v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
v 2 0 0
`
		soup, err := ReadOBJ(strings.NewReader(obj))
		assert.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, soup.TriangleIndices)
	}
	// Non-triangular faces are rejected before the builder ever runs
	{
		obj := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
		_, err := ReadOBJ(strings.NewReader(obj))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only triangles")
	}
	// Out of range index
	{
		obj := `v 0 0 0
f 1 2 3
`
		_, err := ReadOBJ(strings.NewReader(obj))
		assert.Error(t, err)
	}
}

func TestWriteOBJ(t *testing.T) {
	{
		soup := &mesh.PolygonSoup{
			Positions: []types.Vec3{
				{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
			},
			TriangleIndices: []int{0, 1, 2},
		}
		var buf bytes.Buffer
		assert.NoError(t, WriteOBJ(&buf, soup))
		assert.Equal(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n", buf.String())

		// Round trip
		back, err := ReadOBJ(&buf)
		assert.NoError(t, err)
		assert.Equal(t, soup.Positions, back.Positions)
		assert.Equal(t, soup.TriangleIndices, back.TriangleIndices)
	}
}
