package kbo

import (
	"math"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testCatalog = `# density diameter plus_diameter minus_diameter
1.854 2376 3.2 3.2
2.43 2326 12 12
0.82 1110 50 50
`

func writeCatalog(t *testing.T) string {
	fname := path.Join(t.TempDir(), "kbo-data.txt")
	if err := os.WriteFile(fname, []byte(testCatalog), 0644); err != nil {
		t.Fatal(err.Error())
	}
	return fname
}

func TestReadCatalog(t *testing.T) {
	cat, err := ReadCatalog(writeCatalog(t))
	if err != nil {
		t.Fatal(err.Error())
	}

	assert.Equal(t, 3, len(cat.Density))
	assert.Equal(t, 3, len(cat.Radius))
	assert.Equal(t, 3, len(cat.Mass))

	// 2376 km diameter -> 1.188e8 cm radius.
	assert.InEpsilon(t, 1.188e8, cat.Radius[0], 1e-10)
	assert.InEpsilon(t, 2376.0/2*1e5-3.2/2*1e5, cat.MinRadius[0], 1e-10)
	assert.InEpsilon(t, 2376.0/2*1e5+3.2/2*1e5, cat.MaxRadius[0], 1e-10)

	for i := range cat.Mass {
		r := cat.Radius[i]
		m := cat.Density[i] * 4 * math.Pi / 3 * r * r * r
		assert.InEpsilon(t, m, cat.Mass[i], 1e-10, "object %d", i)
	}
}

func TestCatalogDensityBounds(t *testing.T) {
	cat, err := ReadCatalog(writeCatalog(t))
	if err != nil {
		t.Fatal(err.Error())
	}

	for i := range cat.Density {
		assert.True(
			t, cat.DensityMinus[i] > 0, "object %d minus extent", i,
		)
		assert.True(
			t, cat.DensityPlus[i] > 0, "object %d plus extent", i,
		)

		// A larger radius at fixed mass gives the lower density bound.
		rMax := cat.MaxRadius[i]
		lo := cat.Mass[i] / (4 * math.Pi / 3 * rMax * rMax * rMax)
		assert.InEpsilon(
			t, cat.Density[i]-lo, cat.DensityMinus[i], 1e-10,
			"object %d", i,
		)

		rMin := cat.MinRadius[i]
		hi := cat.Mass[i] / (4 * math.Pi / 3 * rMin * rMin * rMin)
		assert.InEpsilon(
			t, hi-cat.Density[i], cat.DensityPlus[i], 1e-10,
			"object %d", i,
		)
	}
}
