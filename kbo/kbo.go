/*Package kbo reads catalogs of observed Kuiper Belt objects.

Catalogs are text tables with one row per object giving its measured bulk
density along with its diameter and the diameter's asymmetric uncertainties.
ReadCatalog derives radii, masses, and propagated density uncertainties in
CGS. Catalogs are read-only once loaded.
*/
package kbo

import (
	"math"

	"github.com/phil-mansfield/table"
)

// Column indices of the KBO table.
const (
	densityCol  = 0
	diameterCol = 1
	plusCol     = 2
	minusCol    = 3
)

const kmToCm = 1e5

// Catalog holds the observed and derived properties of a set of KBOs. The
// slices are index-aligned. MinRadius and MaxRadius are absolute bounds from
// the diameter uncertainties. DensityMinus and DensityPlus are the downward
// and upward density error extents obtained by holding each object's mass
// fixed while its radius moves through those bounds.
type Catalog struct {
	Density []float64 // Measured bulk density, g/cm^3.
	Radius  []float64 // cm
	Mass    []float64 // g

	MinRadius, MaxRadius      []float64 // cm
	DensityMinus, DensityPlus []float64 // g/cm^3
}

// ReadCatalog reads the KBO catalog in the given file.
func ReadCatalog(file string) (*Catalog, error) {
	colIdxs := []int{densityCol, diameterCol, plusCol, minusCol}
	cols, err := table.ReadTable(file, colIdxs, nil)
	if err != nil {
		return nil, err
	}
	rhos, ds, plus, minus := cols[0], cols[1], cols[2], cols[3]

	n := len(rhos)
	c := &Catalog{
		Density:      rhos,
		Radius:       make([]float64, n),
		Mass:         make([]float64, n),
		MinRadius:    make([]float64, n),
		MaxRadius:    make([]float64, n),
		DensityMinus: make([]float64, n),
		DensityPlus:  make([]float64, n),
	}

	sphereVol := func(r float64) float64 { return 4 * math.Pi / 3 * r * r * r }

	for i := range rhos {
		r := ds[i] / 2 * kmToCm
		c.Radius[i] = r
		c.Mass[i] = rhos[i] * sphereVol(r)
		c.MinRadius[i] = (ds[i] - minus[i]) / 2 * kmToCm
		c.MaxRadius[i] = (ds[i] + plus[i]) / 2 * kmToCm
		c.DensityMinus[i] = rhos[i] - c.Mass[i]/sphereVol(c.MaxRadius[i])
		c.DensityPlus[i] = c.Mass[i]/sphereVol(c.MinRadius[i]) - rhos[i]
	}

	return c, nil
}
