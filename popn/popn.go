/*Package popn manages planetesimal populations produced by streaming
instability simulations.

A Population is read from a text table of per-clump ice and silicate particle
counts and converted to physical masses, densities, and ice fractions in CGS.
The four property slices are index-aligned and stay the same length through
every operation.
*/
package popn

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/planetdisk/units"
)

// Column indices of the particle count table.
const (
	nIceCol = 0
	nSilCol = 1
)

// SimInfo contains the parameters of a streaming instability run that are
// needed to convert particle counts from code units to physical units.
type SimInfo struct {
	Npar         float64 // Number of particles in the simulation.
	Eps          float64 // Dust to gas ratio.
	TotalDensity float64 // Summed gas density in code units.
	Dx, Dy, Dz   float64 // Grid spacing in code units.
}

// DefaultSimInfo describes the run that produced the particle tables shipped
// with planetdisk.
var DefaultSimInfo = &SimInfo{
	Npar:         1.536e7,
	Eps:          0.03,
	TotalDensity: 16749076.820152447,
	Dx:           0.00078125,
	Dy:           0.00078125,
	Dz:           0.00078125,
}

// ParticleMass returns the physical mass, g, of a single simulation particle.
// unitMass is the gas mass contained in one cubic scale height, g.
func (si *SimInfo) ParticleMass(unitMass float64) float64 {
	mGasCode := si.TotalDensity * si.Dx * si.Dy * si.Dz
	return mGasCode * si.Eps / si.Npar * unitMass
}

// Params configures Read.
type Params struct {
	// Required.
	RhoIce, RhoSil float64 // Material densities of the pebble species, g/cm^3.
	UnitMass       float64 // Gas mass in one cubic scale height, g.

	// Optional.
	InitialPorosity float64  // Defaults to units.DefaultPorosity.
	Sim             *SimInfo // Defaults to DefaultSimInfo.
}

// Population is a planetesimal population. The exported slices are
// index-aligned: element i of each describes the same planetesimal.
type Population struct {
	IceFraction []float64 // Ice mass fraction, in [0, 1].
	Mass        []float64 // g
	Density     []float64 // Bulk density, g/cm^3.
	Porosity    []float64

	rhoIce, rhoSil, porosity float64
}

// Read loads a planetesimal population from the particle count table in the
// given file. A row whose ice and silicate counts are both zero is a data
// error, not a planetesimal, and fails the load.
func Read(file string, p Params) (*Population, error) {
	if p.InitialPorosity == 0 {
		p.InitialPorosity = units.DefaultPorosity
	}
	if p.Sim == nil {
		p.Sim = DefaultSimInfo
	}

	cols, err := table.ReadTable(file, []int{nIceCol, nSilCol}, nil)
	if err != nil {
		return nil, err
	}
	nIce, nSil := cols[0], cols[1]

	mpar := p.Sim.ParticleMass(p.UnitMass)
	n := len(nIce)
	pop := &Population{
		IceFraction: make([]float64, n),
		Mass:        make([]float64, n),
		Density:     make([]float64, n),
		Porosity:    make([]float64, n),
		rhoIce:      p.RhoIce,
		rhoSil:      p.RhoSil,
		porosity:    p.InitialPorosity,
	}

	for i := range nIce {
		if nIce[i]+nSil[i] == 0 {
			return nil, fmt.Errorf(
				"Row %d of '%s' contains no ice or silicate particles.",
				i, file,
			)
		}

		ice := nIce[i] / (nIce[i] + nSil[i])
		pop.IceFraction[i] = ice
		pop.Mass[i] = (nIce[i] + nSil[i]) * mpar
		pop.Porosity[i] = p.InitialPorosity
		pop.Density[i] = p.InitialPorosity *
			(p.RhoIce*ice + p.RhoSil*(1-ice))
	}

	return pop, nil
}

// Len returns the number of planetesimals in the population.
func (pop *Population) Len() int { return len(pop.Mass) }

// AddMasses appends nBins*mPerBin synthetic planetesimals to the population.
// The synthetic masses are mPerBin repetitions of nBins linearly spaced
// values spanning [minMass, maxMass]. Each planetesimal is assigned a density
// drawn uniformly from [minDens, maxDens], and its ice fraction is the one
// that reproduces that density at the population's initial porosity.
func (pop *Population) AddMasses(
	nBins, mPerBin int, minDens, maxDens, minMass, maxMass float64,
) error {
	if nBins <= 0 {
		return fmt.Errorf("nBins must be positive, but is %d.", nBins)
	} else if mPerBin <= 0 {
		return fmt.Errorf("mPerBin must be positive, but is %d.", mPerBin)
	} else if minMass > maxMass {
		return fmt.Errorf(
			"minMass, %g, is larger than maxMass, %g.", minMass, maxMass,
		)
	} else if minDens > maxDens {
		return fmt.Errorf(
			"minDens, %g, is larger than maxDens, %g.", minDens, maxDens,
		)
	}

	for rep := 0; rep < mPerBin; rep++ {
		for j := 0; j < nBins; j++ {
			m := minMass
			if nBins > 1 {
				m += (maxMass - minMass) * float64(j) / float64(nBins-1)
			}
			rho := minDens + rand.Float64()*(maxDens-minDens)
			ice := (rho - pop.rhoSil*pop.porosity) /
				((pop.rhoIce - pop.rhoSil) * pop.porosity)

			pop.Mass = append(pop.Mass, m)
			pop.Density = append(pop.Density, rho)
			pop.IceFraction = append(pop.IceFraction, ice)
			pop.Porosity = append(pop.Porosity, pop.porosity)
		}
	}

	return nil
}

// Radius returns the sphere-equivalent radius, cm, of planetesimal i.
func (pop *Population) Radius(i int) float64 {
	return math.Pow(3*pop.Mass[i]/(4*math.Pi*pop.Density[i]), 1.0/3)
}

// Radii returns the sphere-equivalent radii, cm, of every planetesimal.
func (pop *Population) Radii() []float64 {
	rs := make([]float64, pop.Len())
	for i := range rs {
		rs[i] = pop.Radius(i)
	}
	return rs
}
