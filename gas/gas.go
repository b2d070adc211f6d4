/*Package gas computes bulk properties of a protoplanetary gas disk around a
solar-mass star.

All functions take and return CGS quantities. None of them validate their
inputs: a non-positive radius or temperature gives NaN, exactly like the
formulas they implement. Validation belongs at the config boundary.
*/
package gas

import (
	"math"

	"github.com/phil-mansfield/planetdisk/units"
)

const (
	// DefaultMDisk is the fiducial disk mass, g.
	DefaultMDisk = 0.04 * units.MSun
	// DefaultRC is the fiducial characteristic disk radius, cm.
	DefaultRC = 50 * units.AU
)

// SoundSpeed returns the adiabatic sound speed, cm/s, of disk gas at
// temperature T, K.
func SoundSpeed(T float64) float64 {
	return math.Sqrt(T * units.CP * (units.Gamma - 1))
}

// KepFrequency returns the Keplerian orbital frequency, 1/s, at radius R, cm.
func KepFrequency(R float64) float64 {
	return math.Sqrt(units.G * units.MSun / (R * R * R))
}

// ScaleHeight returns the vertical scale height of the disk, cm, at
// temperature T, K, and radius R, cm.
func ScaleHeight(T, R float64) float64 {
	return SoundSpeed(T) / KepFrequency(R)
}

// ColumnDensity returns the gas column density, g/cm^2, at radius r, cm, for
// a disk of total mass mDisk, g, and characteristic radius rC, cm. The
// profile falls off as 1/r.
func ColumnDensity(r, mDisk, rC float64) float64 {
	return mDisk / (2 * math.Pi * rC * rC) * (rC / r)
}

// GasTemp returns the gas temperature, K, at radius r, cm.
func GasTemp(r float64) float64 {
	return 280 / math.Sqrt(r/units.AU)
}
