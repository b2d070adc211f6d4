package gas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/planetdisk/units"
)

func TestScaleHeightDefinition(t *testing.T) {
	Ts := []float64{10, 28, 100, 280}
	Rs := []float64{
		units.AU, 10 * units.AU, 50 * units.AU, 100 * units.AU,
	}

	for _, T := range Ts {
		for _, R := range Rs {
			assert.Equal(
				t, SoundSpeed(T)/KepFrequency(R), ScaleHeight(T, R),
				"T = %g, R = %g", T, R,
			)
		}
	}
}

func TestColumnDensityProfile(t *testing.T) {
	rs := []float64{units.AU, 10 * units.AU, 80 * units.AU}

	for _, r := range rs {
		sigma := ColumnDensity(r, DefaultMDisk, DefaultRC)
		sigmaHalf := ColumnDensity(r/2, DefaultMDisk, DefaultRC)
		assert.InEpsilon(t, 2*sigma, sigmaHalf, 1e-10, "r = %g", r)
	}

	// At r = rC the profile reduces to mDisk / (2 pi rC^2).
	sigmaC := ColumnDensity(DefaultRC, DefaultMDisk, DefaultRC)
	assert.InEpsilon(
		t, DefaultMDisk/(2*math.Pi*DefaultRC*DefaultRC), sigmaC, 1e-10,
	)
}

func TestGasTemp(t *testing.T) {
	assert.InDelta(t, 280, GasTemp(units.AU), 1e-10)
	assert.InDelta(t, 28, GasTemp(100*units.AU), 1e-10)
}

func TestSoundSpeedScaling(t *testing.T) {
	// c_s scales as sqrt(T).
	assert.InEpsilon(t, 2*SoundSpeed(70), SoundSpeed(280), 1e-10)
	assert.True(t, SoundSpeed(280) > 0)
}

func TestKepFrequencyScaling(t *testing.T) {
	// Omega scales as R^-3/2, so quadrupling R cuts it by 8.
	r := 5 * units.AU
	assert.InEpsilon(t, KepFrequency(r), 8*KepFrequency(4*r), 1e-10)
}
