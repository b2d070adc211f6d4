/*Package units contains the physical constants used throughout planetdisk.

All constants are in CGS. They are compile-time constants, so there is no way
for calling code to mutate them mid-run.
*/
package units

const (
	// G is the gravitational constant, cm^3 g^-1 s^-2.
	G = 6.674e-8
	// MSun is the mass of the Sun, g.
	MSun = 1.989e33
	// AU is one astronomical unit, cm.
	AU = 1.496e13
	// KB is the Boltzmann constant, erg K^-1.
	KB = 1.380649e-16
	// MH is the mass of a hydrogen atom, g.
	MH = 1.6726219e-24

	// Mu is the mean molecular weight of the disk gas.
	Mu = 2.34
	// Gamma is the adiabatic index of the disk gas.
	Gamma = 1.4
	// CP is the specific heat of the disk gas at constant pressure,
	// erg g^-1 K^-1, so that CP*(Gamma-1)*T is the squared adiabatic
	// sound speed.
	CP = Gamma / (Gamma - 1) * KB / (Mu * MH)

	// MPluto is the mass of Pluto, g.
	MPluto = 1.303e25

	// RhoIce and RhoSil are the material densities of icy and silicate
	// pebbles, g cm^-3.
	RhoIce = 1.0
	RhoSil = 3.5

	// DefaultPorosity is the initial porosity assigned to planetesimals
	// formed by the streaming instability.
	DefaultPorosity = 0.5
)
