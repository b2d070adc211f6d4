package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

const (
	ExampleDiskFile = `[Disk]

#######################
# Required Parameters #
#######################

# Radii at which disk properties will be computed, in AU. Repeat the line
# once per radius.
Radii = 10
Radii = 20
Radii = 30
Radii = 40
Radii = 50

#######################
# Optional Parameters #
#######################

# Total disk mass in solar masses. Default is 0.04.
# MDisk = 0.04

# Characteristic disk radius in AU. Default is 50.
# RC = 50`
	ExamplePopulationFile = `[Population]

#######################
# Required Parameters #
#######################

# Table of per-clump ice and silicate particle counts from the streaming
# instability simulation.
Input = data/si-data.txt

# Table of observed KBO densities, diameters, and diameter uncertainties.
KBOInput = data/kbo-data.txt

# Gas mass contained in one cubic scale height, in grams. This converts the
# simulation's code units to physical units.
UnitMass = 2.823973078884959e+28

#######################
# Optional Parameters #
#######################

# Material densities of icy and silicate pebbles, in g/cm^3.
# RhoIce = 1.0
# RhoSil = 3.5

# Initial porosity of the planetesimals. Default is 0.5.
# InitialPorosity = 0.5

# Synthetic mass bins appended to the population: NBins linearly spaced
# masses between MinMass and MaxMass (in Pluto masses), repeated MPerBin
# times.
# NBins = 50
# MPerBin = 3
# MinMass = 1e-3
# MaxMass = 1e-2

# Density range of the synthetic planetesimals, in g/cm^3. If both are left
# unset, the range of the loaded population is used.
# MinDens = 0.5
# MaxDens = 1.75

# File the mass-density scatter plot will be written to. If unset, the plot
# is shown in a window instead.
# PlotFile = kbo-density.png`
)

type DiskConfig struct {
	// Required
	Radii []float64

	// Optional
	MDisk float64
	RC    float64
}

type DiskWrapper struct {
	Disk DiskConfig
}

func DefaultDiskWrapper() *DiskWrapper {
	con := DiskConfig{}
	con.MDisk = 0.04
	con.RC = 50
	return &DiskWrapper{con}
}

func (con *DiskConfig) ValidRadii() bool {
	if len(con.Radii) == 0 {
		return false
	}
	for _, r := range con.Radii {
		if r <= 0 {
			return false
		}
	}
	return true
}

func (con *DiskConfig) ValidMDisk() bool {
	return con.MDisk > 0
}

func (con *DiskConfig) ValidRC() bool {
	return con.RC > 0
}

type PopulationConfig struct {
	// Required
	Input    string
	KBOInput string
	UnitMass float64

	// Optional
	RhoIce, RhoSil   float64
	InitialPorosity  float64
	NBins, MPerBin   int
	MinMass, MaxMass float64
	MinDens, MaxDens float64
	PlotFile         string
}

type PopulationWrapper struct {
	Population PopulationConfig
}

func DefaultPopulationWrapper() *PopulationWrapper {
	con := PopulationConfig{}
	con.RhoIce = 1.0
	con.RhoSil = 3.5
	con.InitialPorosity = 0.5
	con.NBins = 50
	con.MPerBin = 3
	con.MinMass = 1e-3
	con.MaxMass = 1e-2
	return &PopulationWrapper{con}
}

func (con *PopulationConfig) ValidInput() bool {
	return con.Input != ""
}

func (con *PopulationConfig) ValidKBOInput() bool {
	return con.KBOInput != ""
}

func (con *PopulationConfig) ValidUnitMass() bool {
	return con.UnitMass > 0
}

func (con *PopulationConfig) ValidRhoIce() bool {
	return con.RhoIce > 0
}

func (con *PopulationConfig) ValidRhoSil() bool {
	return con.RhoSil > 0
}

func (con *PopulationConfig) ValidInitialPorosity() bool {
	return con.InitialPorosity > 0 && con.InitialPorosity <= 1
}

func (con *PopulationConfig) ValidNBins() bool {
	return con.NBins > 0
}

func (con *PopulationConfig) ValidMPerBin() bool {
	return con.MPerBin > 0
}

func (con *PopulationConfig) ValidMassRange() bool {
	return con.MinMass > 0 && con.MinMass <= con.MaxMass
}

func (con *PopulationConfig) ValidDensRange() bool {
	if con.MinDens == 0 && con.MaxDens == 0 {
		return true
	}
	return con.MinDens > 0 && con.MinDens <= con.MaxDens
}

// ReadDiskConfig reads and validates a [Disk] config file.
func ReadDiskConfig(fname string) (*DiskConfig, error) {
	wrap := DefaultDiskWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.Disk

	if !con.ValidRadii() {
		return nil, fmt.Errorf(
			"Need at least one positive 'Radii' value in '%s'.", fname,
		)
	} else if !con.ValidMDisk() {
		return nil, fmt.Errorf("Invalid 'MDisk' value in '%s'.", fname)
	} else if !con.ValidRC() {
		return nil, fmt.Errorf("Invalid 'RC' value in '%s'.", fname)
	}

	return con, nil
}

// ReadPopulationConfig reads and validates a [Population] config file.
func ReadPopulationConfig(fname string) (*PopulationConfig, error) {
	wrap := DefaultPopulationWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.Population

	if !con.ValidInput() {
		return nil, fmt.Errorf(
			"Invalid/non-existent 'Input' value in '%s'.", fname,
		)
	} else if !con.ValidKBOInput() {
		return nil, fmt.Errorf(
			"Invalid/non-existent 'KBOInput' value in '%s'.", fname,
		)
	} else if !con.ValidUnitMass() {
		return nil, fmt.Errorf(
			"Invalid/non-existent 'UnitMass' value in '%s'.", fname,
		)
	} else if !con.ValidRhoIce() {
		return nil, fmt.Errorf("Invalid 'RhoIce' value in '%s'.", fname)
	} else if !con.ValidRhoSil() {
		return nil, fmt.Errorf("Invalid 'RhoSil' value in '%s'.", fname)
	} else if !con.ValidInitialPorosity() {
		return nil, fmt.Errorf(
			"'InitialPorosity' must be in (0, 1] in '%s'.", fname,
		)
	} else if !con.ValidNBins() {
		return nil, fmt.Errorf("Invalid 'NBins' value in '%s'.", fname)
	} else if !con.ValidMPerBin() {
		return nil, fmt.Errorf("Invalid 'MPerBin' value in '%s'.", fname)
	} else if !con.ValidMassRange() {
		return nil, fmt.Errorf(
			"'MinMass' and 'MaxMass' must be positive and ordered in '%s'.",
			fname,
		)
	} else if !con.ValidDensRange() {
		return nil, fmt.Errorf(
			"'MinDens' and 'MaxDens' must be positive and ordered in '%s'.",
			fname,
		)
	}

	return con, nil
}
