package io

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, text string) string {
	fname := path.Join(t.TempDir(), "conf.txt")
	if err := os.WriteFile(fname, []byte(text), 0644); err != nil {
		t.Fatal(err.Error())
	}
	return fname
}

func TestExampleDiskFile(t *testing.T) {
	con, err := ReadDiskConfig(writeConfig(t, ExampleDiskFile))
	if err != nil {
		t.Fatal(err.Error())
	}

	assert.Equal(t, []float64{10, 20, 30, 40, 50}, con.Radii)
	assert.Equal(t, 0.04, con.MDisk)
	assert.Equal(t, 50.0, con.RC)
}

func TestExamplePopulationFile(t *testing.T) {
	con, err := ReadPopulationConfig(writeConfig(t, ExamplePopulationFile))
	if err != nil {
		t.Fatal(err.Error())
	}

	assert.Equal(t, "data/si-data.txt", con.Input)
	assert.Equal(t, "data/kbo-data.txt", con.KBOInput)
	assert.Equal(t, 2.823973078884959e28, con.UnitMass)
	assert.Equal(t, 1.0, con.RhoIce)
	assert.Equal(t, 3.5, con.RhoSil)
	assert.Equal(t, 50, con.NBins)
	assert.Equal(t, 3, con.MPerBin)
}

func TestDiskConfigValidation(t *testing.T) {
	tests := []string{
		"[Disk]",
		"[Disk]\nRadii = -10",
		"[Disk]\nRadii = 10\nMDisk = -1",
		"[Disk]\nRadii = 10\nRC = 0",
	}

	for i, text := range tests {
		if _, err := ReadDiskConfig(writeConfig(t, text)); err == nil {
			t.Errorf("%d) Expected a validation error.", i)
		}
	}
}

func TestPopulationConfigValidation(t *testing.T) {
	base := "[Population]\nInput = a.txt\nKBOInput = b.txt\nUnitMass = 1e28\n"
	tests := []string{
		"[Population]",
		base + "NBins = 0",
		base + "MPerBin = -1",
		base + "MinMass = 2e-2",
		base + "MinDens = 2\nMaxDens = 1",
		base + "InitialPorosity = 1.5",
	}

	for i, text := range tests {
		if _, err := ReadPopulationConfig(writeConfig(t, text)); err == nil {
			t.Errorf("%d) Expected a validation error.", i)
		}
	}
}
