package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/guptarohit/asciigraph"
	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/planetdisk/gas"
	"github.com/phil-mansfield/planetdisk/io"
	"github.com/phil-mansfield/planetdisk/kbo"
	"github.com/phil-mansfield/planetdisk/popn"
	"github.com/phil-mansfield/planetdisk/units"
)

const (
	tempProfilePoints = 80
	tempProfileHeight = 10
	tempProfileWidth  = 80
)

func main() {
	var (
		disk, population string
		exampleConfig    string
	)
	vars := map[string]*string{
		"Disk":          &disk,
		"Population":    &population,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&disk, "Disk", "",
		"Configuration file for [Disk] mode.",
	)
	flag.StringVar(
		&population, "Population", "",
		"Configuration file for [Population] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Disk' and 'Population'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Disk":
		con, err := io.ReadDiskConfig(disk)
		if err != nil {
			log.Fatal(err.Error())
		}
		diskMain(con)
	case "Population":
		con, err := io.ReadPopulationConfig(population)
		if err != nil {
			log.Fatal(err.Error())
		}
		populationMain(con)
	case "ExampleConfig":
		switch exampleConfig {
		case "Disk":
			fmt.Println(io.ExampleDiskFile)
		case "Population":
			fmt.Println(io.ExamplePopulationFile)
		default:
			log.Fatalf(
				"Unrecognized config type '%s'. Accepted arguments are "+
					"'Disk' and 'Population'.", exampleConfig,
			)
		}
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}
	for name, val := range vars {
		if *val != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf(
			"No mode flag given. Accepted flags are -Disk, -Population, " +
				"and -ExampleConfig.",
		)
	} else if len(setNames) > 1 {
		return "", fmt.Errorf(
			"More than one mode flag given: %v.", setNames,
		)
	}
	return setNames[0], nil
}

func diskMain(con *io.DiskConfig) {
	mDisk := con.MDisk * units.MSun
	rC := con.RC * units.AU

	for _, rAU := range con.Radii {
		r := rAU * units.AU
		T := gas.GasTemp(r)
		fmt.Printf("R: %g AU\n", rAU)
		fmt.Printf("T: %g K\n", T)
		fmt.Printf("Sound speed: %.3e cm/s\n", gas.SoundSpeed(T))
		fmt.Printf("Orbital Frequency: %.3e 1/s\n", gas.KepFrequency(r))
		fmt.Printf("Scale Height: %.3e cm\n", gas.ScaleHeight(T, r))
		fmt.Printf("Column Density: %.3e g/cm2\n", gas.ColumnDensity(r, mDisk, rC))
		fmt.Println()
	}

	minR, maxR := con.Radii[0], con.Radii[0]
	for _, r := range con.Radii {
		if r < minR {
			minR = r
		}
		if r > maxR {
			maxR = r
		}
	}
	if minR == maxR {
		return
	}

	temps := make([]float64, tempProfilePoints)
	for i := range temps {
		rAU := minR + (maxR-minR)*float64(i)/float64(len(temps)-1)
		temps[i] = gas.GasTemp(rAU * units.AU)
	}
	graph := asciigraph.Plot(temps,
		asciigraph.Height(tempProfileHeight),
		asciigraph.Width(tempProfileWidth),
		asciigraph.Caption(fmt.Sprintf(
			"Gas temperature (K), %g AU to %g AU", minR, maxR,
		)),
	)
	fmt.Println(graph)
}

func populationMain(con *io.PopulationConfig) {
	pop, err := popn.Read(con.Input, popn.Params{
		RhoIce:          con.RhoIce,
		RhoSil:          con.RhoSil,
		UnitMass:        con.UnitMass,
		InitialPorosity: con.InitialPorosity,
	})
	if err != nil {
		log.Fatal(err.Error())
	}
	if pop.Len() == 0 {
		log.Fatalf("No planetesimals in '%s'.", con.Input)
	}
	fmt.Printf("%d planetesimals read.\n", pop.Len())

	minDens, maxDens := con.MinDens, con.MaxDens
	if minDens == 0 && maxDens == 0 {
		minDens, maxDens = densRange(pop.Density)
	}
	err = pop.AddMasses(
		con.NBins, con.MPerBin, minDens, maxDens,
		con.MinMass*units.MPluto, con.MaxMass*units.MPluto,
	)
	if err != nil {
		log.Fatal(err.Error())
	}
	fmt.Printf(
		"%d synthetic planetesimals added.\n", con.NBins*con.MPerBin,
	)

	cat, err := kbo.ReadCatalog(con.KBOInput)
	if err != nil {
		log.Fatal(err.Error())
	}
	fmt.Printf("%d KBOs read.\n", len(cat.Mass))

	plotPopulation(pop, cat, con.PlotFile)
}

func plotPopulation(pop *popn.Population, cat *kbo.Catalog, fname string) {
	plt.Reset()
	plt.Figure(plt.FigSize(7, 5))

	ms := make([]float64, pop.Len())
	for i := range ms {
		ms[i] = pop.Mass[i] / units.MPluto
	}
	plt.Plot(ms, pop.Density, "o")

	for i := range cat.Mass {
		m := cat.Mass[i] / units.MPluto
		lo := cat.Density[i] - cat.DensityMinus[i]
		hi := cat.Density[i] + cat.DensityPlus[i]
		plt.Plot([]float64{m, m}, []float64{lo, hi}, "k")
	}

	kms := make([]float64, len(cat.Mass))
	for i := range kms {
		kms[i] = cat.Mass[i] / units.MPluto
	}
	plt.Plot(kms, cat.Density, "r*")

	plt.XScale("log")
	plt.XLabel(`Mass $(M_{\rm Pluto})$`, plt.FontSize(16))
	plt.YLabel(`Density (g cm$^{-3}$)`, plt.FontSize(16))
	plt.XLim(5e-5, 2.5)
	plt.YLim(0, 3)

	if fname == "" {
		plt.Show()
	} else {
		plt.SaveFig(fname)
	}
	plt.Execute()
}

func densRange(rhos []float64) (min, max float64) {
	min, max = rhos[0], rhos[0]
	for _, rho := range rhos {
		if rho < min {
			min = rho
		}
		if rho > max {
			max = rho
		}
	}
	return min, max
}
