package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"fields/internal/demo"
	"fields/internal/field"
	"fields/internal/geometry/vector"
	"fields/internal/scenario"
)

type Components struct {
	X float64 `arg:"" help:"X component."`
	Y float64 `arg:"" help:"Y component."`
	Z float64 `arg:"" help:"Z component."`
}

func (c Components) Vec3() vector.Vec3 {
	return vector.NewVec3(c.X, c.Y, c.Z)
}

var CLI struct {
	Debug bool `help:"Whether to enable debug logging."`

	Demo struct {
		Scenario string `arg:"" optional:"" name:"scenario" help:"YAML scenario file. Defaults to the built-in samples." type:"existingfile"`
	} `cmd:"" default:"withargs" help:"Build the sample fields and print the report."`

	Magnitude struct {
		Components
	} `cmd:"" help:"Print the magnitude of a vector. Use -- before negative components."`

	Inner struct {
		Components
	} `cmd:"" help:"Print the inner product E·E of an electric field. Use -- before negative components."`

	Unit struct {
		Components
	} `cmd:"" help:"Print the unit vector of a magnetic field. Use -- before negative components."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func runDemo(path string) error {
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}
	log.Debug().Str("scenario", path).Msg("loaded scenario")
	return demo.Run(os.Stdout, s)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("fields"),
		kong.Description("electric and magnetic field vectors"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	var err error
	switch ctx.Command() {
	case "demo":
		fallthrough
	case "demo <scenario>":
		err = runDemo(CLI.Demo.Scenario)
	case "magnitude <x> <y> <z>":
		err = demo.Magnitude(os.Stdout, "v", CLI.Magnitude.Vec3())
	case "inner <x> <y> <z>":
		err = demo.InnerProduct(os.Stdout, "E", field.Electric{Vec3: CLI.Inner.Vec3()})
	case "unit <x> <y> <z>":
		err = demo.UnitVector(os.Stdout, "B", field.Magnetic{Vec3: CLI.Unit.Vec3()})
	}
	if err != nil {
		writeError(err)
	}
}
