// Command boreinfo predicts the playing pitch of a cylindrical bore
// with tone holes and optionally exports supporting data.
//
// Usage:
//
//	boreinfo [flags]
//
// Dimensions are centimeters, frequencies Hz. Tone holes are given as a
// comma-separated list of position:radius pairs, with an optional
// :closed suffix for fingered holes.
//
// Examples:
//
//	boreinfo -length 60 -bore 0.95
//	boreinfo -length 60 -bore 0.95 -holes 25:0.35,28:0.35,32:0.35:closed
//	boreinfo -length 60 -bore 0.95 -holes 25:0.35 -obj flute.obj
//	boreinfo -length 60 -bore 0.95 -sweep 100:2000:64
//	boreinfo -length 60 -bore 0.95 -reflectogram 8000:1024
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-flute/flute"
	"github.com/cwbudde/algo-flute/impedance"
)

type holeSpec struct {
	position float64
	radius   float64
	open     bool
}

func main() {
	length := flag.Float64("length", 60, "bore length in cm")
	boreRadius := flag.Float64("bore", 0.95, "bore radius in cm")
	wall := flag.Float64("wall", 0.4, "wall thickness in cm")
	holesArg := flag.String("holes", "", "tone holes as pos:radius[:closed],...")
	guess := flag.Float64("guess", 0, "initial frequency guess in Hz (0 = half-wave estimate)")
	cork := flag.Float64("cork", 1.7, "cork distance behind the mouth hole in cm (0 disables the embouchure correction)")
	objPath := flag.String("obj", "", "write printable OBJ model to this file (- for stdout)")
	sweepArg := flag.String("sweep", "", "print impedance magnitudes over min:max:points")
	reflArg := flag.String("reflectogram", "", "print a pulse reflectogram over maxHz:points")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: boreinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Predicts the playing pitch of a cylindrical bore with tone holes.\n")
		fmt.Fprintf(os.Stderr, "All dimensions are centimeters, all frequencies Hz.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  boreinfo -length 60 -bore 0.95\n")
		fmt.Fprintf(os.Stderr, "  boreinfo -length 60 -bore 0.95 -holes 25:0.35,32:0.35:closed\n")
		fmt.Fprintf(os.Stderr, "  boreinfo -length 60 -bore 0.95 -sweep 100:2000:64\n")
	}
	flag.Parse()

	engine, err := flute.New(*length, *boreRadius, *wall)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *cork <= 0 {
		engine.SetEmbouchure(0, 0, 0)
	} else {
		engine.SetEmbouchure(*cork, 0.5, 0.5)
	}

	holes, err := parseHoles(*holesArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if len(holes) > 0 {
		positions := make([]float64, len(holes))
		radii := make([]float64, len(holes))
		open := make([]bool, len(holes))

		for i, h := range holes {
			positions[i] = h.position
			radii[i] = h.radius
			open[i] = h.open
		}

		if err := engine.SetHoles(positions, radii, open); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := run(engine, *guess, *objPath, *sweepArg, *reflArg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(engine *flute.Engine, guess float64, objPath, sweepArg, reflArg string) error {
	printSummary(engine, guess)

	if sweepArg != "" {
		if err := printSweep(engine, sweepArg); err != nil {
			return err
		}
	}

	if reflArg != "" {
		if err := printReflectogram(engine, reflArg); err != nil {
			return err
		}
	}

	if objPath != "" {
		if err := writeOBJ(engine, objPath); err != nil {
			return err
		}
	}

	return nil
}

func printSummary(engine *flute.Engine, guess float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Holes\t%d\n", engine.NumHoles())

	openCount := 0
	for _, h := range engine.Holes() {
		if h.Open {
			openCount++
		}
	}
	fmt.Fprintf(tw, "Open holes\t%d\n", openCount)

	pitch, err := engine.CalculatePitch(guess)
	if err != nil {
		fmt.Fprintf(tw, "Pitch\tno resonance found\n")
	} else {
		fmt.Fprintf(tw, "Pitch\t%.2f Hz\n", pitch)
		fmt.Fprintf(tw, "Wavelength\t%.2f cm\n", impedance.SpeedOfSound/pitch)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printSweep(engine *flute.Engine, arg string) error {
	parts := strings.Split(arg, ":")
	if len(parts) != 3 {
		return fmt.Errorf("sweep wants min:max:points, got %q", arg)
	}

	minHz, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return fmt.Errorf("sweep min %q: %w", parts[0], err)
	}

	maxHz, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return fmt.Errorf("sweep max %q: %w", parts[1], err)
	}

	points, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("sweep points %q: %w", parts[2], err)
	}

	curve, err := engine.ImpedanceCurve(minHz, maxHz, points)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frequency [Hz]\t|Z| [acoustic ohm]\n")

	step := (maxHz - minHz) / float64(points-1)
	for i, mag := range curve {
		fmt.Fprintf(tw, "%.1f\t%.4g\n", minHz+step*float64(i), mag)
	}

	return tw.Flush()
}

func printReflectogram(engine *flute.Engine, arg string) error {
	parts := strings.Split(arg, ":")
	if len(parts) != 2 {
		return fmt.Errorf("reflectogram wants maxHz:points, got %q", arg)
	}

	maxHz, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return fmt.Errorf("reflectogram maxHz %q: %w", parts[0], err)
	}

	points, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("reflectogram points %q: %w", parts[1], err)
	}

	samples, err := engine.Reflectogram(maxHz, points)
	if err != nil {
		return err
	}

	dt := 1 / (2 * maxHz)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Time [ms]\tReflection\n")

	for i, r := range samples {
		fmt.Fprintf(tw, "%.4f\t%.6f\n", dt*float64(i)*1000, r)
	}

	return tw.Flush()
}

func writeOBJ(engine *flute.Engine, path string) error {
	if path == "-" {
		return engine.WriteOBJ(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := engine.WriteOBJ(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func parseHoles(arg string) ([]holeSpec, error) {
	if strings.TrimSpace(arg) == "" {
		return nil, nil
	}

	var holes []holeSpec

	for _, field := range strings.Split(arg, ",") {
		parts := strings.Split(strings.TrimSpace(field), ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("hole %q: want pos:radius[:closed]", field)
		}

		pos, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("hole %q position: %w", field, err)
		}

		radius, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("hole %q radius: %w", field, err)
		}

		open := true
		if len(parts) == 3 {
			switch strings.ToLower(parts[2]) {
			case "closed":
				open = false
			case "open":
			default:
				return nil, fmt.Errorf("hole %q: state must be open or closed", field)
			}
		}

		holes = append(holes, holeSpec{position: pos, radius: radius, open: open})
	}

	return holes, nil
}
