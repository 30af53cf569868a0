// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command s2vogel prints golden-angle spiral points on the unit sphere as a
// GLSL vec3 array literal, for use as a sampling kernel in shaders.
//
// Usage:
//
//	s2vogel [-n 64] [-precision 6] [-plot points.svg [-wireframe]] [-stats [-seed 0]]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/2dChan/s2vogel"
	"github.com/2dChan/s2vogel/glsl"
	"github.com/2dChan/s2vogel/plot"
	"github.com/2dChan/s2vogel/s2delaunay"
	"github.com/2dChan/s2vogel/spread"
	"github.com/2dChan/s2vogel/utils"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

var (
	// numPointsFlag is the number of points on the spiral.
	numPointsFlag = flag.Int("n", 64, "number of points to generate")

	precisionFlag = flag.Int("precision", 6, "digits after the decimal point")

	// plotFlag names the SVG file to draw the points into; empty skips plotting.
	plotFlag = flag.String("plot", "", "write an SVG plot of the points to this file")

	wireframeFlag = flag.Bool("wireframe", false, "draw the Delaunay mesh in the plot")
	yawFlag       = flag.Float64("yaw", 30, "plot view rotation about the polar axis (degrees)")
	pitchFlag     = flag.Float64("pitch", 20, "plot view tilt towards the north pole (degrees)")

	// statsFlag logs separation and Voronoi cell area statistics to stderr,
	// next to those of as many random points.
	statsFlag = flag.Bool("stats", false, "log spread statistics against a random baseline")
	seedFlag  = flag.Int64("seed", 0, "seed of the random baseline")
)

type config struct {
	numPoints int
	precision int

	plotFile  string
	wireframe bool
	yaw       s1.Angle
	pitch     s1.Angle

	stats bool
	seed  int64
}

// configureLog sets up bare messages on stderr. Errors already start with
// the name of the package that raised them.
func configureLog() {
	log.SetFlags(0)
	log.SetPrefix("")
}

func main() {
	configureLog()
	flag.Parse()

	cfg := config{
		numPoints: *numPointsFlag,
		precision: *precisionFlag,
		plotFile:  *plotFlag,
		wireframe: *wireframeFlag,
		yaw:       s1.Angle(*yawFlag) * s1.Degree,
		pitch:     s1.Angle(*pitchFlag) * s1.Degree,
		stats:     *statsFlag,
		seed:      *seedFlag,
	}
	if err := run(os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}

// run generates the points and writes the literal to w. Plotting and
// statistics are best effort, failures there are logged as warnings.
func run(w io.Writer, cfg config) error {
	points, err := s2vogel.Generate(cfg.numPoints)
	if err != nil {
		return err
	}
	literal, err := glsl.FormatArrayLiteral(points, glsl.WithPrecision(cfg.precision))
	if err != nil {
		return err
	}

	var dt *s2delaunay.Triangulation
	if (cfg.plotFile != "" && cfg.wireframe) || cfg.stats {
		dt, err = s2delaunay.NewTriangulation(points)
		if err != nil {
			log.Printf("warning: triangulation: %v", err)
		}
	}

	if cfg.plotFile != "" {
		if err := writePlot(cfg, points, dt); err != nil {
			log.Printf("warning: plot: %v", err)
		}
	}

	if cfg.stats && dt != nil {
		log.Printf("spiral: %v", spread.MeasureTriangulation(dt))
		if r, err := spread.Measure(utils.GenerateRandomPoints(cfg.numPoints, cfg.seed)); err != nil {
			log.Printf("warning: random baseline: %v", err)
		} else {
			log.Printf("random: %v", r)
		}
	}

	_, err = io.WriteString(w, literal)
	return err
}

func writePlot(cfg config, points s2.PointVector, dt *s2delaunay.Triangulation) (err error) {
	file, err := os.Create(cfg.plotFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	setters := []plot.Option{plot.WithView(cfg.yaw.Radians(), cfg.pitch.Radians())}
	if cfg.wireframe && dt != nil {
		setters = append(setters, plot.WithTriangulation(dt))
	}
	if err := plot.Render(file, points, setters...); err != nil {
		return fmt.Errorf("render %s: %w", cfg.plotFile, err)
	}
	return nil
}
